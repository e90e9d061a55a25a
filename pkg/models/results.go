package models

// SlotStatus is the outcome of one slot in a generation run
type SlotStatus string

const (
	SlotFilled        SlotStatus = "filled"
	SlotAlreadyFilled SlotStatus = "already_filled"
	SlotUnfilled      SlotStatus = "unfilled"
	SlotFailed        SlotStatus = "failed"
)

// SlotOutcome reports what happened to a single slot
type SlotOutcome struct {
	Slot         string     `json:"slot" yaml:"slot"`
	RequiredRole Role       `json:"required_role" yaml:"required_role"`
	Status       SlotStatus `json:"status" yaml:"status"`
	PersonID     uint       `json:"person_id,omitempty" yaml:"person_id,omitempty"`
	Reasons      []string   `json:"reasons,omitempty" yaml:"reasons,omitempty"`
	Error        string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// GenerateResult is the result of generating the schedule for a date
type GenerateResult struct {
	Date        string        `json:"date" yaml:"date"`
	Assignments []Assignment  `json:"assignments" yaml:"assignments"`
	Outcomes    []SlotOutcome `json:"outcomes" yaml:"outcomes"`
}

func (r *GenerateResult) count(status SlotStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Filled returns the number of slots filled by this run
func (r *GenerateResult) Filled() int { return r.count(SlotFilled) }

// AlreadyFilled returns the number of slots filled by an earlier run
func (r *GenerateResult) AlreadyFilled() int { return r.count(SlotAlreadyFilled) }

// Unfilled returns the number of slots without an eligible candidate
func (r *GenerateResult) Unfilled() int { return r.count(SlotUnfilled) }

// Failed returns the number of slots whose writes failed
func (r *GenerateResult) Failed() int { return r.count(SlotFailed) }

// Complete reports whether every slot of the date is now filled
func (r *GenerateResult) Complete() bool {
	return r.Unfilled() == 0 && r.Failed() == 0
}

// PartialSuccess reports whether some but not all slots are filled
func (r *GenerateResult) PartialSuccess() bool {
	return !r.Complete() && r.Filled()+r.AlreadyFilled() > 0
}

// SlotCoverage describes how a slot could be staffed on a date
type SlotCoverage struct {
	Slot         string `json:"slot"`
	RequiredRole Role   `json:"required_role"`
	Filled       bool   `json:"filled"`
	PersonID     uint   `json:"person_id,omitempty"`
	Eligible     int    `json:"eligible"`
}
