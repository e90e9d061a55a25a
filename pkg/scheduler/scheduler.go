package scheduler

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/metrics"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/repository"
)

// Option configures a Scheduler
type Option func(*Scheduler)

// WithMetrics sets the collector receiving slot outcomes
func WithMetrics(c metrics.Collector) Option {
	return func(s *Scheduler) { s.metrics = c }
}

// WithLogger sets the base logger
func WithLogger(l *logger.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// Scheduler fills the daily duty slots from the roster
type Scheduler struct {
	store   repository.Store
	slots   []models.Slot
	metrics metrics.Collector
	log     *logger.Logger

	// mu serializes runs so two requests for a date cannot interleave
	mu sync.Mutex
}

// NewScheduler creates a new scheduler over store for the given slot catalog
func NewScheduler(store repository.Store, slots []models.Slot, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:   store,
		slots:   slices.Clone(slots),
		metrics: metrics.Nop{},
		log:     logger.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Slots returns the slot catalog in processing order
func (s *Scheduler) Slots() []models.Slot {
	return slices.Clone(s.slots)
}

// day is the state of one date as seen by a run
type day struct {
	date        string
	persons     []models.Person
	unavailable map[uint]bool
	assigned    map[uint]bool
	filled      map[string]models.Assignment
}

func (s *Scheduler) load(ctx context.Context, date string) (*day, error) {
	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	records, err := s.store.ListUnavailability(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load unavailability for %s: %w", date, err)
	}
	existing, err := s.store.ListAssignments(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments for %s: %w", date, err)
	}

	d := &day{
		date:        date,
		persons:     persons,
		unavailable: make(map[uint]bool, len(records)),
		assigned:    make(map[uint]bool, len(existing)),
		filled:      make(map[string]models.Assignment, len(existing)),
	}
	for _, u := range records {
		d.unavailable[u.PersonID] = true
	}
	for _, a := range existing {
		d.assigned[a.PersonID] = true
		d.filled[a.SlotName] = a
	}
	return d, nil
}

// candidates returns the people eligible for slot, and why the others are not
func (d *day) candidates(slot models.Slot) ([]*models.Person, []string) {
	var eligible []*models.Person
	roleHolders := 0
	flaggedCount := 0
	onLeaveCount := 0
	servingCount := 0

	for i := range d.persons {
		p := &d.persons[i]
		if p.Role != slot.RequiredRole {
			continue
		}
		roleHolders++
		switch {
		case !p.Available:
			flaggedCount++
		case d.unavailable[p.ID]:
			onLeaveCount++
		case d.assigned[p.ID]:
			servingCount++
		default:
			eligible = append(eligible, p)
		}
	}

	if len(eligible) > 0 {
		return eligible, nil
	}

	var reasons []string
	if roleHolders == 0 {
		return nil, []string{fmt.Sprintf("no person holds role %s", slot.RequiredRole)}
	}
	if flaggedCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d people were marked unavailable", flaggedCount))
	}
	if onLeaveCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d people were unavailable on %s", onLeaveCount, d.date))
	}
	if servingCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d people already serve another slot that day", servingCount))
	}
	return nil, reasons
}

// byFairness orders people by service count, then by id
func byFairness(a, b *models.Person) int {
	if c := cmp.Compare(a.ServiceCount, b.ServiceCount); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Generate fills the open slots of date. Slots filled by earlier runs are
// left untouched, so calling it again only fills the remaining gaps. A slot
// nobody can take, or whose writes fail, is reported in the result and does
// not stop the run; the error is reserved for invalid input and read failures.
func (s *Scheduler) Generate(ctx context.Context, date string) (*models.GenerateResult, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	defer func() { s.metrics.ObserveGeneration(time.Since(start).Seconds()) }()

	log := s.log.WithField("date", date)
	d, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}

	result := &models.GenerateResult{
		Date:        date,
		Assignments: []models.Assignment{},
		Outcomes:    make([]models.SlotOutcome, 0, len(s.slots)),
	}

	for _, slot := range s.slots {
		outcome := models.SlotOutcome{Slot: slot.Name, RequiredRole: slot.RequiredRole}

		if existing, ok := d.filled[slot.Name]; ok {
			outcome.Status = models.SlotAlreadyFilled
			outcome.PersonID = existing.PersonID
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		eligible, reasons := d.candidates(slot)
		if len(eligible) == 0 {
			outcome.Status = models.SlotUnfilled
			outcome.Reasons = reasons
			outcome.Error = apperrors.ErrNoEligibleCandidate.Error()
			result.Outcomes = append(result.Outcomes, outcome)
			s.metrics.RecordSlotUnfilled(slot.Name)
			log.WithFields(map[string]interface{}{"slot": slot.Name, "reasons": reasons}).Warn("slot left unfilled")
			continue
		}

		best := slices.MinFunc(eligible, byFairness)
		assignment := models.Assignment{PersonID: best.ID, Date: date, SlotName: slot.Name}

		err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
			if err := tx.CreateAssignment(ctx, &assignment); err != nil {
				return err
			}
			return tx.IncrementServiceCount(ctx, best.ID)
		})
		if err != nil {
			outcome.Status = models.SlotFailed
			outcome.PersonID = best.ID
			outcome.Error = fmt.Errorf("%w: %v", apperrors.ErrSlotPersistence, err).Error()
			result.Outcomes = append(result.Outcomes, outcome)
			s.metrics.RecordSlotFailure(slot.Name)
			log.WithError(err).WithFields(map[string]interface{}{"slot": slot.Name, "person_id": best.ID}).Error("failed to persist assignment")
			continue
		}

		best.ServiceCount++
		d.assigned[best.ID] = true
		d.filled[slot.Name] = assignment

		outcome.Status = models.SlotFilled
		outcome.PersonID = best.ID
		result.Outcomes = append(result.Outcomes, outcome)
		result.Assignments = append(result.Assignments, assignment)
		s.metrics.RecordSlotFilled(slot.Name)
		log.WithFields(map[string]interface{}{"slot": slot.Name, "person_id": best.ID}).Debug("slot filled")
	}

	if err := s.store.RecordGeneration(ctx, &models.GenerationLog{
		Date:     date,
		Runs:     1,
		Filled:   result.Filled(),
		Unfilled: result.Unfilled(),
		Failed:   result.Failed(),
	}); err != nil {
		log.WithError(err).Warn("failed to record generation log")
	}

	log.WithFields(map[string]interface{}{
		"filled":         result.Filled(),
		"already_filled": result.AlreadyFilled(),
		"unfilled":       result.Unfilled(),
		"failed":         result.Failed(),
	}).Info("schedule generated")

	return result, nil
}

// Coverage reports for every slot of date whether it is filled and how many
// people could take it now. Nothing is written.
func (s *Scheduler) Coverage(ctx context.Context, date string) ([]models.SlotCoverage, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	d, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}

	coverage := make([]models.SlotCoverage, 0, len(s.slots))
	for _, slot := range s.slots {
		c := models.SlotCoverage{Slot: slot.Name, RequiredRole: slot.RequiredRole}
		if existing, ok := d.filled[slot.Name]; ok {
			c.Filled = true
			c.PersonID = existing.PersonID
		} else {
			eligible, _ := d.candidates(slot)
			c.Eligible = len(eligible)
		}
		coverage = append(coverage, c)
	}
	return coverage, nil
}

// FairnessScore returns a percentage (0-100) representing how evenly
// service is distributed. 100% is perfectly fair (Standard Deviation = 0).
func FairnessScore(persons []models.Person) float64 {
	if len(persons) == 0 {
		return 100.0
	}

	var sum float64
	for _, p := range persons {
		sum += float64(p.ServiceCount)
	}

	if sum == 0 {
		return 100.0
	}

	mean := sum / float64(len(persons))

	var varianceSum float64
	for _, p := range persons {
		diff := float64(p.ServiceCount) - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(persons)))

	// 100% means SD is 0. 0% means SD is >= mean.
	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
