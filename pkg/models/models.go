package models

import (
	"fmt"
	"time"
)

// DateLayout is the storage and wire format of every duty date.
const DateLayout = "2006-01-02"

// Role is the kind of duty a person can stand
type Role string

const (
	RoleGuard    Role = "Guard"
	RoleBarracks Role = "Barracks"
	RoleKitchen  Role = "Kitchen"
)

// Roles lists every known role in display order
func Roles() []Role {
	return []Role{RoleGuard, RoleBarracks, RoleKitchen}
}

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleGuard, RoleBarracks, RoleKitchen:
		return true
	}
	return false
}

// Person represents a member of the duty roster
type Person struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Rank         string    `gorm:"size:60" json:"rank"`
	Role         Role      `gorm:"type:varchar(40);not null;index" json:"role"`
	Available    bool      `gorm:"not null" json:"available"`
	ServiceCount int       `gorm:"not null;default:0" json:"service_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "persons"
}

// Unavailability excludes a person from every slot on one date
type Unavailability struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PersonID  uint      `gorm:"not null;index" json:"person_id"`
	Date      string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Reason    string    `gorm:"size:255" json:"reason"`
	CreatedAt time.Time `json:"created_at"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

// TableName returns the table name for Unavailability
func (Unavailability) TableName() string {
	return "unavailabilities"
}

// Assignment pairs a person with a slot on a date
type Assignment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PersonID  uint      `gorm:"not null;uniqueIndex:idx_assignment_date_person" json:"person_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_assignment_date_slot;uniqueIndex:idx_assignment_date_person" json:"date"`
	SlotName  string    `gorm:"size:120;not null;uniqueIndex:idx_assignment_date_slot" json:"slot_name"`
	Confirmed bool      `gorm:"not null;default:false" json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// GenerationLog records generation attempts for one date
type GenerationLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	Runs      int       `gorm:"default:0" json:"runs"`
	Filled    int       `gorm:"default:0" json:"filled"`
	Unfilled  int       `gorm:"default:0" json:"unfilled"`
	Failed    int       `gorm:"default:0" json:"failed"`
	LastRunAt time.Time `json:"last_run_at"`
}

// TableName returns the table name for GenerationLog
func (GenerationLog) TableName() string {
	return "generation_logs"
}

// Slot is a duty requirement repeated every day
type Slot struct {
	Name         string `json:"name" mapstructure:"name" yaml:"name" validate:"required,max=120"`
	TimeRange    string `json:"time_range" mapstructure:"time_range" yaml:"time_range"`
	RequiredRole Role   `json:"required_role" mapstructure:"required_role" yaml:"required_role" validate:"required"`
}

// ParseDate validates a YYYY-MM-DD string and returns it in canonical form
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders t as a duty date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
