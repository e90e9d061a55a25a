package testutils

import (
	"context"
	"testing"

	"github.com/arnavshah/duty-planner-go/pkg/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates an available test Person with default values
func (f *PersonFactory) Create() *models.Person {
	return &models.Person{
		Name:      "John Doe",
		Rank:      "Private",
		Role:      models.RoleGuard,
		Available: true,
	}
}

// WithRole returns a default person holding role
func (f *PersonFactory) WithRole(name string, role models.Role, serviceCount int) *models.Person {
	p := f.Create()
	p.Name = name
	p.Role = role
	p.ServiceCount = serviceCount
	return p
}

// Seed inserts persons in order so that their ids follow the slice order
func Seed(t testing.TB, db *gorm.DB, persons ...*models.Person) []*models.Person {
	t.Helper()
	for _, p := range persons {
		require.NoError(t, db.WithContext(context.Background()).Create(p).Error)
	}
	return persons
}

// SeedUnavailable records that person is unavailable on date
func SeedUnavailable(t testing.TB, db *gorm.DB, person *models.Person, date, reason string) *models.Unavailability {
	t.Helper()
	u := &models.Unavailability{PersonID: person.ID, Date: date, Reason: reason}
	require.NoError(t, db.Omit("Person").Create(u).Error)
	return u
}

// CountAssignments returns how many assignment rows reference personID
func CountAssignments(t testing.TB, db *gorm.DB, personID uint) int {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Assignment{}).Where("person_id = ?", personID).Count(&n).Error)
	return int(n)
}

// Reload returns the stored copy of a person
func Reload(t testing.TB, db *gorm.DB, id uint) models.Person {
	t.Helper()
	var p models.Person
	require.NoError(t, db.First(&p, id).Error)
	return p
}
