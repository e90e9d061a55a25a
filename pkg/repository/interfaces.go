package repository

import (
	"context"

	"github.com/arnavshah/duty-planner-go/pkg/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../internal/mocks/repository_mocks.go -package=mocks

// Store is the data access the schedule generator needs
type Store interface {
	ListPersons(ctx context.Context) ([]models.Person, error)
	ListUnavailability(ctx context.Context, date string) ([]models.Unavailability, error)
	ListAssignments(ctx context.Context, date string) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	IncrementServiceCount(ctx context.Context, personID uint) error
	ConfirmAssignments(ctx context.Context, date string) (int64, error)
	RecordGeneration(ctx context.Context, entry *models.GenerationLog) error
	ListGenerationLogs(ctx context.Context, limit int) ([]models.GenerationLog, error)
	// WithinTransaction runs fn against a Store bound to one transaction.
	// Any error returned by fn rolls the transaction back.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}

// PersonRepositoryInterface defines the interface for roster administration
type PersonRepositoryInterface interface {
	Create(ctx context.Context, person *models.Person) error
	CreateBatch(ctx context.Context, persons []models.Person) error
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	List(ctx context.Context) ([]models.Person, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// UnavailabilityRepositoryInterface defines the interface for unavailability administration
type UnavailabilityRepositoryInterface interface {
	Create(ctx context.Context, record *models.Unavailability) error
	GetByID(ctx context.Context, id uint) (*models.Unavailability, error)
	ListFrom(ctx context.Context, date string) ([]models.Unavailability, error)
	Delete(ctx context.Context, id uint) error
}
