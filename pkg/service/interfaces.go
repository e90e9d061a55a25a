package service

import (
	"context"
	"io"

	"github.com/arnavshah/duty-planner-go/pkg/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../internal/mocks/service_mocks.go -package=mocks

// Generator fills and inspects the daily schedule
type Generator interface {
	Generate(ctx context.Context, date string) (*models.GenerateResult, error)
	Coverage(ctx context.Context, date string) ([]models.SlotCoverage, error)
	Slots() []models.Slot
}

// PersonnelServiceInterface defines the interface for roster administration
type PersonnelServiceInterface interface {
	List(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, id uint) (*models.Person, error)
	Create(ctx context.Context, req *CreatePersonRequest) (*models.Person, error)
	Update(ctx context.Context, id uint, req *UpdatePersonRequest) (*models.Person, error)
	Delete(ctx context.Context, id uint) error
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// UnavailabilityServiceInterface defines the interface for unavailability administration
type UnavailabilityServiceInterface interface {
	List(ctx context.Context, from string) ([]models.Unavailability, error)
	Create(ctx context.Context, req *CreateUnavailabilityRequest) (*models.Unavailability, error)
	Delete(ctx context.Context, id uint) error
}

// ScheduleServiceInterface defines the interface for schedule operations
type ScheduleServiceInterface interface {
	View(ctx context.Context, date string) (*ScheduleView, error)
	Generate(ctx context.Context, date string) (*models.GenerateResult, error)
	Confirm(ctx context.Context, date string) (int64, error)
	Coverage(ctx context.Context, date string) ([]models.SlotCoverage, error)
	Slots() []models.Slot
	Stats(ctx context.Context) (*StatsResponse, error)
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	ExportCSV(ctx context.Context, date string, w io.Writer) error
}
