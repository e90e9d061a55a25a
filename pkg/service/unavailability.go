package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UnavailabilityService handles business logic for unavailability records
type UnavailabilityService struct {
	repo      repository.UnavailabilityRepositoryInterface
	persons   repository.PersonRepositoryInterface
	validator *validator.Validate
	now       Clock
}

var _ UnavailabilityServiceInterface = (*UnavailabilityService)(nil)

// NewUnavailabilityService creates a new unavailability service. A nil clock
// means time.Now.
func NewUnavailabilityService(repo repository.UnavailabilityRepositoryInterface, persons repository.PersonRepositoryInterface, validator *validator.Validate, now Clock) *UnavailabilityService {
	if now == nil {
		now = time.Now
	}
	return &UnavailabilityService{
		repo:      repo,
		persons:   persons,
		validator: validator,
		now:       now,
	}
}

// CreateUnavailabilityRequest represents the data needed to exclude a person for a day
type CreateUnavailabilityRequest struct {
	PersonID uint   `json:"person_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Reason   string `json:"reason" validate:"required,max=255"`
}

// List returns the records dated on or after from. An empty from means today.
func (s *UnavailabilityService) List(ctx context.Context, from string) ([]models.Unavailability, error) {
	if from == "" {
		from = models.FormatDate(s.now())
	}
	if err := checkDate(from); err != nil {
		return nil, err
	}
	records, err := s.repo.ListFrom(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list unavailability: %w", err)
	}
	return records, nil
}

// Create records that a person cannot serve on a date
func (s *UnavailabilityService) Create(ctx context.Context, req *CreateUnavailabilityRequest) (*models.Unavailability, error) {
	req.Date = strings.TrimSpace(req.Date)
	req.Reason = strings.TrimSpace(req.Reason)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := checkDate(req.Date); err != nil {
		return nil, err
	}

	person, err := s.persons.GetByID(ctx, req.PersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to verify person: %w", err)
	}

	record := &models.Unavailability{
		PersonID: person.ID,
		Date:     req.Date,
		Reason:   req.Reason,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create unavailability: %w", err)
	}
	record.Person = person

	logger.FromContext(ctx).WithFields(map[string]interface{}{"person_id": person.ID, "date": record.Date}).Info("unavailability recorded")
	return record, nil
}

// Delete removes an unavailability record
func (s *UnavailabilityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUnavailabilityNotFound
		}
		return fmt.Errorf("failed to delete unavailability: %w", err)
	}
	return nil
}
