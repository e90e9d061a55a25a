package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PersonnelService handles business logic for the roster
type PersonnelService struct {
	repo      repository.PersonRepositoryInterface
	validator *validator.Validate
}

var _ PersonnelServiceInterface = (*PersonnelService)(nil)

// NewPersonnelService creates a new personnel service
func NewPersonnelService(repo repository.PersonRepositoryInterface, validator *validator.Validate) *PersonnelService {
	return &PersonnelService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePersonRequest represents the data needed to add a person to the roster
type CreatePersonRequest struct {
	Name      string      `json:"name" validate:"required,max=120"`
	Rank      string      `json:"rank" validate:"max=60"`
	Role      models.Role `json:"role" validate:"required"`
	Available *bool       `json:"available"` // defaults to true
}

// UpdatePersonRequest represents the editable fields of a person.
// Name and service count cannot be changed.
type UpdatePersonRequest struct {
	Rank      *string      `json:"rank" validate:"omitempty,max=60"`
	Role      *models.Role `json:"role"`
	Available *bool        `json:"available"`
}

// ImportResult summarises a CSV roster import
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

// List returns the roster ordered by name
func (s *PersonnelService) List(ctx context.Context) ([]models.Person, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	return persons, nil
}

// Get returns one person
func (s *PersonnelService) Get(ctx context.Context, id uint) (*models.Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// Create adds a person with a zero service count
func (s *PersonnelService) Create(ctx context.Context, req *CreatePersonRequest) (*models.Person, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Rank = strings.TrimSpace(req.Rank)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := checkRole(req.Role); err != nil {
		return nil, err
	}

	person := &models.Person{
		Name:      req.Name,
		Rank:      req.Rank,
		Role:      req.Role,
		Available: true,
	}
	if req.Available != nil {
		person.Available = *req.Available
	}

	if err := s.repo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	logger.FromContext(ctx).WithFields(map[string]interface{}{"person_id": person.ID, "role": person.Role}).Info("person added")
	return person, nil
}

// Update changes rank, role or availability
func (s *PersonnelService) Update(ctx context.Context, id uint, req *UpdatePersonRequest) (*models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	updates := make(map[string]interface{})
	if req.Rank != nil {
		updates["rank"] = strings.TrimSpace(*req.Rank)
	}
	if req.Role != nil {
		if err := checkRole(*req.Role); err != nil {
			return nil, err
		}
		updates["role"] = *req.Role
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to update person: %w", err)
		}
	}
	return s.Get(ctx, id)
}

// Delete removes a person along with their assignments and unavailability
func (s *PersonnelService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}
	logger.FromContext(ctx).WithField("person_id", id).Info("person deleted")
	return nil
}

// Import reads a roster CSV with a header row. name and role columns are
// required; rank and available are optional. Invalid rows are skipped and
// reported, the valid ones are stored together.
func (s *PersonnelService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewValidationError("file", "failed to read header")
	}
	cols := make(map[string]int)
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "role"} {
		if _, ok := cols[required]; !ok {
			return nil, apperrors.NewValidationError("file", fmt.Sprintf("missing %q column", required))
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	result := &ImportResult{}
	var persons []models.Person
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("file", err.Error())
		}

		req := CreatePersonRequest{
			Name: field(record, "name"),
			Rank: field(record, "rank"),
			Role: models.Role(field(record, "role")),
		}
		if raw := field(record, "available"); raw != "" {
			available, err := strconv.ParseBool(raw)
			if err != nil {
				result.Skipped = append(result.Skipped, fmt.Sprintf("line %d: available must be true or false", line))
				continue
			}
			req.Available = &available
		}
		if err := s.validator.Struct(&req); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("line %d: %v", line, validationError(err)))
			continue
		}
		if err := checkRole(req.Role); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		p := models.Person{Name: req.Name, Rank: req.Rank, Role: req.Role, Available: true}
		if req.Available != nil {
			p.Available = *req.Available
		}
		persons = append(persons, p)
	}

	if err := s.repo.CreateBatch(ctx, persons); err != nil {
		return nil, fmt.Errorf("failed to import personnel: %w", err)
	}
	result.Imported = len(persons)
	logger.FromContext(ctx).WithFields(map[string]interface{}{"imported": result.Imported, "skipped": len(result.Skipped)}).Info("roster imported")
	return result, nil
}
