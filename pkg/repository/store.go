package repository

import (
	"context"
	"time"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of gorm
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore creates a new gorm backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ListPersons returns the whole roster ordered by id
func (s *GormStore) ListPersons(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := s.db.WithContext(ctx).Order("id ASC").Find(&persons).Error
	return persons, err
}

// ListUnavailability returns the exclusions recorded for date
func (s *GormStore) ListUnavailability(ctx context.Context, date string) ([]models.Unavailability, error) {
	var records []models.Unavailability
	err := s.db.WithContext(ctx).Where("date = ?", date).Order("id ASC").Find(&records).Error
	return records, err
}

// ListAssignments returns the assignments of date with their persons, in creation order
func (s *GormStore) ListAssignments(ctx context.Context, date string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.WithContext(ctx).Preload("Person").Where("date = ?", date).Order("id ASC").Find(&assignments).Error
	return assignments, err
}

// CreateAssignment inserts a new assignment
func (s *GormStore) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
}

// IncrementServiceCount adds one to the person's service count
func (s *GormStore) IncrementServiceCount(ctx context.Context, personID uint) error {
	res := s.db.WithContext(ctx).Model(&models.Person{}).
		Where("id = ?", personID).
		UpdateColumn("service_count", gorm.Expr("service_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPersonNotFound
	}
	return nil
}

// ConfirmAssignments marks every assignment of date as confirmed and returns
// how many assignments the date has
func (s *GormStore) ConfirmAssignments(ctx context.Context, date string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("date = ?", date).
		UpdateColumn("confirmed", true)
	return res.RowsAffected, res.Error
}

// RecordGeneration upserts the per-date generation log in a single query
func (s *GormStore) RecordGeneration(ctx context.Context, entry *models.GenerationLog) error {
	if entry.LastRunAt.IsZero() {
		entry.LastRunAt = time.Now()
	}
	if entry.Runs == 0 {
		entry.Runs = 1
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"runs":        gorm.Expr("generation_logs.runs + ?", entry.Runs),
			"filled":      gorm.Expr("generation_logs.filled + ?", entry.Filled),
			"unfilled":    entry.Unfilled,
			"failed":      entry.Failed,
			"last_run_at": entry.LastRunAt,
		}),
	}).Create(entry).Error
}

// ListGenerationLogs returns the most recent generation logs
func (s *GormStore) ListGenerationLogs(ctx context.Context, limit int) ([]models.GenerationLog, error) {
	var logs []models.GenerationLog
	err := s.db.WithContext(ctx).Order("date desc").Limit(limit).Find(&logs).Error
	return logs, err
}

// WithinTransaction runs fn inside a database transaction
func (s *GormStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
