package repository

import (
	"context"

	"github.com/arnavshah/duty-planner-go/pkg/models"

	"gorm.io/gorm"
)

// UnavailabilityRepository handles database operations for unavailability records
type UnavailabilityRepository struct {
	db *gorm.DB
}

var _ UnavailabilityRepositoryInterface = (*UnavailabilityRepository)(nil)

// NewUnavailabilityRepository creates a new unavailability repository
func NewUnavailabilityRepository(db *gorm.DB) *UnavailabilityRepository {
	return &UnavailabilityRepository{db: db}
}

// Create creates a new unavailability record
func (r *UnavailabilityRepository) Create(ctx context.Context, record *models.Unavailability) error {
	return r.db.WithContext(ctx).Omit("Person").Create(record).Error
}

// GetByID retrieves an unavailability record by ID
func (r *UnavailabilityRepository) GetByID(ctx context.Context, id uint) (*models.Unavailability, error) {
	var record models.Unavailability
	if err := r.db.WithContext(ctx).Preload("Person").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListFrom returns records dated on or after date, earliest first
func (r *UnavailabilityRepository) ListFrom(ctx context.Context, date string) ([]models.Unavailability, error) {
	var records []models.Unavailability
	err := r.db.WithContext(ctx).Preload("Person").
		Where("date >= ?", date).
		Order("date ASC").Order("id ASC").
		Find(&records).Error
	return records, err
}

// Delete deletes an unavailability record
func (r *UnavailabilityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Unavailability{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
