package repository

import (
	"context"

	"github.com/arnavshah/duty-planner-go/pkg/models"

	"gorm.io/gorm"
)

// PersonRepository handles database operations for the roster
type PersonRepository struct {
	db *gorm.DB
}

var _ PersonRepositoryInterface = (*PersonRepository)(nil)

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// CreateBatch creates several persons in one transaction
func (r *PersonRepository) CreateBatch(ctx context.Context, persons []models.Person) error {
	if len(persons) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&persons).Error
	})
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	if err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// List returns the roster ordered by name
func (r *PersonRepository) List(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&persons).Error
	return persons, err
}

// Count returns the roster size
func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Person{}).Count(&count).Error
	return count, err
}

// Update applies column updates to a person. service_count is never
// writable here.
func (r *PersonRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	delete(updates, "service_count")
	res := r.db.WithContext(ctx).Model(&models.Person{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a person together with their assignments and unavailability
func (r *PersonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("person_id = ?", id).Delete(&models.Unavailability{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Person{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
