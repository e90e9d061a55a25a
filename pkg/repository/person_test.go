package repository_test

import (
	"context"
	"testing"

	"github.com/arnavshah/duty-planner-go/internal/testutils"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPersonRepository_CreateAndGet(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := repository.NewPersonRepository(db)
	ctx := context.Background()

	p := &models.Person{Name: "Cohen", Rank: "Sergeant", Role: models.RoleBarracks, Available: false}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cohen", got.Name)
	assert.Equal(t, models.RoleBarracks, got.Role)
	assert.False(t, got.Available)
	assert.Zero(t, got.ServiceCount)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPersonRepository_ListOrderedByName(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := repository.NewPersonRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []models.Person{
		{Name: "Levi", Role: models.RoleGuard, Available: true},
		{Name: "Ben", Role: models.RoleKitchen, Available: true},
		{Name: "Dana", Role: models.RoleGuard, Available: true},
	}))
	require.NoError(t, repo.CreateBatch(ctx, nil))

	persons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 3)
	assert.Equal(t, []string{"Ben", "Dana", "Levi"}, []string{persons[0].Name, persons[1].Name, persons[2].Name})

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestPersonRepository_UpdateNeverTouchesServiceCount(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := repository.NewPersonRepository(db)
	ctx := context.Background()
	p := testutils.Seed(t, db, testutils.NewPersonFactory().WithRole("A", models.RoleGuard, 6))[0]

	err := repo.Update(ctx, p.ID, map[string]interface{}{
		"rank":          "Corporal",
		"available":     false,
		"service_count": 0,
	})
	require.NoError(t, err)

	got := testutils.Reload(t, db, p.ID)
	assert.Equal(t, "Corporal", got.Rank)
	assert.False(t, got.Available)
	assert.Equal(t, 6, got.ServiceCount)

	err = repo.Update(ctx, 404, map[string]interface{}{"rank": "General"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPersonRepository_DeleteCascades(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := repository.NewPersonRepository(db)
	ctx := context.Background()
	factory := testutils.NewPersonFactory()
	persons := testutils.Seed(t, db, factory.WithRole("A", models.RoleGuard, 1), factory.WithRole("B", models.RoleGuard, 1))

	testutils.SeedUnavailable(t, db, persons[0], "2025-01-05", "Leave")
	store := repository.NewGormStore(db)
	require.NoError(t, store.CreateAssignment(ctx, &models.Assignment{PersonID: persons[0].ID, Date: "2025-01-01", SlotName: "x"}))
	require.NoError(t, store.CreateAssignment(ctx, &models.Assignment{PersonID: persons[1].ID, Date: "2025-01-01", SlotName: "y"}))

	require.NoError(t, repo.Delete(ctx, persons[0].ID))

	assert.Zero(t, testutils.CountAssignments(t, db, persons[0].ID))
	assert.Equal(t, 1, testutils.CountAssignments(t, db, persons[1].ID))
	var left int64
	require.NoError(t, db.Model(&models.Unavailability{}).Count(&left).Error)
	assert.Zero(t, left)

	assert.ErrorIs(t, repo.Delete(ctx, persons[0].ID), gorm.ErrRecordNotFound)
}
