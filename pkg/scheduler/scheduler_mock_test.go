package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arnavshah/duty-planner-go/internal/mocks"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/repository"
	"github.com/arnavshah/duty-planner-go/pkg/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// runInline executes the transaction body against the mock itself
func runInline(store *mocks.MockStore) func(context.Context, func(repository.Store) error) error {
	return func(_ context.Context, fn func(repository.Store) error) error {
		return fn(store)
	}
}

func TestGenerate_TieBreakIgnoresRosterOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	store.EXPECT().ListPersons(ctx).Return([]models.Person{
		{ID: 9, Role: models.RoleGuard, Available: true, ServiceCount: 1},
		{ID: 2, Role: models.RoleGuard, Available: true, ServiceCount: 1},
		{ID: 5, Role: models.RoleGuard, Available: true, ServiceCount: 4},
		{ID: 1, Role: models.RoleKitchen, Available: true, ServiceCount: 0},
	}, nil)
	store.EXPECT().ListUnavailability(ctx, day).Return(nil, nil)
	store.EXPECT().ListAssignments(ctx, day).Return(nil, nil)

	gomock.InOrder(
		store.EXPECT().WithinTransaction(ctx, gomock.Any()).DoAndReturn(runInline(store)),
		store.EXPECT().CreateAssignment(ctx, &models.Assignment{PersonID: 2, Date: day, SlotName: guardSlot.Name}).Return(nil),
		store.EXPECT().IncrementServiceCount(ctx, uint(2)).Return(nil),
	)
	store.EXPECT().RecordGeneration(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry *models.GenerationLog) error {
		assert.Equal(t, 1, entry.Filled)
		assert.Equal(t, 1, entry.Runs)
		return nil
	})

	result, err := scheduler.NewScheduler(store, []models.Slot{guardSlot}).Generate(ctx, day)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, uint(2), result.Assignments[0].PersonID)
}

func TestGenerate_FailedSlotKeepsPersonEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()
	second := models.Slot{Name: "Guard 02:00-04:00", RequiredRole: models.RoleGuard}

	store.EXPECT().ListPersons(ctx).Return([]models.Person{
		{ID: 1, Role: models.RoleGuard, Available: true},
		{ID: 2, Role: models.RoleGuard, Available: true, ServiceCount: 3},
	}, nil)
	store.EXPECT().ListUnavailability(ctx, day).Return(nil, nil)
	store.EXPECT().ListAssignments(ctx, day).Return(nil, nil)

	gomock.InOrder(
		store.EXPECT().WithinTransaction(ctx, gomock.Any()).Return(errors.New("connection reset")),
		store.EXPECT().WithinTransaction(ctx, gomock.Any()).DoAndReturn(runInline(store)),
	)
	store.EXPECT().CreateAssignment(ctx, &models.Assignment{PersonID: 1, Date: day, SlotName: second.Name}).Return(nil)
	store.EXPECT().IncrementServiceCount(ctx, uint(1)).Return(nil)
	store.EXPECT().RecordGeneration(ctx, gomock.Any()).Return(errors.New("log table missing"))

	result, err := scheduler.NewScheduler(store, []models.Slot{guardSlot, second}).Generate(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, models.SlotFailed, result.Outcomes[0].Status)
	assert.Contains(t, result.Outcomes[0].Error, "connection reset")
	assert.Equal(t, models.SlotFilled, result.Outcomes[1].Status)
	assert.Equal(t, uint(1), result.Outcomes[1].PersonID)
	assert.Equal(t, 1, result.Failed())
	assert.True(t, result.PartialSuccess())
}

func TestGenerate_ReadFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	store.EXPECT().ListPersons(ctx).Return(nil, errors.New("database is locked"))

	result, err := scheduler.NewScheduler(store, []models.Slot{guardSlot}).Generate(ctx, day)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to load roster")
}

func TestGenerate_ExistingAssignmentsBlockPersonAndSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()
	second := models.Slot{Name: "Guard 02:00-04:00", RequiredRole: models.RoleGuard}

	store.EXPECT().ListPersons(ctx).Return([]models.Person{
		{ID: 1, Role: models.RoleGuard, Available: true},
		{ID: 2, Role: models.RoleGuard, Available: true, ServiceCount: 7},
	}, nil)
	store.EXPECT().ListUnavailability(ctx, day).Return(nil, nil)
	// an earlier run put person 1 on the first watch
	store.EXPECT().ListAssignments(ctx, day).Return([]models.Assignment{
		{ID: 40, PersonID: 1, Date: day, SlotName: guardSlot.Name},
	}, nil)
	store.EXPECT().WithinTransaction(ctx, gomock.Any()).DoAndReturn(runInline(store))
	store.EXPECT().CreateAssignment(ctx, &models.Assignment{PersonID: 2, Date: day, SlotName: second.Name}).Return(nil)
	store.EXPECT().IncrementServiceCount(ctx, uint(2)).Return(nil)
	store.EXPECT().RecordGeneration(ctx, gomock.Any()).Return(nil)

	result, err := scheduler.NewScheduler(store, []models.Slot{guardSlot, second}).Generate(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, models.SlotAlreadyFilled, result.Outcomes[0].Status)
	assert.Equal(t, uint(1), result.Outcomes[0].PersonID)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, uint(2), result.Assignments[0].PersonID)
}
