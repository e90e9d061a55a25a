package autogen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arnavshah/duty-planner-go/internal/mocks"
	"github.com/arnavshah/duty-planner-go/pkg/autogen"
	"github.com/arnavshah/duty-planner-go/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func clock() time.Time {
	return time.Date(2025, 12, 31, 22, 0, 0, 0, time.UTC)
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := autogen.New("every night", nil, 1)
	assert.Error(t, err)

	_, err = autogen.New("@daily", nil, -1)
	assert.Error(t, err)
}

func TestParseSchedule(t *testing.T) {
	_, err := autogen.ParseSchedule("0 18 * * *")
	assert.NoError(t, err)
	_, err = autogen.ParseSchedule("@every 1h")
	assert.NoError(t, err)
	_, err = autogen.ParseSchedule("0 0 18 * * *")
	assert.Error(t, err)
}

func TestRunOnce_GeneratesOffsetDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	ctx := context.Background()

	job, err := autogen.New("@daily", gen, 1, autogen.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", job.TargetDate())

	gen.EXPECT().Generate(ctx, "2026-01-01").Return(&models.GenerateResult{Date: "2026-01-01"}, nil)
	result, err := job.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", result.Date)

	gen.EXPECT().Generate(ctx, "2026-01-01").Return(nil, errors.New("database is locked"))
	_, err = job.RunOnce(ctx)
	assert.ErrorContains(t, err, "2026-01-01")
}

func TestStart_FiresOnSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	fired := make(chan string, 4)
	gen.EXPECT().Generate(gomock.Any(), "2025-12-31").DoAndReturn(func(_ context.Context, date string) (*models.GenerateResult, error) {
		fired <- date
		return &models.GenerateResult{Date: date}, nil
	}).MinTimes(1)

	job, err := autogen.New("@every 1s", gen, 0, autogen.WithClock(clock))
	require.NoError(t, err)
	job.Start()

	select {
	case date := <-fired:
		assert.Equal(t, "2025-12-31", date)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled generation did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	job.Stop(ctx)
}
