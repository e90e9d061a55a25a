package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arnavshah/duty-planner-go/internal/app"
	"github.com/arnavshah/duty-planner-go/internal/config"
	"github.com/arnavshah/duty-planner-go/internal/testutils"
	"github.com/arnavshah/duty-planner-go/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func testOpener(t *testing.T) (Opener, *gorm.DB) {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	cfg := &config.Config{
		MetricsNamespace: "dutyctl_test",
		Slots: []models.Slot{
			{Name: "Guard 00:00-02:00", TimeRange: "00:00-02:00", RequiredRole: models.RoleGuard},
			{Name: "Kitchen Morning", TimeRange: "05:00-13:00", RequiredRole: models.RoleKitchen},
		},
	}
	// the database outlives each command and is closed by the test cleanup
	return func(string) (*app.App, func() error, error) {
		return app.NewWithDB(cfg, db, nil), func() error { return nil }, nil
	}, db
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	open := func(string) (*app.App, func() error, error) { return nil, nil, errors.New("must not open") }

	assert.Equal(t, exitUsage, run(context.Background(), nil, &stdout, &stderr, open))
	assert.Contains(t, stderr.String(), "Usage: dutyctl")

	stderr.Reset()
	assert.Equal(t, exitUsage, run(context.Background(), []string{"rebalance"}, &stdout, &stderr, open))
	assert.Contains(t, stderr.String(), `unknown command "rebalance"`)

	stderr.Reset()
	assert.Equal(t, exitUsage, run(context.Background(), []string{"show", "--date", "14/03/2025"}, &stdout, &stderr, open))

	stderr.Reset()
	assert.Equal(t, exitUsage, run(context.Background(), []string{"show", "-o", "xml"}, &stdout, &stderr, open))
}

func TestRun_GenerateConfirmShow(t *testing.T) {
	open, db := testOpener(t)
	factory := testutils.NewPersonFactory()
	testutils.Seed(t, db, factory.WithRole("Levi", models.RoleGuard, 0))
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"generate", "--date", "2025-03-14", "-o", "json"}, &stdout, &stderr, open)
	// no Kitchen person, so the run is partial
	assert.Equal(t, exitPartial, code, stderr.String())

	var result models.GenerateResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, models.SlotFilled, result.Outcomes[0].Status)
	assert.Equal(t, models.SlotUnfilled, result.Outcomes[1].Status)

	stdout.Reset()
	testutils.Seed(t, db, factory.WithRole("Ben", models.RoleKitchen, 0))
	code = run(ctx, []string{"generate", "-d", "2025-03-14"}, &stdout, &stderr, open)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "1 filled, 1 already filled, 0 unfilled, 0 failed")

	stdout.Reset()
	assert.Equal(t, exitOK, run(ctx, []string{"confirm", "-d", "2025-03-14"}, &stdout, &stderr, open))
	assert.Contains(t, stdout.String(), "2 assignments confirmed")

	stdout.Reset()
	assert.Equal(t, exitOK, run(ctx, []string{"show", "-d", "2025-03-14", "-o", "yaml"}, &stdout, &stderr, open))
	var view struct {
		Date        string `yaml:"date"`
		Confirmed   bool   `yaml:"confirmed"`
		Assignments []struct {
			PersonName string `yaml:"person_name"`
		} `yaml:"assignments"`
	}
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &view))
	assert.True(t, view.Confirmed)
	require.Len(t, view.Assignments, 2)
	assert.Equal(t, "Levi", view.Assignments[0].PersonName)
	assert.Equal(t, "Ben", view.Assignments[1].PersonName)

	stdout.Reset()
	assert.Equal(t, exitOK, run(ctx, []string{"coverage", "-d", "2025-03-15"}, &stdout, &stderr, open))
	assert.Contains(t, stdout.String(), "Kitchen Morning")
}
