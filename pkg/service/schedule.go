package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/repository"
	"github.com/arnavshah/duty-planner-go/pkg/scheduler"
)

// recentGenerations is how many generation logs Stats returns
const recentGenerations = 30

// ScheduleService exposes the daily schedule: generation, confirmation and reporting
type ScheduleService struct {
	generator Generator
	store     repository.Store
	persons   repository.PersonRepositoryInterface
	now       Clock
}

var _ ScheduleServiceInterface = (*ScheduleService)(nil)

// NewScheduleService creates a new schedule service. A nil clock means time.Now.
func NewScheduleService(generator Generator, store repository.Store, persons repository.PersonRepositoryInterface, now Clock) *ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{
		generator: generator,
		store:     store,
		persons:   persons,
		now:       now,
	}
}

// AssignmentView is one row of a day's schedule
type AssignmentView struct {
	ID         uint        `json:"id" yaml:"id"`
	Slot       string      `json:"slot" yaml:"slot"`
	TimeRange  string      `json:"time_range,omitempty" yaml:"time_range,omitempty"`
	PersonID   uint        `json:"person_id" yaml:"person_id"`
	PersonName string      `json:"person_name" yaml:"person_name"`
	PersonRank string      `json:"person_rank,omitempty" yaml:"person_rank,omitempty"`
	Role       models.Role `json:"role,omitempty" yaml:"role,omitempty"`
	Confirmed  bool        `json:"confirmed" yaml:"confirmed"`
}

// ScheduleView is the schedule of one date
type ScheduleView struct {
	Date        string           `json:"date" yaml:"date"`
	Confirmed   bool             `json:"confirmed" yaml:"confirmed"`
	Assignments []AssignmentView `json:"assignments" yaml:"assignments"`
}

// PersonStats is the service count of one person
type PersonStats struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Role         models.Role `json:"role"`
	ServiceCount int         `json:"service_count"`
}

// StatsResponse summarises how service has been distributed
type StatsResponse struct {
	TotalPersons  int                    `json:"total_persons"`
	TotalServices int                    `json:"total_services"`
	FairnessScore float64                `json:"fairness_score"`
	Persons       []PersonStats          `json:"persons"`
	Generations   []models.GenerationLog `json:"generations"`
}

// DashboardResponse is the landing overview
type DashboardResponse struct {
	PersonnelCount   int64  `json:"personnel_count"`
	SlotsPerDay      int    `json:"slots_per_day"`
	Today            string `json:"today"`
	Tomorrow         string `json:"tomorrow"`
	TodayAssigned    int    `json:"today_assigned"`
	TomorrowAssigned int    `json:"tomorrow_assigned"`
}

// View returns the assignments of date in creation order
func (s *ScheduleService) View(ctx context.Context, date string) (*ScheduleView, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	assignments, err := s.store.ListAssignments(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	ranges := make(map[string]string)
	for _, slot := range s.generator.Slots() {
		ranges[slot.Name] = slot.TimeRange
	}

	view := &ScheduleView{
		Date:        date,
		Confirmed:   len(assignments) > 0,
		Assignments: make([]AssignmentView, 0, len(assignments)),
	}
	for _, a := range assignments {
		row := AssignmentView{
			ID:        a.ID,
			Slot:      a.SlotName,
			TimeRange: ranges[a.SlotName],
			PersonID:  a.PersonID,
			Confirmed: a.Confirmed,
		}
		if a.Person != nil {
			row.PersonName = a.Person.Name
			row.PersonRank = a.Person.Rank
			row.Role = a.Person.Role
		}
		view.Confirmed = view.Confirmed && a.Confirmed
		view.Assignments = append(view.Assignments, row)
	}
	return view, nil
}

// Generate fills the open slots of date
func (s *ScheduleService) Generate(ctx context.Context, date string) (*models.GenerateResult, error) {
	return s.generator.Generate(ctx, date)
}

// Confirm marks the schedule of date as confirmed and returns how many
// assignments it has
func (s *ScheduleService) Confirm(ctx context.Context, date string) (int64, error) {
	if err := checkDate(date); err != nil {
		return 0, err
	}
	n, err := s.store.ConfirmAssignments(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm schedule: %w", err)
	}
	logger.FromContext(ctx).WithFields(map[string]interface{}{"date": date, "assignments": n}).Info("schedule confirmed")
	return n, nil
}

// Coverage reports how each slot of date can be staffed
func (s *ScheduleService) Coverage(ctx context.Context, date string) ([]models.SlotCoverage, error) {
	return s.generator.Coverage(ctx, date)
}

// Slots returns the daily slot catalog
func (s *ScheduleService) Slots() []models.Slot {
	return s.generator.Slots()
}

// Stats reports service counts, their fairness and the recent generation runs
func (s *ScheduleService) Stats(ctx context.Context) (*StatsResponse, error) {
	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	logs, err := s.store.ListGenerationLogs(ctx, recentGenerations)
	if err != nil {
		return nil, fmt.Errorf("failed to load generation logs: %w", err)
	}

	stats := &StatsResponse{
		TotalPersons:  len(persons),
		FairnessScore: scheduler.FairnessScore(persons),
		Persons:       make([]PersonStats, 0, len(persons)),
		Generations:   logs,
	}
	for _, p := range persons {
		stats.TotalServices += p.ServiceCount
		stats.Persons = append(stats.Persons, PersonStats{ID: p.ID, Name: p.Name, Role: p.Role, ServiceCount: p.ServiceCount})
	}
	return stats, nil
}

// Dashboard returns the roster size and the state of today and tomorrow
func (s *ScheduleService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	count, err := s.persons.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count personnel: %w", err)
	}

	now := s.now()
	resp := &DashboardResponse{
		PersonnelCount: count,
		SlotsPerDay:    len(s.generator.Slots()),
		Today:          models.FormatDate(now),
		Tomorrow:       models.FormatDate(now.AddDate(0, 0, 1)),
	}

	today, err := s.store.ListAssignments(ctx, resp.Today)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's schedule: %w", err)
	}
	tomorrow, err := s.store.ListAssignments(ctx, resp.Tomorrow)
	if err != nil {
		return nil, fmt.Errorf("failed to load tomorrow's schedule: %w", err)
	}
	resp.TodayAssigned = len(today)
	resp.TomorrowAssigned = len(tomorrow)
	return resp, nil
}

// ExportCSV writes the schedule of date as CSV
func (s *ScheduleService) ExportCSV(ctx context.Context, date string, w io.Writer) error {
	view, err := s.View(ctx, date)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "slot", "time_range", "person_id", "name", "rank", "role", "confirmed"}); err != nil {
		return err
	}
	for _, a := range view.Assignments {
		if err := writer.Write([]string{
			view.Date,
			a.Slot,
			a.TimeRange,
			strconv.FormatUint(uint64(a.PersonID), 10),
			a.PersonName,
			a.PersonRank,
			string(a.Role),
			strconv.FormatBool(a.Confirmed),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
