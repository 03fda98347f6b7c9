package progress

import (
	"testing"
	"time"

	"bauportal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-10))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 55, Clamp(55))
	assert.Equal(t, 100, Clamp(100))
	assert.Equal(t, 100, Clamp(250))
}

func TestForProject_MeanOfAssignments(t *testing.T) {
	p := &domain.Project{Status: domain.ProjectInProgress}
	assignments := []domain.TradeAssignment{
		{ProgressPercent: 40},
		{ProgressPercent: 80},
	}

	assert.Equal(t, 60, ForProject(p, assignments, time.Now()))
}

func TestForProject_MeanClampsOutOfRangeValues(t *testing.T) {
	p := &domain.Project{Status: domain.ProjectInProgress}
	assignments := []domain.TradeAssignment{
		{ProgressPercent: 150},
		{ProgressPercent: -50},
	}

	assert.Equal(t, 50, ForProject(p, assignments, time.Now()))
}

func TestForProject_DateHeuristicMidway(t *testing.T) {
	p := &domain.Project{
		Status:       domain.ProjectInProgress,
		PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PlannedEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 50, ForProject(p, nil, now))
}

func TestForProject_CompletedAlways100(t *testing.T) {
	p := &domain.Project{
		Status:       domain.ProjectCompleted,
		PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PlannedEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 100, ForProject(p, nil, now))
}

func TestForProject_Cancelled(t *testing.T) {
	p := &domain.Project{Status: domain.ProjectCancelled}
	assert.Equal(t, 0, ForProject(p, nil, time.Now()))
}

func TestFromSchedule_NonPositiveDuration(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{
		Status:       domain.ProjectInProgress,
		PlannedStart: start,
		PlannedEnd:   start,
	}
	assert.Equal(t, 0, FromSchedule(p, start.Add(24*time.Hour)))

	p.PlannedEnd = start.Add(-48 * time.Hour)
	assert.Equal(t, 0, FromSchedule(p, start))
}

func TestFromSchedule_ClampedToRange(t *testing.T) {
	p := &domain.Project{
		Status:       domain.ProjectInProgress,
		PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PlannedEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	before := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, FromSchedule(p, before))

	after := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 100, FromSchedule(p, after))
}
