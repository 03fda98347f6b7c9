package progress

import (
	"math"
	"time"

	"bauportal/internal/domain"
)

// Clamp limits a progress value to the 0..100 range.
func Clamp(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ForProject computes the overall completion percentage of a project.
//
// When trade assignments exist, the result is the unweighted mean of their
// progress values: every trade counts equally regardless of duration or
// cost. Without assignments the date heuristic estimates progress from the
// planned schedule.
func ForProject(p *domain.Project, assignments []domain.TradeAssignment, now time.Time) int {
	if len(assignments) > 0 {
		return fromAssignments(assignments)
	}
	return FromSchedule(p, now)
}

func fromAssignments(assignments []domain.TradeAssignment) int {
	sum := 0
	for _, a := range assignments {
		sum += Clamp(a.ProgressPercent)
	}
	return int(math.Round(float64(sum) / float64(len(assignments))))
}

// FromSchedule estimates progress as elapsed planned time over total
// planned duration. Completed projects are always 100, cancelled ones 0,
// and a non-positive planned duration yields 0 rather than a division by
// zero.
func FromSchedule(p *domain.Project, now time.Time) int {
	switch p.Status {
	case domain.ProjectCompleted:
		return 100
	case domain.ProjectCancelled:
		return 0
	}

	total := p.PlannedEnd.Sub(p.PlannedStart)
	if total <= 0 {
		return 0
	}

	elapsed := now.Sub(p.PlannedStart)
	ratio := elapsed.Seconds() / total.Seconds()
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}
