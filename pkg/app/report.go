package app

import (
	"context"

	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// ReportDay is one training day inside a report window.
type ReportDay struct {
	Day       workout.TrainingDay
	Status    workout.Status
	Completed int
	Target    int
}

// ReportResult summarises the training days between two dates, inclusive.
type ReportResult struct {
	Since  timeutil.Date
	Until  timeutil.Date
	Days   []ReportDay
	Counts map[workout.Status]int
	// Completed and Target are set totals over every day.
	Completed int
	Target    int
}

// Report returns the training days between the provided bounds with their
// derived status.
func (s *Service) Report(ctx context.Context, since, until timeutil.Date) (ReportResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	days, err := s.Days(ctx)
	if err != nil {
		return ReportResult{}, err
	}

	today := s.Today()
	result := ReportResult{
		Since:  since,
		Until:  until,
		Counts: make(map[workout.Status]int, len(workout.AllStatuses())),
	}
	for _, day := range days {
		if day.Date.Before(since) || day.Date.After(until) {
			continue
		}
		completed, target := day.Progress()
		status := day.Status(today)
		result.Days = append(result.Days, ReportDay{
			Day:       day,
			Status:    status,
			Completed: completed,
			Target:    target,
		})
		result.Counts[status]++
		result.Completed += completed
		result.Target += target
	}
	return result, nil
}
