package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymsupervisor/internal/workout"
)

var errUnknownPeriod = errors.New("unknown summary period")

func (s *Service) summaryWindow(period string) (label string, from, to time.Time, err error) {
	now := s.nowFn()
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "week":
		return "past week", now.AddDate(0, 0, -7), now, nil
	case "month":
		return "past month", now.AddDate(0, 0, -30), now, nil
	case "quarter":
		return "past quarter", now.AddDate(0, 0, -90), now, nil
	default:
		return "", time.Time{}, time.Time{}, errUnknownPeriod
	}
}

func (s *Service) periodSummaryText(ctx context.Context, period string) (string, error) {
	label, from, to, err := s.summaryWindow(period)
	if err != nil {
		return "", err
	}

	summary, err := s.repo.Summary(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("period summary: %w", err)
	}

	lines := []string{
		fmt.Sprintf("Workout summary (%s)", label),
		fmt.Sprintf("Window: %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
		fmt.Sprintf("Workouts: %d", summary.Workouts),
		fmt.Sprintf("Skips (snoozes): %d", summary.Snoozes),
		fmt.Sprintf("Total sets: %d", summary.Sets),
		fmt.Sprintf("Total volume: %.1f", summary.TotalVolume),
		"",
	}
	lines = append(lines, typeBreakdownLines("By workout type:", summary.ByType)...)
	lines = append(lines, "")
	lines = append(lines, areaBreakdownLines("By body area:", summary.ByArea)...)
	return strings.Join(lines, "\n"), nil
}

func typeBreakdownLines(title string, counts []workout.TypeSetCount) []string {
	lines := []string{title}
	if len(counts) == 0 {
		return append(lines, "- none")
	}
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("- %s: %d", c.Label, c.Sets))
	}
	return lines
}

func areaBreakdownLines(title string, counts []workout.AreaSetCount) []string {
	lines := []string{title}
	if len(counts) == 0 {
		return append(lines, "- none")
	}
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("- %s: %d", c.Area, c.Sets))
	}
	return lines
}

// workoutAreaSummaryText builds the one-line body-area recap attached to
// the save confirmation.
func (s *Service) workoutAreaSummaryText(ctx context.Context, workoutID int) (string, error) {
	counts, err := s.repo.SummarizeSetsByAreaForWorkout(ctx, workoutID)
	if err != nil {
		return "", fmt.Errorf("workout area summary: %w", err)
	}
	if len(counts) == 0 {
		return "Sets by body area: unmapped 0.", nil
	}

	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s %d", c.Area, c.Sets))
	}
	return fmt.Sprintf("Sets by body area: %s.", strings.Join(parts, ", ")), nil
}

// previousMonthWindow returns the [start, end) window covering the full
// calendar month before now, plus its human label, e.g. "February 2025".
func previousMonthWindow(now time.Time) (from, to time.Time, label string) {
	to = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	from = to.AddDate(0, -1, 0)
	return from, to, from.Format("January 2006")
}

func (s *Service) monthlyReportText(ctx context.Context, now time.Time) (string, error) {
	from, to, label := previousMonthWindow(now)

	summary, err := s.repo.Summary(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("monthly summary: %w", err)
	}
	workouts, err := s.repo.WorkoutsBetween(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("monthly workouts: %w", err)
	}

	lines := []string{
		fmt.Sprintf("Monthly summary (%s)", label),
		fmt.Sprintf("Workouts done: %d", summary.Workouts),
		fmt.Sprintf("Workouts skipped (snoozes): %d", summary.Snoozes),
		fmt.Sprintf("Total sets: %d", summary.Sets),
		"",
		"Workouts completed:",
	}
	if len(workouts) == 0 {
		lines = append(lines, "- none")
	} else {
		for _, w := range workouts {
			ts := w.CreatedAt.Format("2006-01-02 15:04:05")
			if note := strings.TrimSpace(w.Note); note != "" {
				lines = append(lines, fmt.Sprintf("- %s: %s (%d set(s))", ts, note, w.Sets))
			} else {
				lines = append(lines, fmt.Sprintf("- %s: %d set(s)", ts, w.Sets))
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, typeBreakdownLines("By workout type:", summary.ByType)...)
	lines = append(lines, "")
	lines = append(lines, areaBreakdownLines("By body area:", summary.ByArea)...)
	return strings.Join(lines, "\n"), nil
}
