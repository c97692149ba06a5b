package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymsupervisor/internal/taxonomy"
	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
)

// WeeklyMilestone is a workout-count deadline within the week. DayOffset
// counts days from the Monday week start.
type WeeklyMilestone struct {
	Milestone        int
	RequiredWorkouts int
	DayOffset        int
	Hour             int
	Minute           int
	Label            string
}

var weeklyMilestones = []WeeklyMilestone{
	{Milestone: 1, RequiredWorkouts: 1, DayOffset: 1, Hour: 20, Minute: 0, Label: "Tuesday 8:00 PM"},
	{Milestone: 2, RequiredWorkouts: 2, DayOffset: 3, Hour: 20, Minute: 0, Label: "Thursday 8:00 PM"},
	{Milestone: 3, RequiredWorkouts: 3, DayOffset: 6, Hour: 16, Minute: 0, Label: "Sunday 4:00 PM"},
}

// trackedBodyAreas participate in the weekly focus suggestion;
// nudgePriority is the order missing areas get suggested in.
var (
	trackedBodyAreas = []taxonomy.BodyArea{
		taxonomy.BodyAreaChest,
		taxonomy.BodyAreaShoulders,
		taxonomy.BodyAreaBack,
		taxonomy.BodyAreaLegs,
		taxonomy.BodyAreaCore,
	}
	nudgePriority = []taxonomy.BodyArea{
		taxonomy.BodyAreaChest,
		taxonomy.BodyAreaBack,
		taxonomy.BodyAreaShoulders,
		taxonomy.BodyAreaLegs,
		taxonomy.BodyAreaCore,
	}
)

// weekStart returns Monday 00:00 of the week containing now.
func weekStart(now time.Time) time.Time {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}

func (m WeeklyMilestone) deadline(weekStart time.Time) time.Time {
	day := weekStart.AddDate(0, 0, m.DayOffset)
	return time.Date(day.Year(), day.Month(), day.Day(), m.Hour, m.Minute, 0, 0, day.Location())
}

// SendWeeklyDeadlineNudges checks each milestone of the current week and
// sends a nudge for every one whose deadline passed with too few
// workouts. Each (week, milestone) nudge goes out at most once; the
// sent-flag is claimed before sending so overlapping runs cannot double
// send.
func (s *Service) SendWeeklyDeadlineNudges(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.sendWeeklyDeadlineNudges")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.nowFn()
	start := weekStart(now)

	for _, milestone := range weeklyMilestones {
		sent, err := s.repo.WeeklyNudgeSent(ctx, start, milestone.Milestone)
		if err != nil {
			return fmt.Errorf("weekly nudge sent check: %w", err)
		}
		if sent {
			continue
		}

		deadline := milestone.deadline(start)
		if now.Before(deadline) {
			continue
		}

		completed, err := s.repo.CountWorkoutsBetween(ctx, start, deadline)
		if err != nil {
			return fmt.Errorf("count workouts before deadline: %w", err)
		}
		if completed >= milestone.RequiredWorkouts {
			continue
		}

		claimed, err := s.repo.MarkWeeklyNudgeSent(ctx, start, milestone.Milestone)
		if err != nil {
			return fmt.Errorf("mark weekly nudge sent: %w", err)
		}
		if !claimed {
			continue
		}

		focus, err := s.nudgeFocusText(ctx, now)
		if err != nil {
			return err
		}
		if err := s.send(
			s.config.AllowedUserID,
			fmt.Sprintf(
				"Nudge: You haven't completed workout #%d by %s.\n%s\nTap I trained and log now.",
				milestone.Milestone, milestone.Label, focus,
			),
			reminderKeyboard(),
		); err != nil {
			return err
		}
		s.metrics.CounterNudgesSent.Inc()
		log.Debugf("weekly nudge sent for milestone %d, week of %s", milestone.Milestone, start.Format("2006-01-02"))
	}

	return nil
}

// nudgeFocusText suggests which body areas to train, based on the areas
// not trained within the past 7 days.
func (s *Service) nudgeFocusText(ctx context.Context, now time.Time) (string, error) {
	counts, err := s.repo.SummarizeSetsByAreaBetween(ctx, now.AddDate(0, 0, -7), now)
	if err != nil {
		return "", fmt.Errorf("summarize areas for nudge: %w", err)
	}

	trained := make(map[taxonomy.BodyArea]struct{})
	for _, c := range counts {
		if c.Sets > 0 && isTracked(c.Area) {
			trained[c.Area] = struct{}{}
		}
	}

	var missing []string
	for _, area := range nudgePriority {
		if _, ok := trained[area]; !ok {
			missing = append(missing, area.String())
		}
	}

	switch len(missing) {
	case 0:
		return "You've trained chest, back, shoulders, legs, and core in the past 7 days.", nil
	case 1:
		return fmt.Sprintf("Suggested focus: %s (not trained in the past 7 days).", missing[0]), nil
	default:
		return fmt.Sprintf(
			"Suggested focus order (not trained in the past 7 days): %s.",
			strings.Join(missing, " > "),
		), nil
	}
}

func isTracked(area taxonomy.BodyArea) bool {
	for _, tracked := range trackedBodyAreas {
		if area == tracked {
			return true
		}
	}
	return false
}
