package workout

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/2beens/gymsupervisor/internal/taxonomy"
)

// TestRepo is an in-memory stand-in for Repo, used by handler and bot
// tests. It mirrors the Repo semantics: half-open windows, taxonomy
// canonicalization, at-most-once sent-flags.
type TestRepo struct {
	mu       sync.Mutex
	taxonomy *taxonomy.Table
	nowFn    func() time.Time

	workouts []Workout
	entries  []Entry
	snoozes  []Snooze
	nudges   map[nudgeKey]struct{}
	reports  map[reportKey]struct{}
	nextID   int
}

type nudgeKey struct {
	weekStart time.Time
	milestone int
}

type reportKey struct {
	year  int
	month time.Month
}

func NewTestRepo(table *taxonomy.Table, nowFn func() time.Time) *TestRepo {
	return &TestRepo{
		taxonomy: table,
		nowFn:    nowFn,
		nudges:   make(map[nudgeKey]struct{}),
		reports:  make(map[reportKey]struct{}),
		nextID:   1,
	}
}

func (r *TestRepo) LogWorkout(_ context.Context, entries []LogEntry, note string) (*Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := taxonomy.NormalizeKey(e.WorkoutType)
		if key == "" {
			continue
		}
		label := r.taxonomy.DisplayLabel(key)
		if label == key {
			label = taxonomy.NormalizeLabel(e.WorkoutType)
		}
		valid = append(valid, Entry{
			WorkoutType:  key,
			DisplayLabel: label,
			Reps:         e.Reps,
			Weight:       e.Weight,
		})
	}
	if len(valid) == 0 {
		return nil, ErrNoValidEntries
	}

	note = strings.TrimSpace(note)
	now := r.nowFn()
	workout := Workout{ID: r.nextID, Note: note, Sets: len(valid), CreatedAt: now}
	r.nextID++
	r.workouts = append(r.workouts, workout)

	for _, e := range valid {
		e.ID = r.nextID
		r.nextID++
		e.WorkoutID = workout.ID
		e.CreatedAt = now
		e.SourceText = note
		r.entries = append(r.entries, e)
	}

	return &workout, nil
}

func (r *TestRepo) LogSnooze(_ context.Context, source string) (*Snooze, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snooze := Snooze{ID: r.nextID, Source: source, CreatedAt: r.nowFn()}
	r.nextID++
	r.snoozes = append(r.snoozes, snooze)
	return &snooze, nil
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func (r *TestRepo) CountWorkoutsBetween(_ context.Context, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, w := range r.workouts {
		if inWindow(w.CreatedAt, from, to) {
			count++
		}
	}
	return count, nil
}

func (r *TestRepo) CountSnoozesBetween(_ context.Context, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, s := range r.snoozes {
		if inWindow(s.CreatedAt, from, to) {
			count++
		}
	}
	return count, nil
}

func (r *TestRepo) SummarizeSetsByTypeBetween(_ context.Context, from, to time.Time) ([]TypeSetCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byLabel := make(map[string]int)
	for _, e := range r.entries {
		if inWindow(e.CreatedAt, from, to) {
			byLabel[e.DisplayLabel]++
		}
	}

	var counts []TypeSetCount
	for label, sets := range byLabel {
		counts = append(counts, TypeSetCount{Label: label, Sets: sets})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Sets != counts[j].Sets {
			return counts[i].Sets > counts[j].Sets
		}
		return counts[i].Label < counts[j].Label
	})
	return counts, nil
}

func (r *TestRepo) SummarizeSetsByAreaBetween(_ context.Context, from, to time.Time) ([]AreaSetCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byArea := make(map[taxonomy.BodyArea]int)
	for _, e := range r.entries {
		if inWindow(e.CreatedAt, from, to) {
			byArea[r.taxonomy.Lookup(e.WorkoutType)]++
		}
	}
	return sortedAreaCounts(byArea), nil
}

func (r *TestRepo) SummarizeSetsByAreaForWorkout(_ context.Context, workoutID int) ([]AreaSetCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byArea := make(map[taxonomy.BodyArea]int)
	for _, e := range r.entries {
		if e.WorkoutID == workoutID {
			byArea[r.taxonomy.Lookup(e.WorkoutType)]++
		}
	}
	return sortedAreaCounts(byArea), nil
}

func sortedAreaCounts(byArea map[taxonomy.BodyArea]int) []AreaSetCount {
	var counts []AreaSetCount
	for area, sets := range byArea {
		counts = append(counts, AreaSetCount{Area: area, Sets: sets})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Sets != counts[j].Sets {
			return counts[i].Sets > counts[j].Sets
		}
		return counts[i].Area < counts[j].Area
	})
	return counts
}

func (r *TestRepo) Summary(ctx context.Context, from, to time.Time) (*PeriodSummary, error) {
	summary := &PeriodSummary{From: from, To: to}

	var err error
	if summary.Workouts, err = r.CountWorkoutsBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if summary.Snoozes, err = r.CountSnoozesBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if summary.ByType, err = r.SummarizeSetsByTypeBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if summary.ByArea, err = r.SummarizeSetsByAreaBetween(ctx, from, to); err != nil {
		return nil, err
	}
	for _, c := range summary.ByType {
		summary.Sets += c.Sets
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if inWindow(e.CreatedAt, from, to) {
			summary.TotalVolume += float64(e.Reps) * e.Weight
		}
	}
	return summary, nil
}

func (r *TestRepo) StatsSummary(context.Context) (*StatsSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &StatsSummary{
		WorkoutCount: len(r.workouts),
		SnoozeCount:  len(r.snoozes),
		TotalSets:    len(r.entries),
	}
	for _, e := range r.entries {
		stats.TotalVolume += float64(e.Reps) * e.Weight
	}
	if stats.WorkoutCount > 0 {
		stats.AvgSets = float64(stats.TotalSets) / float64(stats.WorkoutCount)
		stats.AvgVolume = stats.TotalVolume / float64(stats.WorkoutCount)
	}
	return stats, nil
}

func (r *TestRepo) WorkoutsBetween(_ context.Context, from, to time.Time) ([]Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var workouts []Workout
	for _, w := range r.workouts {
		if inWindow(w.CreatedAt, from, to) {
			workouts = append(workouts, w)
		}
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].CreatedAt.Before(workouts[j].CreatedAt)
	})
	return workouts, nil
}

func (r *TestRepo) RecentWorkouts(_ context.Context, limit int) ([]Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workouts := make([]Workout, len(r.workouts))
	copy(workouts, r.workouts)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].CreatedAt.After(workouts[j].CreatedAt)
	})
	if len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts, nil
}

func (r *TestRepo) SnoozesBetween(_ context.Context, from, to time.Time) ([]Snooze, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var snoozes []Snooze
	for _, s := range r.snoozes {
		if inWindow(s.CreatedAt, from, to) {
			snoozes = append(snoozes, s)
		}
	}
	sort.Slice(snoozes, func(i, j int) bool {
		return snoozes[i].CreatedAt.Before(snoozes[j].CreatedAt)
	})
	return snoozes, nil
}

func (r *TestRepo) SetCountsByDay(_ context.Context, from, to time.Time) ([]DaySetCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDay := make(map[time.Time]int)
	for _, e := range r.entries {
		if inWindow(e.CreatedAt, from, to) {
			day := time.Date(
				e.CreatedAt.Year(), e.CreatedAt.Month(), e.CreatedAt.Day(),
				0, 0, 0, 0, e.CreatedAt.Location(),
			)
			byDay[day]++
		}
	}

	var counts []DaySetCount
	for day, sets := range byDay {
		counts = append(counts, DaySetCount{Day: day, Sets: sets})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Day.Before(counts[j].Day)
	})
	return counts, nil
}

func (r *TestRepo) WeeklyNudgeSent(_ context.Context, weekStart time.Time, milestone int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, sent := r.nudges[nudgeKey{weekStart: weekStart, milestone: milestone}]
	return sent, nil
}

func (r *TestRepo) MarkWeeklyNudgeSent(_ context.Context, weekStart time.Time, milestone int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := nudgeKey{weekStart: weekStart, milestone: milestone}
	if _, sent := r.nudges[key]; sent {
		return false, nil
	}
	r.nudges[key] = struct{}{}
	return true, nil
}

func (r *TestRepo) MonthlyReportSent(_ context.Context, year int, month time.Month) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, sent := r.reports[reportKey{year: year, month: month}]
	return sent, nil
}

func (r *TestRepo) MarkMonthlyReportSent(_ context.Context, year int, month time.Month) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := reportKey{year: year, month: month}
	if _, sent := r.reports[key]; sent {
		return false, nil
	}
	r.reports[key] = struct{}{}
	return true, nil
}

func (r *TestRepo) EntriesForWorkout(_ context.Context, workoutID int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []Entry
	for _, e := range r.entries {
		if e.WorkoutID == workoutID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}
