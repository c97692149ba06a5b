package workout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymsupervisor/internal/taxonomy"
	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
)

var (
	ErrNoValidEntries  = errors.New("no valid entries to log")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// pgxConn is the slice of pgxpool.Pool the repo uses; tests stub it to
// drive transaction failures.
type pgxConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo persists workouts, their set entries, snoozes and the sent-flags
// guarding at-most-once weekly nudges and monthly reports.
//
// Timestamps are stored as naive local time, truncated to the second.
type Repo struct {
	db       pgxConn
	taxonomy *taxonomy.Table
	nowFn    func() time.Time
}

func NewRepo(db *pgxpool.Pool, table *taxonomy.Table, loc *time.Location) *Repo {
	return &Repo{
		db:       db,
		taxonomy: table,
		nowFn: func() time.Time {
			return time.Now().In(loc).Truncate(time.Second)
		},
	}
}

func (r *Repo) Setup(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.setup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS workouts (
			id SERIAL PRIMARY KEY,
			note TEXT NOT NULL DEFAULT '',
			sets INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS workout_entries (
			id SERIAL PRIMARY KEY,
			workout_id INTEGER NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
			workout_type TEXT NOT NULL,
			display_label TEXT NOT NULL,
			reps INTEGER NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP NOT NULL,
			source_text TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_entries_workout_id ON workout_entries(workout_id);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_entries_type ON workout_entries(workout_type);`,
		`CREATE TABLE IF NOT EXISTS snoozes (
			id SERIAL PRIMARY KEY,
			source TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS weekly_nudges (
			id SERIAL PRIMARY KEY,
			week_start TIMESTAMP NOT NULL,
			milestone INTEGER NOT NULL,
			sent_at TIMESTAMP NOT NULL,
			UNIQUE(week_start, milestone)
		);`,
		`CREATE TABLE IF NOT EXISTS monthly_reports (
			id SERIAL PRIMARY KEY,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			sent_at TIMESTAMP NOT NULL,
			UNIQUE(year, month)
		);`,
	}
	for _, stmt := range statements {
		if _, err = r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("workout schema setup: %w", err)
		}
	}
	return nil
}

// LogWorkout stores the given entries as one workout, atomically.
// Entry types are canonicalized against the taxonomy; the display label
// is denormalized onto each entry row. Entries whose type normalizes to
// the empty key are dropped, and ErrNoValidEntries is returned when
// nothing survives.
func (r *Repo) LogWorkout(ctx context.Context, entries []LogEntry, note string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.logWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := taxonomy.NormalizeKey(e.WorkoutType)
		if key == "" {
			continue
		}
		valid = append(valid, Entry{
			WorkoutType:  key,
			DisplayLabel: r.displayLabel(key, e.WorkoutType),
			Reps:         e.Reps,
			Weight:       e.Weight,
		})
	}
	if len(valid) == 0 {
		return nil, ErrNoValidEntries
	}

	note = strings.TrimSpace(note)
	now := r.nowFn()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w [rollback: %s]", err, rbErr)
			}
		}
	}()

	workout := &Workout{Note: note, Sets: len(valid), CreatedAt: now}
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO workouts (note, sets, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		note, len(valid), now,
	).Scan(&workout.ID); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for _, e := range valid {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO workout_entries
				(workout_id, workout_type, display_label, reps, weight, created_at, source_text)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			workout.ID, e.WorkoutType, e.DisplayLabel, e.Reps, e.Weight, now, note,
		); err != nil {
			return nil, fmt.Errorf("insert workout entry: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(
		attribute.Int("workout.id", workout.ID),
		attribute.Int("workout.entries", len(valid)),
	)
	return workout, nil
}

func (r *Repo) displayLabel(key, rawType string) string {
	if label := r.taxonomy.DisplayLabel(key); label != key {
		return label
	}
	// unknown move, keep the user's wording as the label
	return taxonomy.NormalizeLabel(rawType)
}

func (r *Repo) LogSnooze(ctx context.Context, source string) (_ *Snooze, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.logSnooze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snooze := &Snooze{Source: source, CreatedAt: r.nowFn()}
	if err = r.db.QueryRow(
		ctx,
		`INSERT INTO snoozes (source, created_at) VALUES ($1, $2) RETURNING id;`,
		snooze.Source, snooze.CreatedAt,
	).Scan(&snooze.ID); err != nil {
		return nil, fmt.Errorf("insert snooze: %w", err)
	}

	span.SetAttributes(attribute.Int("snooze.id", snooze.ID))
	return snooze, nil
}

// CountWorkoutsBetween counts workouts with created_at in [from, to).
func (r *Repo) CountWorkoutsBetween(ctx context.Context, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.countWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts WHERE created_at >= $1 AND created_at < $2;`,
		from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}

func (r *Repo) CountSnoozesBetween(ctx context.Context, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.countSnoozes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM snoozes WHERE created_at >= $1 AND created_at < $2;`,
		from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count snoozes: %w", err)
	}
	return count, nil
}

// SummarizeSetsByTypeBetween returns per-move set counts for entries in
// [from, to), most sets first, ties broken alphabetically by label.
func (r *Repo) SummarizeSetsByTypeBetween(ctx context.Context, from, to time.Time) (_ []TypeSetCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.summarizeByType")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT display_label, COUNT(*) AS sets
			FROM workout_entries
			WHERE created_at >= $1 AND created_at < $2
			GROUP BY display_label
			ORDER BY sets DESC, display_label ASC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("summarize by type: %w", err)
	}
	defer rows.Close()

	var counts []TypeSetCount
	for rows.Next() {
		var c TypeSetCount
		if err = rows.Scan(&c.Label, &c.Sets); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// SummarizeSetsByAreaBetween returns per-body-area set counts for entries
// in [from, to). Moves missing from the taxonomy count as "unmapped".
func (r *Repo) SummarizeSetsByAreaBetween(ctx context.Context, from, to time.Time) (_ []AreaSetCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.summarizeByArea")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.areaCounts(
		ctx,
		`SELECT COALESCE(m.body_area, 'unmapped') AS area, COUNT(*) AS sets
			FROM workout_entries e
			LEFT JOIN move_body_areas m ON m.move_key = e.workout_type
			WHERE e.created_at >= $1 AND e.created_at < $2
			GROUP BY area
			ORDER BY sets DESC, area ASC;`,
		from, to,
	)
}

// SummarizeSetsByAreaForWorkout is SummarizeSetsByAreaBetween scoped to
// a single workout.
func (r *Repo) SummarizeSetsByAreaForWorkout(ctx context.Context, workoutID int) (_ []AreaSetCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.summarizeWorkoutByArea")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	return r.areaCounts(
		ctx,
		`SELECT COALESCE(m.body_area, 'unmapped') AS area, COUNT(*) AS sets
			FROM workout_entries e
			LEFT JOIN move_body_areas m ON m.move_key = e.workout_type
			WHERE e.workout_id = $1
			GROUP BY area
			ORDER BY sets DESC, area ASC;`,
		workoutID,
	)
}

func (r *Repo) areaCounts(ctx context.Context, query string, args ...any) ([]AreaSetCount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize by area: %w", err)
	}
	defer rows.Close()

	var counts []AreaSetCount
	for rows.Next() {
		var (
			area string
			sets int
		)
		if err := rows.Scan(&area, &sets); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		counts = append(counts, AreaSetCount{Area: taxonomy.BodyArea(area), Sets: sets})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Summary builds the full activity summary for [from, to).
func (r *Repo) Summary(ctx context.Context, from, to time.Time) (_ *PeriodSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	summary := &PeriodSummary{From: from, To: to}
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
	if err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(reps * weight), 0) FROM workout_entries
			WHERE created_at >= $1 AND created_at < $2;`,
		from, to,
	).Scan(&summary.TotalVolume); err != nil {
		return nil, fmt.Errorf("total volume: %w", err)
	}
	for _, c := range summary.ByType {
		summary.Sets += c.Sets
	}
	return summary, nil
}

// StatsSummary builds the all-time overview.
func (r *Repo) StatsSummary(ctx context.Context) (_ *StatsSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.statsSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stats := &StatsSummary{}
	if err = r.db.QueryRow(
		ctx,
		`SELECT
			(SELECT COUNT(*) FROM workouts),
			(SELECT COUNT(*) FROM snoozes),
			(SELECT COALESCE(SUM(sets), 0) FROM workouts),
			(SELECT COALESCE(SUM(reps * weight), 0) FROM workout_entries);`,
	).Scan(&stats.WorkoutCount, &stats.SnoozeCount, &stats.TotalSets, &stats.TotalVolume); err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}

	if stats.WorkoutCount > 0 {
		stats.AvgSets = float64(stats.TotalSets) / float64(stats.WorkoutCount)
		stats.AvgVolume = stats.TotalVolume / float64(stats.WorkoutCount)
	}
	return stats, nil
}

func (r *Repo) WorkoutsBetween(ctx context.Context, from, to time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.workoutsBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, note, created_at, sets
			FROM workouts
			WHERE created_at >= $1 AND created_at < $2
			ORDER BY created_at ASC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts between: %w", err)
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func (r *Repo) RecentWorkouts(ctx context.Context, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.recentWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, note, created_at, sets
			FROM workouts
			ORDER BY created_at DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent workouts: %w", err)
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.Note, &w.CreatedAt, &w.Sets); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *Repo) SnoozesBetween(ctx context.Context, from, to time.Time) (_ []Snooze, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.snoozesBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, source, created_at FROM snoozes
			WHERE created_at >= $1 AND created_at < $2
			ORDER BY created_at ASC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("snoozes between: %w", err)
	}
	defer rows.Close()

	var snoozes []Snooze
	for rows.Next() {
		var s Snooze
		if err = rows.Scan(&s.ID, &s.Source, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		snoozes = append(snoozes, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return snoozes, nil
}

// SetCountsByDay returns per-day set counts for entries in [from, to),
// days with no sets omitted, in ascending day order.
func (r *Repo) SetCountsByDay(ctx context.Context, from, to time.Time) (_ []DaySetCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.setCountsByDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*) AS sets
			FROM workout_entries
			WHERE created_at >= $1 AND created_at < $2
			GROUP BY day
			ORDER BY day ASC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("set counts by day: %w", err)
	}
	defer rows.Close()

	var counts []DaySetCount
	for rows.Next() {
		var c DaySetCount
		if err = rows.Scan(&c.Day, &c.Sets); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// WeeklyNudgeSent reports whether the nudge for the given week and
// milestone was already sent.
func (r *Repo) WeeklyNudgeSent(ctx context.Context, weekStart time.Time, milestone int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.weeklyNudgeSent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("milestone", milestone))

	var count int
	if err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM weekly_nudges WHERE week_start = $1 AND milestone = $2;`,
		weekStart, milestone,
	).Scan(&count); err != nil {
		return false, fmt.Errorf("weekly nudge sent: %w", err)
	}
	return count > 0, nil
}

// MarkWeeklyNudgeSent records the nudge sent-flag; it returns false when
// the flag was already present, making the send at-most-once per
// (week, milestone) even across concurrent checks.
func (r *Repo) MarkWeeklyNudgeSent(ctx context.Context, weekStart time.Time, milestone int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.markWeeklyNudgeSent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("milestone", milestone))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO weekly_nudges (week_start, milestone, sent_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (week_start, milestone) DO NOTHING;`,
		weekStart, milestone, r.nowFn(),
	)
	if err != nil {
		return false, fmt.Errorf("mark weekly nudge sent: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) MonthlyReportSent(ctx context.Context, year int, month time.Month) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.monthlyReportSent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM monthly_reports WHERE year = $1 AND month = $2;`,
		year, int(month),
	).Scan(&count); err != nil {
		return false, fmt.Errorf("monthly report sent: %w", err)
	}
	return count > 0, nil
}

// MarkMonthlyReportSent records the report sent-flag, returning false
// when the report for that month was already marked.
func (r *Repo) MarkMonthlyReportSent(ctx context.Context, year int, month time.Month) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.markMonthlyReportSent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO monthly_reports (year, month, sent_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (year, month) DO NOTHING;`,
		year, int(month), r.nowFn(),
	)
	if err != nil {
		return false, fmt.Errorf("mark monthly report sent: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CanonicalizeEntryTypes rewrites historical entry rows whose type is not
// yet the normalized move key, refreshing display labels along the way.
// Idempotent; returns the number of rewritten rows.
func (r *Repo) CanonicalizeEntryTypes(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.canonicalizeEntryTypes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, workout_type FROM workout_entries;`)
	if err != nil {
		return 0, fmt.Errorf("list entry types: %w", err)
	}

	type rewrite struct {
		id    int
		key   string
		label string
	}
	var rewrites []rewrite
	for rows.Next() {
		var (
			id          int
			workoutType string
		)
		if err = rows.Scan(&id, &workoutType); err != nil {
			rows.Close()
			return 0, fmt.Errorf("rows scan: %w", err)
		}
		key := taxonomy.NormalizeKey(workoutType)
		if key == "" || key == workoutType {
			continue
		}
		rewrites = append(rewrites, rewrite{
			id:    id,
			key:   key,
			label: r.displayLabel(key, workoutType),
		})
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, rw := range rewrites {
		if _, err = r.db.Exec(
			ctx,
			`UPDATE workout_entries SET workout_type = $1, display_label = $2 WHERE id = $3;`,
			rw.key, rw.label, rw.id,
		); err != nil {
			return 0, fmt.Errorf("canonicalize entry %d: %w", rw.id, err)
		}
	}

	span.SetAttributes(attribute.Int("rewritten", len(rewrites)))
	return len(rewrites), nil
}

// EntriesForWorkout lists the set entries of one workout in insert order.
func (r *Repo) EntriesForWorkout(ctx context.Context, workoutID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.entriesForWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, workout_type, display_label, reps, weight, created_at, source_text
			FROM workout_entries
			WHERE workout_id = $1
			ORDER BY id ASC;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("entries for workout: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err = rows.Scan(&e.ID, &e.WorkoutID, &e.WorkoutType, &e.DisplayLabel, &e.Reps, &e.Weight, &e.CreatedAt, &e.SourceText); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// note text built by the draft layer joins batches with " | "; keep the
// separator in one place for both directions
const NoteSeparator = " | "

func JoinNote(parts []string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, NoteSeparator)
}
