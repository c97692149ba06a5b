package workout

import (
	"time"

	"github.com/2beens/gymsupervisor/internal/taxonomy"
)

// Workout is one logged gym session. A session groups the set entries
// accumulated over one or more messages before the user finished logging.
type Workout struct {
	ID        int       `json:"id"`
	Note      string    `json:"note"`
	Sets      int       `json:"sets"`
	CreatedAt time.Time `json:"createdAt"`
}

// Entry is one set within a workout. WorkoutType holds the canonical
// move key; DisplayLabel the human-readable move name.
type Entry struct {
	ID           int       `json:"id"`
	WorkoutID    int       `json:"workoutId"`
	WorkoutType  string    `json:"workoutType"`
	DisplayLabel string    `json:"displayLabel"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	CreatedAt    time.Time `json:"createdAt"`
	SourceText   string    `json:"sourceText"`
}

// LogEntry is a set about to be persisted, as produced by the parser.
// WorkoutType is the raw label; the repo canonicalizes it on write.
type LogEntry struct {
	WorkoutType string
	Reps        int
	Weight      float64
}

// Snooze is one "remind me later" event; Source records what triggered
// it, e.g. the snooze button.
type Snooze struct {
	ID        int       `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// TypeSetCount is the number of sets for one move within a period.
type TypeSetCount struct {
	Label string `json:"label"`
	Sets  int    `json:"sets"`
}

// AreaSetCount is the number of sets for one body area within a period.
type AreaSetCount struct {
	Area taxonomy.BodyArea `json:"area"`
	Sets int               `json:"sets"`
}

// DaySetCount is the number of sets logged on one calendar day.
type DaySetCount struct {
	Day  time.Time `json:"day"`
	Sets int       `json:"sets"`
}

// PeriodSummary aggregates activity within a [from, to) window.
// Counts are zero (never nil slices turned loose on callers) when the
// window holds no activity.
type PeriodSummary struct {
	From        time.Time      `json:"from"`
	To          time.Time      `json:"to"`
	Workouts    int            `json:"workouts"`
	Snoozes     int            `json:"snoozes"`
	Sets        int            `json:"sets"`
	TotalVolume float64        `json:"totalVolume"`
	ByType      []TypeSetCount `json:"byType"`
	ByArea      []AreaSetCount `json:"byArea"`
}

// StatsSummary is the all-time activity overview. Averages are zero when
// no workouts exist.
type StatsSummary struct {
	WorkoutCount int     `json:"workoutCount"`
	SnoozeCount  int     `json:"snoozeCount"`
	TotalSets    int     `json:"totalSets"`
	AvgSets      float64 `json:"avgSets"`
	TotalVolume  float64 `json:"totalVolume"`
	AvgVolume    float64 `json:"avgVolume"`
}
