// Package charts renders workout activity PNG charts: daily set totals,
// daily snoozes, and the workout-vs-snooze trend.
package charts

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fogleman/gg"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymsupervisor/internal/workout"
)

const (
	chartWidth  = 1000
	chartHeight = 500

	marginLeft   = 70.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 60.0
)

const dayFormat = "2006-01-02"

// DayValue is one point of a daily series.
type DayValue struct {
	Day   time.Time
	Value float64
}

type activityRepo interface {
	SetCountsByDay(ctx context.Context, from, to time.Time) ([]workout.DaySetCount, error)
	WorkoutsBetween(ctx context.Context, from, to time.Time) ([]workout.Workout, error)
	SnoozesBetween(ctx context.Context, from, to time.Time) ([]workout.Snooze, error)
}

type Generator struct {
	repo   activityRepo
	outDir string
}

func NewGenerator(repo activityRepo, outDir string) *Generator {
	return &Generator{
		repo:   repo,
		outDir: outDir,
	}
}

// GenerateAll renders all charts for the [from, to) window and returns
// the paths of the files written. Empty series are skipped, not drawn.
func (g *Generator) GenerateAll(ctx context.Context, from, to time.Time) ([]string, error) {
	var outputFiles []string

	setCounts, err := g.repo.SetCountsByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get set counts by day: %w", err)
	}
	if len(setCounts) > 0 {
		dailySets := make([]DayValue, 0, len(setCounts))
		for _, sc := range setCounts {
			dailySets = append(dailySets, DayValue{Day: sc.Day, Value: float64(sc.Sets)})
		}
		path, err := g.DailySetsChart(dailySets)
		if err != nil {
			return nil, err
		}
		outputFiles = append(outputFiles, path)
	}

	workouts, err := g.repo.WorkoutsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	snoozes, err := g.repo.SnoozesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get snoozes: %w", err)
	}

	snoozesPerDay := countPerDay(snoozes, func(s workout.Snooze) time.Time { return s.CreatedAt })
	if len(snoozesPerDay) > 0 {
		path, err := g.DailySnoozesChart(snoozesPerDay)
		if err != nil {
			return nil, err
		}
		outputFiles = append(outputFiles, path)
	}

	workoutsPerDay := countPerDay(workouts, func(w workout.Workout) time.Time { return w.CreatedAt })
	if len(workoutsPerDay) > 0 || len(snoozesPerDay) > 0 {
		path, err := g.WorkoutVsSnoozeChart(workoutsPerDay, snoozesPerDay)
		if err != nil {
			return nil, err
		}
		outputFiles = append(outputFiles, path)
	}

	return outputFiles, nil
}

// DailySetsChart draws the total sets per day as a line with point
// markers and writes daily_sets.png.
func (g *Generator) DailySetsChart(points []DayValue) (string, error) {
	dc := newChartContext("Daily Total Sets", "Date", "Total Sets")
	p := newPlotArea(dc, points)
	p.drawLine(dc, points, 0.19, 0.45, 0.72)
	return g.save(dc, "daily_sets.png")
}

// DailySnoozesChart draws the snooze count per day as bars and writes
// daily_snoozes.png.
func (g *Generator) DailySnoozesChart(points []DayValue) (string, error) {
	dc := newChartContext("Daily Snoozes / Skips", "Date", "Snoozes")
	p := newPlotArea(dc, points)
	p.drawBars(dc, points, 0.82, 0.42, 0.36) // #d16b5c
	return g.save(dc, "daily_snoozes.png")
}

// WorkoutVsSnoozeChart draws workout and snooze counts per day as two
// lines with a legend and writes workout_vs_snooze.png.
func (g *Generator) WorkoutVsSnoozeChart(workouts, snoozes []DayValue) (string, error) {
	dc := newChartContext("Workout vs Snooze Trend", "Date", "Count")

	merged := append(append([]DayValue{}, workouts...), snoozes...)
	p := newPlotArea(dc, merged)

	p.drawLine(dc, workouts, 0.19, 0.45, 0.72)
	p.drawLine(dc, snoozes, 0.82, 0.42, 0.36)
	p.drawLegend(dc, []legendEntry{
		{label: "Workout Logs", r: 0.19, g: 0.45, b: 0.72},
		{label: "Snoozes", r: 0.82, g: 0.42, b: 0.36},
	})

	return g.save(dc, "workout_vs_snooze.png")
}

func (g *Generator) save(dc *gg.Context, filename string) (string, error) {
	path := filepath.Join(g.outDir, filename)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save chart %s: %w", filename, err)
	}
	log.Debugf("chart written: %s", path)
	return path, nil
}

func countPerDay[T any](items []T, timestamp func(T) time.Time) []DayValue {
	counts := map[string]int{}
	for _, item := range items {
		counts[timestamp(item).Format(dayFormat)]++
	}

	perDay := make([]DayValue, 0, len(counts))
	for day, count := range counts {
		// day strings come from Format above, re-parsing cannot fail
		parsed, _ := time.Parse(dayFormat, day)
		perDay = append(perDay, DayValue{Day: parsed, Value: float64(count)})
	}
	sort.Slice(perDay, func(i, j int) bool {
		return perDay[i].Day.Before(perDay[j].Day)
	})
	return perDay
}

func newChartContext(title, xLabel, yLabel string) *gg.Context {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(xLabel, chartWidth/2, chartHeight-15, 0.5, 0.5)

	// y axis label, rotated
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, chartHeight/2)
	dc.DrawStringAnchored(yLabel, 20, chartHeight/2, 0.5, 0.5)
	dc.Pop()

	return dc
}

// plotArea maps day/value points onto canvas coordinates. The x axis
// positions every distinct day in chronological order; the y axis spans
// [0, max value].
type plotArea struct {
	dayIndex map[string]int
	days     []time.Time
	maxY     float64
}

func newPlotArea(dc *gg.Context, points []DayValue) *plotArea {
	p := &plotArea{
		dayIndex: map[string]int{},
		maxY:     1,
	}

	seen := map[string]bool{}
	for _, pt := range points {
		key := pt.Day.Format(dayFormat)
		if !seen[key] {
			seen[key] = true
			p.days = append(p.days, pt.Day)
		}
		if pt.Value > p.maxY {
			p.maxY = pt.Value
		}
	}
	sort.Slice(p.days, func(i, j int) bool { return p.days[i].Before(p.days[j]) })
	for i, day := range p.days {
		p.dayIndex[day.Format(dayFormat)] = i
	}

	p.drawAxes(dc)
	return p
}

func (p *plotArea) x(day time.Time) float64 {
	plotWidth := float64(chartWidth) - marginLeft - marginRight
	if len(p.days) <= 1 {
		return marginLeft + plotWidth/2
	}
	i := p.dayIndex[day.Format(dayFormat)]
	return marginLeft + plotWidth*float64(i)/float64(len(p.days)-1)
}

func (p *plotArea) y(value float64) float64 {
	plotHeight := float64(chartHeight) - marginTop - marginBottom
	return float64(chartHeight) - marginBottom - plotHeight*value/p.maxY
}

func (p *plotArea) drawAxes(dc *gg.Context) {
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, marginTop, marginLeft, float64(chartHeight)-marginBottom)
	dc.DrawLine(marginLeft, float64(chartHeight)-marginBottom, float64(chartWidth)-marginRight, float64(chartHeight)-marginBottom)
	dc.Stroke()

	// horizontal grid lines and y tick labels
	const yTicks = 5
	for i := 0; i <= yTicks; i++ {
		value := p.maxY * float64(i) / yTicks
		yPos := p.y(value)
		if i > 0 {
			dc.SetRGBA(0.8, 0.8, 0.8, 0.6)
			dc.DrawLine(marginLeft, yPos, float64(chartWidth)-marginRight, yPos)
			dc.Stroke()
		}
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", value), marginLeft-8, yPos, 1, 0.5)
	}

	// x tick labels, thinned when there are many days, drawn at an angle
	step := 1
	if len(p.days) > 12 {
		step = len(p.days) / 12
	}
	for i, day := range p.days {
		if i%step != 0 {
			continue
		}
		xPos := p.x(day)
		dc.Push()
		dc.RotateAbout(gg.Radians(-30), xPos, float64(chartHeight)-marginBottom+20)
		dc.DrawStringAnchored(day.Format(dayFormat), xPos, float64(chartHeight)-marginBottom+20, 0.5, 0.5)
		dc.Pop()
	}
}

func (p *plotArea) drawLine(dc *gg.Context, points []DayValue, r, g, b float64) {
	if len(points) == 0 {
		return
	}

	dc.SetRGB(r, g, b)
	dc.SetLineWidth(2)
	for i := 1; i < len(points); i++ {
		dc.DrawLine(
			p.x(points[i-1].Day), p.y(points[i-1].Value),
			p.x(points[i].Day), p.y(points[i].Value),
		)
	}
	dc.Stroke()

	for _, pt := range points {
		dc.DrawCircle(p.x(pt.Day), p.y(pt.Value), 4)
		dc.Fill()
	}
}

func (p *plotArea) drawBars(dc *gg.Context, points []DayValue, r, g, b float64) {
	if len(points) == 0 {
		return
	}

	plotWidth := float64(chartWidth) - marginLeft - marginRight
	barWidth := plotWidth / float64(len(points)) * 0.6
	if barWidth > 60 {
		barWidth = 60
	}

	dc.SetRGB(r, g, b)
	baseline := float64(chartHeight) - marginBottom
	for _, pt := range points {
		top := p.y(pt.Value)
		dc.DrawRectangle(p.x(pt.Day)-barWidth/2, top, barWidth, baseline-top)
		dc.Fill()
	}
}

type legendEntry struct {
	label   string
	r, g, b float64
}

func (p *plotArea) drawLegend(dc *gg.Context, entries []legendEntry) {
	xPos := float64(chartWidth) - marginRight - 160
	yPos := marginTop + 15
	for _, e := range entries {
		dc.SetRGB(e.r, e.g, e.b)
		dc.DrawRectangle(xPos, yPos-5, 18, 10)
		dc.Fill()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(e.label, xPos+24, yPos, 0, 0.5)
		yPos += 18
	}
}
