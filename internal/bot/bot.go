// Package bot implements the gym supervisor chat logic on top of the
// Telegram Bot API: workout logging via free-text messages and inline
// buttons, check-in reminders, summaries and scheduled nudges.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymsupervisor/internal/draft"
	"github.com/2beens/gymsupervisor/internal/telemetry/metrics"
	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
	"github.com/2beens/gymsupervisor/internal/workout"
)

// callback actions wired to the inline keyboards
const (
	actionDidWorkout    = "did_workout"
	actionSnooze        = "snooze"
	actionFinishWorkout = "finish_workout"
	actionUndoEntry     = "undo_entry"
	actionCancelWorkout = "cancel_workout"
	actionSummaryWeek   = "summary_week"
	actionSummaryMonth  = "summary_month"
)

const weeklyWorkoutsGoal = 3

var menuTriggers = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
	"menu":  {},
	"start": {},
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=bot
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type workoutRepo interface {
	LogWorkout(ctx context.Context, entries []workout.LogEntry, note string) (*workout.Workout, error)
	LogSnooze(ctx context.Context, source string) (*workout.Snooze, error)
	CountWorkoutsBetween(ctx context.Context, from, to time.Time) (int, error)
	Summary(ctx context.Context, from, to time.Time) (*workout.PeriodSummary, error)
	StatsSummary(ctx context.Context) (*workout.StatsSummary, error)
	SummarizeSetsByAreaBetween(ctx context.Context, from, to time.Time) ([]workout.AreaSetCount, error)
	SummarizeSetsByAreaForWorkout(ctx context.Context, workoutID int) ([]workout.AreaSetCount, error)
	WorkoutsBetween(ctx context.Context, from, to time.Time) ([]workout.Workout, error)
	WeeklyNudgeSent(ctx context.Context, weekStart time.Time, milestone int) (bool, error)
	MarkWeeklyNudgeSent(ctx context.Context, weekStart time.Time, milestone int) (bool, error)
	MonthlyReportSent(ctx context.Context, year int, month time.Month) (bool, error)
	MarkMonthlyReportSent(ctx context.Context, year int, month time.Month) (bool, error)
}

type quoteGenerator interface {
	MorningQuote(ctx context.Context, today time.Time) string
}

type Config struct {
	AllowedUserID int64
	SnoozeMinutes int
}

// Service handles telegram updates and the scheduled sends. Only the
// configured user is served; everyone else is rejected.
type Service struct {
	api     telegramAPI
	repo    workoutRepo
	quotes  quoteGenerator
	drafts  *draft.Manager
	metrics *metrics.Manager
	config  Config
	loc     *time.Location

	// injectable for tests
	nowFn     func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewService(
	api telegramAPI,
	repo workoutRepo,
	quotes quoteGenerator,
	drafts *draft.Manager,
	metricsManager *metrics.Manager,
	loc *time.Location,
	config Config,
) *Service {
	return &Service{
		api:     api,
		repo:    repo,
		quotes:  quotes,
		drafts:  drafts,
		metrics: metricsManager,
		config:  config,
		loc:     loc,
		nowFn: func() time.Time {
			return time.Now().In(loc).Truncate(time.Second)
		},
		afterFunc: time.AfterFunc,
	}
}

// ProcessUpdate dispatches one telegram update: a command, an inline
// button press, or a free-text message.
func (s *Service) ProcessUpdate(ctx context.Context, update tgbotapi.Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.processUpdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.metrics.CounterUpdatesProcessed.Inc()

	switch {
	case update.CallbackQuery != nil:
		return s.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return s.handleMessage(ctx, update.Message)
	default:
		log.Tracef("ignoring update %d without message or callback", update.UpdateID)
		return nil
	}
}

func (s *Service) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	if message.From == nil || message.From.ID != s.config.AllowedUserID {
		return s.send(message.Chat.ID, "Unauthorized user.", nil)
	}

	if message.IsCommand() {
		return s.handleCommand(ctx, message)
	}
	return s.handleText(ctx, message)
}

func (s *Service) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	switch message.Command() {
	case "start", "help":
		return s.sendStartMessage(chatID)
	case "log":
		return s.handleLogCommand(ctx, chatID, message.CommandArguments())
	case "remindme":
		return s.send(chatID, "Gym check-in: did you train?", reminderKeyboard())
	case "status":
		return s.sendStatus(ctx, chatID)
	case "summary":
		period := strings.TrimSpace(message.CommandArguments())
		if period == "" {
			period = "week"
		}
		return s.sendPeriodSummary(ctx, chatID, period, nil)
	case "summary_week":
		return s.sendPeriodSummary(ctx, chatID, "week", nil)
	case "summary_month":
		return s.sendPeriodSummary(ctx, chatID, "month", nil)
	case "summary_quarter":
		return s.sendPeriodSummary(ctx, chatID, "quarter", nil)
	default:
		log.Debugf("unknown command: %s", message.Command())
		return nil
	}
}

func (s *Service) sendStartMessage(chatID int64) error {
	return s.send(
		chatID,
		"Gym supervisor active. Goal: 3 workouts per week.\n\n"+
			"Deadlines:\n"+
			"- Workout 1 by Tuesday 8:00 PM\n"+
			"- Workout 2 by Thursday 8:00 PM\n"+
			"- Workout 3 by Sunday 4:00 PM\n\n"+
			"Commands:\n"+
			"/log <workout type> <weight>x<reps> ... - quick one-message log\n"+
			"/remindme - send check-in now\n"+
			"/status - show weekly + total stats\n"+
			"/summary <week|month|quarter> - workout breakdown",
		mainMenuKeyboard(),
	)
}

// handleLogCommand logs a whole workout from one message, or opens a
// multi-message draft when called without arguments.
func (s *Service) handleLogCommand(ctx context.Context, chatID int64, args string) error {
	text := strings.TrimSpace(args)
	if text == "" {
		s.drafts.Start(chatID)
		return s.send(
			chatID,
			"Send one or more entries with workout type + sets.\n"+
				"Examples: 'bench press 20x8, 30x8' or 'squat 135lb x5, 155x5'.\n"+
				"When done, tap Finish Workout.",
			draftKeyboard(),
		)
	}

	workoutType, pairs := workout.ParseEntry(text)
	if workoutType == "" || len(pairs) == 0 {
		return s.send(chatID, "Couldn't parse entry. Example: /log bench press 20x8, 30x8", nil)
	}

	entries := make([]workout.LogEntry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, workout.LogEntry{
			WorkoutType: workoutType,
			Reps:        p.Reps,
			Weight:      p.Weight,
		})
	}

	logged, err := s.repo.LogWorkout(ctx, entries, text)
	if err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	s.metrics.CounterWorkoutsLogged.Inc()
	s.metrics.CounterSetsLogged.Add(float64(len(entries)))

	areaSummary, err := s.workoutAreaSummaryText(ctx, logged.ID)
	if err != nil {
		return err
	}
	stats, err := s.repo.StatsSummary(ctx)
	if err != nil {
		return fmt.Errorf("stats summary: %w", err)
	}

	return s.send(
		chatID,
		fmt.Sprintf(
			"Workout logged: %d set(s). Total sets logged: %d.\n%s",
			len(pairs), stats.TotalSets, areaSummary,
		),
		mainMenuKeyboard(),
	)
}

// handleText captures draft entries while a workout log is open and
// otherwise only reacts to menu trigger words.
func (s *Service) handleText(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)
	if text == "" {
		return nil
	}

	if !s.drafts.Active(chatID) {
		if _, ok := menuTriggers[strings.ToLower(text)]; ok {
			return s.send(chatID, "What do you want to do?", mainMenuKeyboard())
		}
		return nil
	}

	label, added, total, err := s.drafts.Append(chatID, text)
	if err != nil {
		return s.send(
			chatID,
			"I couldn't parse that. Include workout type plus sets, for example "+
				"'bench press 20x8, 30x8' or 'bench press 20lb x8, 30lbx8'.",
			draftKeyboard(),
		)
	}

	return s.send(
		chatID,
		fmt.Sprintf("Added %s: %d set(s). Current draft: %d set(s).", label, added, total),
		draftKeyboard(),
	)
}

func (s *Service) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query.From == nil || query.From.ID != s.config.AllowedUserID {
		callback := tgbotapi.NewCallbackWithAlert(query.ID, "Unauthorized")
		if _, err := s.api.Request(callback); err != nil {
			return fmt.Errorf("answer callback: %w", err)
		}
		return nil
	}

	if _, err := s.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Errorf("answer callback %s: %s", query.ID, err)
	}

	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID

	switch query.Data {
	case actionDidWorkout:
		s.drafts.Start(chatID)
		return s.send(
			chatID,
			"Great. Send workout type + sets as one or more messages.\n"+
				"Examples: 'bench press 20x8, 30x8' or 'squat 135lb x5, 155x5'.\n"+
				"When done, tap Finish Workout.",
			draftKeyboard(),
		)
	case actionSummaryWeek:
		return s.sendPeriodSummary(ctx, chatID, "week", mainMenuKeyboard())
	case actionSummaryMonth:
		return s.sendPeriodSummary(ctx, chatID, "month", mainMenuKeyboard())
	case actionFinishWorkout:
		return s.finishWorkout(ctx, chatID)
	case actionUndoEntry:
		return s.undoLastEntry(chatID)
	case actionCancelWorkout:
		s.drafts.Cancel(chatID)
		return s.send(chatID, "Workout draft canceled.", nil)
	case actionSnooze:
		return s.snooze(ctx, chatID)
	default:
		log.Debugf("unknown callback action: %s", query.Data)
		return nil
	}
}

func (s *Service) finishWorkout(ctx context.Context, chatID int64) error {
	entries, note, err := s.drafts.Entries(chatID)
	if err != nil {
		return s.send(chatID, "No workout in progress. Tap 'I trained' or use /log to start.", mainMenuKeyboard())
	}
	if len(entries) == 0 {
		return s.send(chatID, "No reps/weight entries collected yet. Send entries first.", mainMenuKeyboard())
	}

	logged, err := s.repo.LogWorkout(ctx, entries, note)
	if err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	s.metrics.CounterWorkoutsLogged.Inc()
	s.metrics.CounterSetsLogged.Add(float64(len(entries)))

	// clear the draft only after the write went through
	s.drafts.Cancel(chatID)

	areaSummary, err := s.workoutAreaSummaryText(ctx, logged.ID)
	if err != nil {
		return err
	}
	stats, err := s.repo.StatsSummary(ctx)
	if err != nil {
		return fmt.Errorf("stats summary: %w", err)
	}

	return s.send(
		chatID,
		fmt.Sprintf(
			"Workout saved: %d set(s). Total sets logged: %d.\n%s",
			len(entries), stats.TotalSets, areaSummary,
		),
		mainMenuKeyboard(),
	)
}

func (s *Service) undoLastEntry(chatID int64) error {
	if !s.drafts.Active(chatID) {
		return s.send(chatID, "No workout in progress. Tap 'I trained' to start.", draftKeyboard())
	}

	removed, err := s.drafts.Undo(chatID)
	if err != nil {
		return s.send(chatID, "No entries to undo yet.", draftKeyboard())
	}

	return s.send(
		chatID,
		fmt.Sprintf(
			"Removed last entry (%d set(s)). Current draft: %d set(s).",
			len(removed.Pairs), s.drafts.SetCount(chatID),
		),
		draftKeyboard(),
	)
}

func (s *Service) snooze(ctx context.Context, chatID int64) error {
	if _, err := s.repo.LogSnooze(ctx, "button_snooze"); err != nil {
		return fmt.Errorf("log snooze: %w", err)
	}
	s.metrics.CounterSnoozes.Inc()

	if err := s.send(
		chatID,
		fmt.Sprintf("Snooze logged. I will remind you again in %d minutes.", s.config.SnoozeMinutes),
		nil,
	); err != nil {
		return err
	}

	s.afterFunc(time.Duration(s.config.SnoozeMinutes)*time.Minute, func() {
		if err := s.send(
			chatID,
			"Gym check-in. Tap I trained to log your workout or snooze.",
			reminderKeyboard(),
		); err != nil {
			log.Errorf("send snooze reminder: %s", err)
		}
	})
	return nil
}

func (s *Service) sendStatus(ctx context.Context, chatID int64) error {
	now := s.nowFn()
	weekStart := weekStart(now)
	weeklyCount, err := s.repo.CountWorkoutsBetween(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return fmt.Errorf("count weekly workouts: %w", err)
	}
	stats, err := s.repo.StatsSummary(ctx)
	if err != nil {
		return fmt.Errorf("stats summary: %w", err)
	}

	lines := []string{
		fmt.Sprintf("This week: %d/%d workouts", weeklyCount, weeklyWorkoutsGoal),
		fmt.Sprintf("Workouts (all-time): %d", stats.WorkoutCount),
		fmt.Sprintf("Snoozes (all-time): %d", stats.SnoozeCount),
		fmt.Sprintf("Total sets: %d", stats.TotalSets),
		fmt.Sprintf("Avg sets/workout: %.1f", stats.AvgSets),
		fmt.Sprintf("Total volume: %.1f", stats.TotalVolume),
		fmt.Sprintf("Avg volume/workout: %.1f", stats.AvgVolume),
	}
	return s.send(chatID, strings.Join(lines, "\n"), nil)
}

func (s *Service) sendPeriodSummary(
	ctx context.Context,
	chatID int64,
	period string,
	keyboard *tgbotapi.InlineKeyboardMarkup,
) error {
	text, err := s.periodSummaryText(ctx, period)
	if err != nil {
		return s.send(
			chatID,
			"Unknown period. Use: /summary week, /summary month, or /summary quarter.",
			nil,
		)
	}
	return s.send(chatID, text, keyboard)
}

func (s *Service) send(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func mainMenuKeyboard() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("I trained", actionDidWorkout),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("summary_week", actionSummaryWeek),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("summary_month", actionSummaryMonth),
		),
	)
	return &keyboard
}

func reminderKeyboard() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("I trained", actionDidWorkout),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Snooze / Skip", actionSnooze),
		),
	)
	return &keyboard
}

func draftKeyboard() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Finish Workout", actionFinishWorkout),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Undo Last Entry", actionUndoEntry),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", actionCancelWorkout),
		),
	)
	return &keyboard
}
