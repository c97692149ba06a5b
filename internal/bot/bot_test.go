package bot

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/2beens/gymsupervisor/internal/draft"
	"github.com/2beens/gymsupervisor/internal/taxonomy"
	"github.com/2beens/gymsupervisor/internal/telemetry/metrics"
	"github.com/2beens/gymsupervisor/internal/workout"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	m.Run()
	goleak.VerifyTestMain(m)
}

const (
	allowedUserID int64 = 1001
	testChatID    int64 = 2002
)

type testBot struct {
	service *Service
	repo    *workout.TestRepo
	quotes  *MockquoteGenerator
	now     time.Time
	sent    []string

	// snooze timers captured instead of scheduled
	timers []func()
}

func newTestBot(t *testing.T) *testBot {
	ctrl := gomock.NewController(t)

	tb := &testBot{
		now: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), // a Wednesday
	}
	tb.repo = workout.NewTestRepo(taxonomy.NewTable(), func() time.Time {
		return tb.now
	})
	tb.quotes = NewMockquoteGenerator(ctrl)

	api := NewMocktelegramAPI(ctrl)
	api.EXPECT().
		Send(gomock.Any()).
		DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			msg, ok := c.(tgbotapi.MessageConfig)
			require.True(t, ok)
			tb.sent = append(tb.sent, msg.Text)
			return tgbotapi.Message{}, nil
		}).
		AnyTimes()
	api.EXPECT().
		Request(gomock.Any()).
		Return(&tgbotapi.APIResponse{Ok: true}, nil).
		AnyTimes()

	tb.service = NewService(
		api,
		tb.repo,
		tb.quotes,
		draft.NewManager(),
		metrics.NewTestManager(),
		time.UTC,
		Config{AllowedUserID: allowedUserID, SnoozeMinutes: 60},
	)
	tb.service.nowFn = func() time.Time {
		return tb.now
	}
	tb.service.afterFunc = func(d time.Duration, f func()) *time.Timer {
		tb.timers = append(tb.timers, f)
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		return timer
	}
	return tb
}

func (tb *testBot) lastSent(t *testing.T) string {
	require.NotEmpty(t, tb.sent)
	return tb.sent[len(tb.sent)-1]
}

func commandUpdate(command, args string) tgbotapi.Update {
	text := "/" + command
	if args != "" {
		text += " " + args
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: allowedUserID},
			Chat: &tgbotapi.Chat{ID: testChatID},
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command) + 1},
			},
		},
	}
}

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: allowedUserID},
			Chat: &tgbotapi.Chat{ID: testChatID},
			Text: text,
		},
	}
}

func callbackUpdate(action string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: allowedUserID},
			Data: action,
			Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChatID},
			},
		},
	}
}

func TestUnauthorizedUser(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	update := commandUpdate("status", "")
	update.Message.From.ID = 666
	require.NoError(t, tb.service.ProcessUpdate(ctx, update))
	assert.Equal(t, "Unauthorized user.", tb.lastSent(t))

	// status must not have leaked to the stranger
	assert.Len(t, tb.sent, 1)
}

func TestStartAndHelp(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("start", "")))
	assert.Contains(t, tb.lastSent(t), "Gym supervisor active. Goal: 3 workouts per week.")
	assert.Contains(t, tb.lastSent(t), "- Workout 3 by Sunday 4:00 PM")

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("help", "")))
	assert.Equal(t, tb.sent[0], tb.sent[1])
}

func TestLogCommand_OneMessage(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("log", "bench press 20x8, 30x8")))
	assert.Equal(
		t,
		"Workout logged: 2 set(s). Total sets logged: 2.\nSets by body area: chest 2.",
		tb.lastSent(t),
	)

	workouts, err := tb.repo.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "bench press 20x8, 30x8", workouts[0].Note)
	assert.Equal(t, 2, workouts[0].Sets)
}

func TestLogCommand_Unparseable(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("log", "nothing numeric")))
	assert.Equal(t, "Couldn't parse entry. Example: /log bench press 20x8, 30x8", tb.lastSent(t))

	workouts, err := tb.repo.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestDraftFlow(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	// "I trained" opens a draft
	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionDidWorkout)))
	assert.Contains(t, tb.lastSent(t), "Send workout type + sets")

	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("bench press 20x8, 30x8")))
	assert.Equal(t, "Added bench press: 2 set(s). Current draft: 2 set(s).", tb.lastSent(t))

	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("squat 100x5")))
	assert.Equal(t, "Added squat: 1 set(s). Current draft: 3 set(s).", tb.lastSent(t))

	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("gibberish entry")))
	assert.Contains(t, tb.lastSent(t), "I couldn't parse that.")

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionUndoEntry)))
	assert.Equal(t, "Removed last entry (1 set(s)). Current draft: 2 set(s).", tb.lastSent(t))

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionFinishWorkout)))
	assert.Equal(
		t,
		"Workout saved: 2 set(s). Total sets logged: 2.\nSets by body area: chest 2.",
		tb.lastSent(t),
	)

	workouts, err := tb.repo.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "bench press 20x8, 30x8", workouts[0].Note)

	// the draft is gone after a successful save
	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("squat 100x5")))
	assert.NotContains(t, tb.lastSent(t), "Added squat")
}

func TestFinishWithoutDraft(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionFinishWorkout)))
	assert.Equal(t, "No workout in progress. Tap 'I trained' or use /log to start.", tb.lastSent(t))
}

func TestFinishEmptyDraftKeepsItOpen(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionDidWorkout)))
	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionFinishWorkout)))
	assert.Equal(t, "No reps/weight entries collected yet. Send entries first.", tb.lastSent(t))

	// still collecting
	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("bench press 20x8")))
	assert.Equal(t, "Added bench press: 1 set(s). Current draft: 1 set(s).", tb.lastSent(t))
}

func TestCancelWorkout(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionDidWorkout)))
	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("bench press 20x8")))
	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionCancelWorkout)))
	assert.Equal(t, "Workout draft canceled.", tb.lastSent(t))

	workouts, err := tb.repo.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestUndoWithoutDraft(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionUndoEntry)))
	assert.Equal(t, "No workout in progress. Tap 'I trained' to start.", tb.lastSent(t))

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionDidWorkout)))
	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionUndoEntry)))
	assert.Equal(t, "No entries to undo yet.", tb.lastSent(t))
}

func TestSnooze(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionSnooze)))
	assert.Equal(t, "Snooze logged. I will remind you again in 60 minutes.", tb.lastSent(t))

	snoozes, err := tb.repo.SnoozesBetween(ctx, tb.now.Add(-time.Minute), tb.now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, snoozes, 1)
	assert.Equal(t, "button_snooze", snoozes[0].Source)

	// the scheduled follow-up reminder
	require.Len(t, tb.timers, 1)
	tb.timers[0]()
	assert.Equal(t, "Gym check-in. Tap I trained to log your workout or snooze.", tb.lastSent(t))
}

func TestMenuTriggers(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	for _, trigger := range []string{"hi", "Hello", "HEY", "menu", "start"} {
		require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate(trigger)))
		assert.Equal(t, "What do you want to do?", tb.lastSent(t), "trigger %q", trigger)
	}

	// plain chatter outside a draft is ignored
	before := len(tb.sent)
	require.NoError(t, tb.service.ProcessUpdate(ctx, textUpdate("how is the weather")))
	assert.Len(t, tb.sent, before)
}

func TestRemindMe(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("remindme", "")))
	assert.Equal(t, "Gym check-in: did you train?", tb.lastSent(t))
}

func TestStatus(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("log", "bench press 20x8, 30x8")))
	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionSnooze)))

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("status", "")))
	status := tb.lastSent(t)
	assert.Contains(t, status, "This week: 1/3 workouts")
	assert.Contains(t, status, "Workouts (all-time): 1")
	assert.Contains(t, status, "Snoozes (all-time): 1")
	assert.Contains(t, status, "Total sets: 2")
	assert.Contains(t, status, "Avg sets/workout: 2.0")
	assert.Contains(t, status, "Total volume: 400.0")
	assert.Contains(t, status, "Avg volume/workout: 400.0")
}

func TestSummary(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("log", "bench press 20x8, 30x8")))
	// the summary window is half-open [from, now); move past the log time
	tb.now = tb.now.Add(time.Minute)
	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("summary", "week")))

	summary := tb.lastSent(t)
	assert.Contains(t, summary, "Workout summary (past week)")
	assert.Contains(t, summary, fmt.Sprintf(
		"Window: %s to %s",
		tb.now.AddDate(0, 0, -7).Format("2006-01-02"),
		tb.now.Format("2006-01-02"),
	))
	assert.Contains(t, summary, "Workouts: 1")
	assert.Contains(t, summary, "Skips (snoozes): 0")
	assert.Contains(t, summary, "Total sets: 2")
	assert.Contains(t, summary, "Total volume: 400.0")
	assert.Contains(t, summary, "By workout type:\n- bench press: 2")
	assert.Contains(t, summary, "By body area:\n- chest: 2")

	// bare /summary defaults to the week window
	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("summary", "")))
	assert.Equal(t, summary, tb.lastSent(t))

	// dedicated commands and buttons reuse the same windows
	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("summary_month", "")))
	assert.Contains(t, tb.lastSent(t), "Workout summary (past month)")
	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("summary_quarter", "")))
	assert.Contains(t, tb.lastSent(t), "Workout summary (past quarter)")
	require.NoError(t, tb.service.ProcessUpdate(ctx, callbackUpdate(actionSummaryWeek)))
	assert.Contains(t, tb.lastSent(t), "Workout summary (past week)")
}

func TestSummary_UnknownPeriod(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("summary", "year")))
	assert.Equal(
		t,
		"Unknown period. Use: /summary week, /summary month, or /summary quarter.",
		tb.lastSent(t),
	)
}

func TestEmptySummary(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("summary", "week")))
	summary := tb.lastSent(t)
	assert.Contains(t, summary, "Workouts: 0")
	assert.Contains(t, summary, "By workout type:\n- none")
	assert.Contains(t, summary, "By body area:\n- none")
}

func TestUnmappedMoveAreaSummary(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, tb.service.ProcessUpdate(ctx, commandUpdate("log", "underwater basket weaving 20x8")))
	assert.True(
		t,
		strings.HasSuffix(tb.lastSent(t), "Sets by body area: unmapped 1."),
		"got: %q", tb.lastSent(t),
	)
}
