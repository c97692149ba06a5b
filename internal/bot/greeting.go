package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
)

// SendStartupGreeting announces the service coming online.
func (s *Service) SendStartupGreeting(ctx context.Context) error {
	_, span := tracing.GlobalTracer.Start(ctx, "bot.sendStartupGreeting")
	defer span.End()

	return s.send(
		s.config.AllowedUserID,
		"Gym supervisor is online. Choose an action:",
		mainMenuKeyboard(),
	)
}

// SendMorningGreeting sends the daily good-morning message with a
// motivational quote, and on the first of the month follows up with the
// previous month's report.
func (s *Service) SendMorningGreeting(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.sendMorningGreeting")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.nowFn()
	quote := s.quotes.MorningQuote(ctx, now)

	if err := s.send(
		s.config.AllowedUserID,
		fmt.Sprintf("Good morning.\n%s\n\nChoose an action:", quote),
		mainMenuKeyboard(),
	); err != nil {
		return err
	}
	s.metrics.CounterGreetingsSent.Inc()

	return s.sendMonthlyReportIfDue(ctx)
}

// sendMonthlyReportIfDue sends the previous month's report on the first
// day of a month, at most once per month.
func (s *Service) sendMonthlyReportIfDue(ctx context.Context) error {
	now := s.nowFn()
	if now.Day() != 1 {
		return nil
	}

	from, _, label := previousMonthWindow(now)
	sent, err := s.repo.MonthlyReportSent(ctx, from.Year(), from.Month())
	if err != nil {
		return fmt.Errorf("monthly report sent check: %w", err)
	}
	if sent {
		return nil
	}

	text, err := s.monthlyReportText(ctx, now)
	if err != nil {
		return err
	}
	if err := s.send(s.config.AllowedUserID, text, mainMenuKeyboard()); err != nil {
		return err
	}

	if _, err := s.repo.MarkMonthlyReportSent(ctx, from.Year(), from.Month()); err != nil {
		return fmt.Errorf("mark monthly report sent: %w", err)
	}
	log.Debugf("monthly report sent for %s", label)
	return nil
}
