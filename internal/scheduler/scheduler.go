// Package scheduler runs the recurring bot jobs in-process: the weekly
// deadline nudge poll and the daily morning greeting. Job functions are
// expected to be idempotent; missed or repeated runs must not double
// send (the bot layer guards with persisted sent-flags).
package scheduler

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type job struct {
	name string
	next func(now time.Time) time.Time
	run  func(ctx context.Context) error
}

type Scheduler struct {
	clock Clock
	jobs  []job
	wg    sync.WaitGroup
}

func New() *Scheduler {
	return &Scheduler{
		clock: realClock{},
	}
}

// NewWithClock is used in tests to drive the schedule manually.
func NewWithClock(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
	}
}

// AddEvery schedules run at a fixed interval, first run one interval in.
func (s *Scheduler) AddEvery(name string, every time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{
		name: name,
		next: func(now time.Time) time.Time {
			return now.Add(every)
		},
		run: run,
	})
}

// AddDaily schedules run every day at the given local wall-clock time.
func (s *Scheduler) AddDaily(name string, hour, minute int, loc *time.Location, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{
		name: name,
		next: func(now time.Time) time.Time {
			return NextDaily(now.In(loc), hour, minute)
		},
		run: run,
	})
}

// NextDaily returns the first occurrence of hour:minute strictly after now.
func NextDaily(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Start launches one goroutine per job. Jobs stop when ctx is done; Wait
// blocks until all of them returned.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()
			s.runLoop(ctx, j)
		}(j)
	}
}

func (s *Scheduler) runLoop(ctx context.Context, j job) {
	log.Debugf("scheduler: job %s started", j.name)
	for {
		now := s.clock.Now()
		wait := j.next(now).Sub(now)
		select {
		case <-ctx.Done():
			log.Debugf("scheduler: job %s stopped", j.name)
			return
		case <-s.clock.After(wait):
		}

		if err := j.run(ctx); err != nil {
			log.Errorf("scheduler: job %s: %s", j.name, err)
		}
	}
}

func (s *Scheduler) Wait() {
	s.wg.Wait()
}
