package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

func NewScheduler(log zerolog.Logger) *Scheduler {
	logger := cronLogger{log: log}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// After runs fn a single time, delay after the scheduler starts.
func (s *Scheduler) After(delay time.Duration, name string, fn func()) cron.EntryID {
	return s.cron.Schedule(&onceSchedule{delay: delay}, cron.FuncJob(func() {
		s.log.Debug().Str("job", name).Msg("running one-shot job")
		fn()
	}))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// onceSchedule yields one activation and then the zero time, which cron
// treats as "never again".
type onceSchedule struct {
	delay time.Duration
	fired bool
}

func (o *onceSchedule) Next(now time.Time) time.Time {
	if o.fired {
		return time.Time{}
	}
	o.fired = true
	return now.Add(o.delay)
}

type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
