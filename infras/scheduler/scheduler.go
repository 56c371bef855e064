package scheduler

import (
	"context"
	"fmt"
	"time"
	"trekdesk/infras/otel"
	"trekdesk/shared/constant"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const jobTimeout = 5 * time.Minute

type JobFunc func(ctx context.Context) error

// Scheduler runs registered jobs on seconds-precision cron specs.
// A job that is still running when its next tick fires is skipped.
type Scheduler struct {
	cron *cron.Cron
	otel otel.Otel
}

func New(otl otel.Otel) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
		),
		otel: otl,
	}
}

func (s *Scheduler) Register(name, spec string, job JobFunc) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s job: %w", name, err)
	}

	log.Info().Str("job", name).Str("spec", spec).Msg("scheduled job")

	return nil
}

func (s *Scheduler) run(name string, job JobFunc) {
	ctx, cancel := context.WithTimeout(context.WithValue(context.Background(), constant.ContextKeyRequestID, "cron:"+name), jobTimeout)
	defer cancel()

	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+"."+name)
	defer scope.End()

	start := time.Now()

	if err := job(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", name).Dur("took", time.Since(start)).Msg("scheduled job failed")

		return
	}

	log.Info().Str("job", name).Dur("took", time.Since(start)).Msg("scheduled job finished")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler started")
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		log.Info().Msg("scheduler stopped")
	case <-ctx.Done():
		log.Warn().Msg("scheduler stop timed out, abandoning running jobs")
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
