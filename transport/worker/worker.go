package worker

import (
	"context"
	"errors"
	"fmt"
	"time"
	"trekdesk/config"
	"trekdesk/infras/kafka"
	"trekdesk/infras/realtime"
	"trekdesk/infras/scheduler"
	bookingService "trekdesk/internal/domains/booking/service"

	"github.com/rs/zerolog/log"
)

const jobBookingSweep = "booking-sweep"

const (
	forwarderRetryMin = time.Second
	forwarderRetryMax = 30 * time.Second
)

// Worker owns the background side of the process: the scheduled booking
// sweep and the forwarder that feeds bus events into the local hub.
type Worker struct {
	config    *config.Config
	scheduler *scheduler.Scheduler
	bus       *realtime.Bus
	hub       *realtime.Hub
	kafka     kafka.Client
	booking   bookingService.Booking
	cancel    context.CancelFunc
}

func New(
	config *config.Config,
	scheduler *scheduler.Scheduler,
	bus *realtime.Bus,
	hub *realtime.Hub,
	kafka kafka.Client,
	booking bookingService.Booking,
) *Worker {
	return &Worker{
		config:    config,
		scheduler: scheduler,
		bus:       bus,
		hub:       hub,
		kafka:     kafka,
		booking:   booking,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	ctx, w.cancel = context.WithCancel(ctx)

	// Until the forwarder is up the fanout delivers to the local hub itself.
	if err := w.bus.StartForwarder(ctx, realtime.ForwardTo(w.hub)); err != nil {
		log.Warn().Err(err).Msg("realtime forwarder not started, delivering locally until it is")

		if !errors.Is(err, realtime.ErrBusNotInitialized) {
			go w.retryForwarder(ctx, forwarderRetryMin)
		}
	}

	if !w.config.Scheduler.Enable {
		return nil
	}

	err := w.scheduler.Register(jobBookingSweep, w.config.Scheduler.BookingSweepSpec, w.sweep)
	if err != nil {
		w.cancel()

		return fmt.Errorf("failed to start worker: %w", err)
	}

	w.scheduler.Start()

	return nil
}

// retryForwarder keeps subscribing with doubling backoff until it succeeds or ctx is done.
func (w *Worker) retryForwarder(ctx context.Context, backoff time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		err := w.bus.StartForwarder(ctx, realtime.ForwardTo(w.hub))
		if err == nil {
			return
		}

		backoff = min(backoff*2, forwarderRetryMax)

		log.Warn().Err(err).Dur("retry_in", backoff).Msg("realtime forwarder still not started")
	}
}

func (w *Worker) sweep(ctx context.Context) error {
	res, err := w.booking.SweepCompleted(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep bookings: %w", err)
	}

	log.Info().Int64("completed", res.Completed).Msg("booking sweep finished")

	return nil
}

// Stop waits for a running sweep until ctx is done.
func (w *Worker) Stop(ctx context.Context) {
	if w.cancel != nil {
		w.cancel()
	}

	if w.config.Scheduler.Enable {
		w.scheduler.Stop(ctx)
	}

	if w.config.Kafka.Enable {
		if err := w.kafka.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}
