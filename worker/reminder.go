// Package worker runs the background jobs: currently the daily trip
// reminder sweep.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gilby125/trip-planner-api/config"
	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/pkg/logger"
	"github.com/gilby125/trip-planner-api/pkg/notify"
	"github.com/gilby125/trip-planner-api/trips"
)

// ReminderWorker pushes a notification for every trip starting within the
// configured look-ahead window.
type ReminderWorker struct {
	store    db.Store
	notifier *notify.NTFYClient
	cfg      config.ReminderConfig
	cron     *cron.Cron
}

// NewReminderWorker creates a reminder worker
func NewReminderWorker(store db.Store, notifier *notify.NTFYClient, cfg config.ReminderConfig) *ReminderWorker {
	return &ReminderWorker{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		cron:     cron.New(),
	}
}

// Start schedules the reminder sweep and starts the cron loop
func (w *ReminderWorker) Start() error {
	_, err := w.cron.AddFunc(w.cfg.CronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := w.Run(ctx); err != nil {
			logger.Error(err, "Trip reminder sweep failed")
			if nerr := w.notifier.AlertReminderError(err); nerr != nil {
				logger.Error(nerr, "Failed to send reminder error alert")
			}
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder sweep: %w", err)
	}

	w.cron.Start()
	logger.WithField("cron", w.cfg.CronExpression).Info("Reminder worker started")
	return nil
}

// Stop stops the cron loop, waiting for a running sweep to finish
func (w *ReminderWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info("Reminder worker stopped")
}

// Run performs one reminder sweep. Exported so tests can bypass the cron
// schedule.
func (w *ReminderWorker) Run(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")
	horizon := time.Now().AddDate(0, 0, w.cfg.DaysAhead).Format("2006-01-02")

	upcoming, err := w.store.TripsStartingBetween(ctx, today, horizon)
	if err != nil {
		return fmt.Errorf("failed to query upcoming trips: %w", err)
	}

	for _, trip := range upcoming {
		daysOut := trips.DaysBetween(today, trip.StartDate) - 1
		if err := w.notifier.AlertTripUpcoming(trip.Name, trip.Destination, trip.StartDate, daysOut); err != nil {
			logger.WithField("trip_id", trip.ID).Error(err, "Failed to send trip reminder")
			continue
		}
		logger.WithFields(map[string]interface{}{
			"trip_id":  trip.ID,
			"days_out": daysOut,
		}).Info("Trip reminder sent")
	}
	return nil
}
