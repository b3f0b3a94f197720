package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/recruit-api/internal/config"
	"github.com/phrazzld/recruit-api/internal/events"
	"github.com/phrazzld/recruit-api/internal/model"
	"github.com/phrazzld/recruit-api/internal/platform/metrics"
	"github.com/phrazzld/recruit-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	model        *model.ModelManager
	eventEmitter *events.InMemoryEventEmitter
	metrics      *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized. The session starts empty unless sample data seeding is on.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	return newApplicationWithClock(cfg, logger, time.Now)
}

func newApplicationWithClock(cfg *config.Config, logger *slog.Logger, now func() time.Time) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	book, schedule, err := initialSession(cfg.Session, now())
	if err != nil {
		return nil, fmt.Errorf("failed to seed session: %w", err)
	}

	app.model, err = model.NewModelManager(book, schedule, model.WithClock(now))
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
		app.metrics.TrackSession(
			func() int { return len(app.model.AddressBook().Candidates()) },
			func() int { return len(app.model.InterviewSchedule().Interviews()) },
		)
		app.eventEmitter.RegisterHandler(app.metrics)
	}

	logger.Info("Application initialized successfully",
		"candidates", len(book.Candidates()),
		"interviews", len(schedule.Interviews()))
	return app, nil
}

func initialSession(cfg config.SessionConfig, now time.Time) (store.ReadOnlyAddressBook, store.ReadOnlyInterviewSchedule, error) {
	if !cfg.SeedSampleData {
		return store.NewAddressBook(), store.NewInterviewSchedule(), nil
	}

	book, err := store.SampleAddressBook()
	if err != nil {
		return nil, nil, err
	}
	schedule, err := store.SampleInterviewSchedule(book, now)
	if err != nil {
		return nil, nil, err
	}
	return book, schedule, nil
}
