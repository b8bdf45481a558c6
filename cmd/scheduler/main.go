package main

import (
	"hireline/internal/scheduling/conflict"
	"hireline/internal/scheduling/handler"
	"hireline/internal/scheduling/planner"
	"hireline/internal/scheduling/service"
	"hireline/internal/scheduling/store"
	"hireline/internal/scheduling/validator"
	"hireline/pkg/app"
	"hireline/pkg/config"
	"hireline/pkg/kafka"
)

const ServiceName = "scheduler"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Scheduler service")

	serverApp := app.NewApplication(cfg)
	schedulerService, interviewStore := initServices(cfg, serverApp)

	serverApp.SetApp(
		handler.NewInterviewHandler(schedulerService, cfg.Log),
		handler.NewHealthHandler(interviewStore, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application) (service.SchedulerService, store.InterviewStore) {
	interviewStore := store.NewMemoryStore()
	checker := conflict.NewScanChecker(interviewStore)
	slotPlanner := planner.New(checker, cfg.SlotStartTimes, cfg.SlotDurationMin)
	scheduleValidator := validator.NewScheduleValidator(cfg.Log)

	var publisher service.EventPublisher
	if cfg.EventsEnabled {
		producer, err := kafka.NewProducer(kafka.LoadConfig())
		if err != nil {
			cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
		}
		producer.Use(kafka.LoggingMiddleware(cfg.Log))
		serverApp.OnShutdown(func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Warn("Failed to close Kafka producer", "error", err)
			}
		})
		publisher = producer
		cfg.Log.Info("Lifecycle event publishing enabled")
	}

	schedulerService := service.NewSchedulerService(
		interviewStore,
		checker,
		slotPlanner,
		scheduleValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Scheduler service initialized",
		"slots_per_day", len(cfg.SlotStartTimes),
		"slot_duration_min", cfg.SlotDurationMin,
	)
	return schedulerService, interviewStore
}
