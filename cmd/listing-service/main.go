package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/taskora/taskora-listing-service/internal/config"
	"github.com/taskora/taskora-listing-service/internal/delivery/httpapi"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/chat"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/kafka"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/migrate"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/repository"
	"github.com/taskora/taskora-listing-service/internal/usecase/assignment"
	"github.com/taskora/taskora-listing-service/internal/usecase/attachment"
	"github.com/taskora/taskora-listing-service/internal/usecase/cascade"
	"github.com/taskora/taskora-listing-service/internal/usecase/dispute"
	"github.com/taskora/taskora-listing-service/internal/usecase/listing"
	"github.com/taskora/taskora-listing-service/internal/usecase/proposal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.ListingDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ListingDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repos
	listingRepo := repository.NewDefaultListingRepository(db)
	proposalRepo := repository.NewDefaultProposalRepository(db)
	assignmentRepo := repository.NewDefaultAssignmentRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	attachmentRepo := repository.NewDefaultAttachmentRepository(db)
	cascadeStore := repository.NewDefaultCascadeStore(db)

	// Init gateways
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	notificationPublisher, err := kafka.NewNotificationPublisher(brokers, cfg.KafkaService.Topic)
	if err != nil {
		log.Fatalf("failed to init kafka notification publisher: %v", err)
	}
	defer notificationPublisher.Close()

	chatProvisioner, err := chat.NewHTTPChatProvisioner(fmt.Sprintf("%s:%s", cfg.ChatService.Host, cfg.ChatService.Port))
	if err != nil {
		log.Fatalf("failed to init chat provisioner: %v", err)
	}

	lifecycleMetrics := metrics.NewLifecycleMetrics()

	// Init usecases
	listingUsecase := listing.NewDefaultListingUsecase(listingRepo, lifecycleMetrics)
	proposalUsecase := proposal.NewDefaultProposalUsecase(proposalRepo, listingRepo, lifecycleMetrics)
	attachmentUsecase := attachment.NewDefaultAttachmentUsecase(attachmentRepo)
	cascadeController := cascade.NewController(cascadeStore)
	assignmentUsecase := assignment.NewDefaultAssignmentUsecase(
		assignmentRepo,
		proposalRepo,
		listingRepo,
		notificationPublisher,
		chatProvisioner,
		lifecycleMetrics,
	)
	disputeUsecase, err := dispute.NewDefaultDisputeUsecase(
		disputeRepo,
		listingRepo,
		attachmentUsecase,
		notificationPublisher,
		lifecycleMetrics,
	)
	if err != nil {
		log.Fatalf("failed to init dispute usecase: %v", err)
	}

	// Retry worker for failed side effects
	go assignmentUsecase.StartRetryWorker(context.Background())

	// HTTP server
	router := httpapi.NewRouter(
		httpapi.NewListingHandler(listingUsecase, attachmentUsecase, cascadeController),
		httpapi.NewProposalHandler(proposalUsecase, assignmentUsecase),
		httpapi.NewAssignmentHandler(assignmentUsecase),
		httpapi.NewDisputeHandler(disputeUsecase),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
