package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/parts-store-api/internal/config"
	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/logger"
	q "github.com/iliyamo/parts-store-api/internal/queue"
	"github.com/iliyamo/parts-store-api/internal/repository"
	"github.com/iliyamo/parts-store-api/internal/router"
	"github.com/iliyamo/parts-store-api/internal/service"
)

const consumerGroup = "booking-log"

func main() {
	_ = godotenv.Load() // .env is optional

	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("database connect failed", "error", err)
		os.Exit(1)
	}

	events := service.NewEventPublisher(cfg.Events)
	if cfg.Events.ConsumerEnabled {
		go runConsumer(ctx, cfg.Events)
	}

	e := router.New(router.Deps{
		Tools:        repository.NewToolRepo(db),
		Bookings:     repository.NewBookingRepo(db),
		Users:        repository.NewUserRepo(db),
		Profiles:     repository.NewProfileRepo(db),
		Reviews:      repository.NewReviewRepo(db),
		Payments:     repository.NewPaymentRepo(db),
		Gateway:      service.NewStripeGateway(cfg.StripeKey),
		Events:       events,
		DB:           db,
		JWTSecret:    cfg.JWTSecret,
		AccessTTLMin: cfg.AccessTTLMin,
		CORSOrigins:  cfg.CORSOrigins,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info("listening", "addr", addr, "env", cfg.Env, "db", cfg.MongoDB, "broker", cfg.Events.Broker)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer scancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Warn("http shutdown", "error", err)
	}
	cancel() // stop the consumer
	if err := events.Close(); err != nil {
		log.Warn("event publisher close", "error", err)
	}
	if err := db.Close(sctx); err != nil {
		log.Warn("database close", "error", err)
	}
}

// runConsumer appends booking events from the configured broker to the
// booking log until ctx is cancelled.
func runConsumer(ctx context.Context, cfg config.EventsConfig) {
	log := logger.WithComponent("server")
	var err error
	switch cfg.Broker {
	case config.BrokerRabbitMQ:
		err = q.StartRabbitConsumer(ctx, cfg.RabbitURL, cfg.Topic, cfg.LogDir)
	case config.BrokerKafka:
		err = q.StartKafkaConsumer(ctx, cfg.KafkaBrokers, cfg.Topic, consumerGroup, cfg.LogDir)
	default:
		log.Warn("booking consumer enabled without a broker; not started")
		return
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("booking consumer stopped", "error", err)
	}
}
