package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/andreyxaxa/Image-Hosting/config"
	kafkactrl "github.com/andreyxaxa/Image-Hosting/internal/controller/kafka"
	"github.com/andreyxaxa/Image-Hosting/internal/controller/restapi"
	"github.com/andreyxaxa/Image-Hosting/internal/controller/restapi/v1/validate"
	infrakafka "github.com/andreyxaxa/Image-Hosting/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Image-Hosting/internal/infrastructure/processor"
	"github.com/andreyxaxa/Image-Hosting/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Hosting/internal/usecase/image"
	"github.com/andreyxaxa/Image-Hosting/internal/usecase/thumbnail"
	"github.com/andreyxaxa/Image-Hosting/pkg/httpserver"
	"github.com/andreyxaxa/Image-Hosting/pkg/kafka/consumer"
	"github.com/andreyxaxa/Image-Hosting/pkg/kafka/producer"
	"github.com/andreyxaxa/Image-Hosting/pkg/logger"
	"github.com/andreyxaxa/Image-Hosting/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	imageRepo := persistent.NewImageRepo(s3c, cfg.S3.Bucket)

	// Kafka Producer
	kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
	}

	// Use-Case

	// image use-case
	imageUseCase := image.New(
		imageRepo,
		infrakafka.NewEventProducer(kafkaProducer, cfg.Kafka.Topic),
		l,
	)

	// thumbnail use-case
	thumbnailUseCase := thumbnail.New(imageRepo, processor.New(), l)

	// Kafka Consumer
	kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - consumer.New: %w", err))
	}

	// Kafka as Controller
	thumbnailController := kafkactrl.New(
		thumbnailUseCase,
		infrakafka.NewEventConsumer(kafkaConsumer),
		l,
		cfg.Thumbnails.CommitTimeout,
		cfg.Thumbnails.ProcessTimeout,
		cfg.Thumbnails.CPUTimeout,
		runtime.NumCPU(),
	)

	// HTTP Server
	httpServer := httpserver.New(
		l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(int(validate.MaxFileSize)+1024*1024),
	)
	restapi.NewRouter(httpServer.App, cfg, imageUseCase, l)

	// Start Components
	err = thumbnailController.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - thumbnailController.Start: %w", err))
	}
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	tcShutdownCtx, tcShutdownCancel := context.WithTimeout(ctx, cfg.Thumbnails.ShutdownTimeout)
	defer tcShutdownCancel()
	err = thumbnailController.Shutdown(tcShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - thumbnailController.Shutdown: %w", err))
	}

	// producer используется только http-обработчиками; закрываем после них
	err = kafkaProducer.Close()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - kafkaProducer.Close: %w", err))
	}
}
