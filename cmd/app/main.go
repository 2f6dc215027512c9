package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/postgres"
	taskqueue "fulfillment/internal/adapters/out/tasks"
	"fulfillment/internal/pkg/logging"

	"github.com/hibiken/asynq"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := logging.New(logging.Options{Level: config.LogLevel, File: config.LogFile})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Close() }()
	slog.SetDefault(logger.Logger)

	gormDB := mustOpenDatabase(config)
	redisClient := mustConnectRedis(config)
	redisOpt := asynq.RedisClientOpt{Addr: config.RedisAddr, Password: config.RedisPassword, DB: config.RedisDB}
	taskClient := asynq.NewClient(redisOpt)

	app := cmd.NewCompositionRoot(config, gormDB, redisClient, taskClient, logger.Logger)

	worker := startWorker(app, redisOpt, config, logger.Logger)

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := app.Echo()
	go func() {
		logger.Info("http server starting", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	worker.Shutdown()
	closeQuietly(logger.Logger, "task client", taskClient.Close)
	closeQuietly(logger.Logger, "redis", redisClient.Close)
	if sqlDB, err := gormDB.DB(); err == nil {
		closeQuietly(logger.Logger, "database", sqlDB.Close)
	}
}

func mustOpenDatabase(config cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func mustConnectRedis(config cmd.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	return client
}

func startWorker(app *cmd.CompositionRoot, redisOpt asynq.RedisClientOpt, config cmd.Config, logger *slog.Logger) *asynq.Server {
	worker := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: config.WorkerConcurrency,
		Queues: map[string]int{
			taskqueue.QueueCritical: 6,
			taskqueue.QueueDefault:  3,
		},
		LogLevel: asynq.WarnLevel,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			logger.WarnContext(ctx, "task failed",
				"type", task.Type(), "retry", retried, "max_retry", maxRetry, "error", err)
		}),
	})

	mux := asynq.NewServeMux()
	app.TaskHandlers().Register(mux)
	if err := worker.Start(mux); err != nil {
		log.Fatalf("Error starting task worker: %v", err)
	}
	return worker
}

func closeQuietly(logger *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Warn("close failed", "resource", name, "error", err)
	}
}
