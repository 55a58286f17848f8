package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anindyaputri/dress-shop/cmd/config"
	"github.com/anindyaputri/dress-shop/thirdparty/rabbitmq"
	"github.com/anindyaputri/dress-shop/utils/logger"
	"go.uber.org/zap"
)

// The counter-sync worker consumes activity events and calls the API's
// internal counter endpoint to keep the denormalized dress counters in step
// with the activity tables.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting counter-sync worker", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Worker shutting down")
}
