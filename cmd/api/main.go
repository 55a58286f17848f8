package main

import (
	"net/http"

	activityapp "github.com/anindyaputri/dress-shop/application/activity"
	authapp "github.com/anindyaputri/dress-shop/application/auth"
	dressapp "github.com/anindyaputri/dress-shop/application/dress"
	userapp "github.com/anindyaputri/dress-shop/application/user"
	"github.com/anindyaputri/dress-shop/cmd/config"
	redisclient "github.com/anindyaputri/dress-shop/cmd/redis"
	_ "github.com/anindyaputri/dress-shop/docs"
	activityRepo "github.com/anindyaputri/dress-shop/repository/activity"
	dressRepo "github.com/anindyaputri/dress-shop/repository/dress"
	profileRepo "github.com/anindyaputri/dress-shop/repository/profile"
	redisRepo "github.com/anindyaputri/dress-shop/repository/redis"
	txRepo "github.com/anindyaputri/dress-shop/repository/tx"
	userRepo "github.com/anindyaputri/dress-shop/repository/user"
	"github.com/anindyaputri/dress-shop/thirdparty/rabbitmq"
	"github.com/anindyaputri/dress-shop/transport"
	"github.com/anindyaputri/dress-shop/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title DRESS SHOP API
// @version 1.0
// @description Dress shop storefront and back-office API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize activity event publisher; the API still serves without it,
	// counters just stop syncing
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, counter sync disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProfileRepo := profileRepo.NewProfileRepository(db)
	DressRepo := dressRepo.NewDressRepository(db)
	ActivityRepo := activityRepo.NewActivityRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, TxRepo, UserRepo, ProfileRepo, RedisRepo)
	DressApp := dressapp.NewDressApp(DressRepo, ActivityRepo)
	ActivityApp := activityapp.NewActivityApp(TxRepo, ActivityRepo, DressRepo, publisher)
	UserApp := userapp.NewUserApp(cfg, ProfileRepo, UserRepo, ActivityRepo, RedisRepo)

	httpTransport := transport.NewTransport(AuthApp, DressApp, ActivityApp, UserApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
