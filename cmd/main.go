package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"atakuafor/internal/app/salon/config"
	"atakuafor/internal/app/salon/entity"
	"atakuafor/internal/app/salon/handler"
	"atakuafor/internal/app/salon/repository"
	"atakuafor/internal/app/salon/service"
	"atakuafor/internal/app/salon/util"
	"atakuafor/internal/app/salon/worker"
	"atakuafor/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("salon-api", os.Getenv("LOG_LEVEL"))

	if logstashAddr := os.Getenv("LOGSTASH_ADDR"); logstashAddr != "" {
		if err := logger.InitLogstash(logstashAddr, "salon-api", os.Getenv("LOG_LEVEL")); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout")
		}
	}

	ctx := context.Background()

	pool, err := connectDB(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	logger.Info().Msg("Connected to PostgreSQL")

	// gorm shares the pgx pool instead of opening a second one
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: stdlib.OpenDBFromPool(pool),
	}), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize GORM")
	}

	if err := gormDB.AutoMigrate(
		&entity.ContactMessage{},
		&entity.Service{},
		&entity.Product{},
		&entity.AdminUser{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	mongoClient, err := connectMongoDB(ctx, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()
	logger.Info().Msg("Connected to MongoDB")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Msg("Connected to Redis")

	kafkaProducer := util.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer kafkaProducer.Close()
	logger.Info().Str("topic", cfg.Kafka.Topic).Msg("Kafka producer initialized")

	contactRepo := repository.NewContactMessageRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	adminRepo := repository.NewAdminRepository(pool)
	reviewRepo := repository.NewReviewRepository(mongoClient.Database(cfg.MongoDB.Database))
	sessionRepo := repository.NewSessionRepository(redisClient)

	catalogCache := util.NewRedisCache(redisClient)
	jwtManager := util.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration)

	catalogService := service.NewCatalogService(serviceRepo, productRepo, reviewRepo, catalogCache, cfg.Cache.TTL)
	contactService := service.NewContactService(contactRepo, kafkaProducer)
	reviewService := service.NewReviewService(reviewRepo, productRepo, serviceRepo, catalogCache, kafkaProducer)
	authService := service.NewAuthService(adminRepo, sessionRepo, jwtManager)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ensure admin account")
	}

	catalogHandler := handler.NewCatalogHandler(catalogService)
	contactHandler := handler.NewContactHandler(contactService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := handler.NewAuthMiddleware(jwtManager, sessionRepo)

	router := handler.SetupRoutes(catalogHandler, contactHandler, reviewHandler, authHandler, authMiddleware)

	cacheWarmer := worker.NewCacheWarmer(catalogService)
	if err := cacheWarmer.Start(ctx, cfg.Cache.WarmSchedule); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start cache warmer")
	}
	defer cacheWarmer.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("Starting salon API")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down salon API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Salon API stopped gracefully")
}

// connectDB opens a pgx connection pool with retries so the service
// survives starting before PostgreSQL in Docker Compose.
func connectDB(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	var pool *pgxpool.Pool
	for i := 0; i < 10; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		logger.Warn().Err(err).Int("attempt", i+1).Msg("Failed to connect to database, retrying")
		time.Sleep(3 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect after 10 attempts: %w", err)
	}

	return pool, nil
}

func connectMongoDB(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
