package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripcraft/config"
	"tripcraft/cron"
	"tripcraft/database"
	generationRepo "tripcraft/database/repository/generation"
	tripRepo "tripcraft/database/repository/trip"
	userRepoPkg "tripcraft/database/repository/user"
	"tripcraft/handlers"
	"tripcraft/routes"
	ai "tripcraft/services/intelligence"
	"tripcraft/services/storage"
	"tripcraft/services/tasks"
	tripService "tripcraft/services/trip"
	"tripcraft/services/user"
	"tripcraft/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetJWTSecret(config.AppConfig.JWTSecret)

	database.InitDB()
	utils.InitRedis()
	database.InitMongo()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Generation log.
	var generationLog generationRepo.GenerationLog = generationRepo.NopGenerationLog{}
	if database.MongoClient != nil {
		if err := generationRepo.EnsureIndexes(rootCtx, database.MongoClient, config.AppConfig.MongoDB); err != nil {
			logger.Warn("main: failed to create generation log indexes", zap.Error(err))
		}
		generationLog = generationRepo.NewMongoGenerationLog(database.MongoClient, config.AppConfig.MongoDB)
	}

	// Cover photo storage.
	var mediaStorage storage.MediaStorage = storage.DisabledStorage{}
	if config.AppConfig.CloudinaryCloudName != "" {
		cld, err := storage.NewCloudinaryStorage(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
		if err != nil {
			logger.Fatal("main: failed to initialize cloudinary storage", zap.Error(err))
		}
		mediaStorage = cld
	} else {
		logger.Info("main: cloudinary not configured, cover uploads disabled")
	}

	// Background removal of replaced and orphaned cover photos.
	assetQueue := tasks.NewAssetQueue(asynq.NewClient(cron.QueueRedisOpt()))
	defer func() { _ = assetQueue.Close() }()
	assetWorker, err := cron.InitAssetWorker(mediaStorage)
	if err != nil {
		logger.Fatal("main: failed to start asset worker", zap.Error(err))
	}

	// Itinerary generation.
	itinerarySvc := &ai.DefaultItineraryService{
		Cache:     ai.NewRedisItineraryCache(utils.GetCacheClient(), config.AppConfig.ItineraryCacheTTL),
		Log:       generationLog,
		ModelName: config.AppConfig.GeminiModel,
		MaxDays:   config.AppConfig.MaxTripDays,
		Timeout:   config.AppConfig.AITimeout,
	}
	gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Warn("main: itinerary generation disabled", zap.Error(err))
	} else {
		itinerarySvc.Generator = gemini
		defer func() { _ = gemini.Close() }()
	}

	// repositories.
	userRepo := userRepoPkg.NewPostgresUserRepo(database.DB)
	tripsRepo := tripRepo.NewPostgresTripRepo(database.DB)
	authCache := utils.NewRedisAuthCache(utils.GetAuthCacheClient(), utils.AuthCacheTTL)

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: authCache,
		TokenTTL:  config.AppConfig.JWTTTL,
	}
	tripSvc := &tripService.DefaultTripService{
		Repo:      tripsRepo,
		Itinerary: itinerarySvc,
		Storage:   mediaStorage,
		Cleanup:   assetQueue,
		MaxDays:   config.AppConfig.MaxTripDays,
	}

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: authCache,
		User:      handlers.NewUserHandler(userService),
		Trip:      handlers.NewTripHandler(tripSvc),
		Itinerary: handlers.NewItineraryHandler(itinerarySvc, itinerarySvc),
		Health:    handlers.NewHealthHandler(),
	}

	redisClients := []*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}
	utils.StartHealthMonitor(rootCtx, redisClients, database.DB)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	assetWorker.Shutdown()
	database.CloseMongo(ctx)
	utils.CloseRedis()
	database.Close()
	logger.Sugar().Info("main: server stopped gracefully")
}
