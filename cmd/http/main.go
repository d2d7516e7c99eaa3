package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tmdscreen-service/internal/app/config"
	"tmdscreen-service/internal/app/delivery/http/middlewares"
	"tmdscreen-service/internal/app/delivery/http/routers"
	"tmdscreen-service/internal/app/drivers/database"
	"tmdscreen-service/internal/app/drivers/logger"
	"tmdscreen-service/internal/app/drivers/messaging"
	miniodriver "tmdscreen-service/internal/app/drivers/storage"
	"tmdscreen-service/internal/app/services/core/assessments"
	"tmdscreen-service/internal/app/services/core/catalogs"
	"tmdscreen-service/internal/app/services/core/engine"
	"tmdscreen-service/internal/app/services/shared/jwtmanager"
	"tmdscreen-service/internal/app/services/shared/redis"
	"tmdscreen-service/internal/app/services/shared/storage"
	"tmdscreen-service/internal/app/services/shared/telemetry"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		bootstrapLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Failed to close connections cleanly: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	// Engine construction validates the question and code catalogs. An
	// inconsistent catalog is fatal, nothing can be scored against it.
	scoringEngine, err := engine.NewEngine(bootstrap.InternalConfig.BuildScoringConfig())
	if err != nil {
		return err
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	jwtManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	telemetryPublisher, err := telemetry.NewAmqpPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Telemetry.Queue)
	if err != nil {
		return err
	}
	reportArchive := storage.NewMinioReportArchive(bootstrap.Minio, bootstrap.InternalConfig.Archive.BucketName)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, bootstrap.InternalConfig)

	// Assessments
	assessmentMongoRepository := assessments.NewAssessmentMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(
		scoringEngine,
		assessmentMongoRepository,
		redisRepository,
		telemetryPublisher,
		reportArchive,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, assessmentUsecase)

	// Catalogs
	catalogUsecase := catalogs.NewCatalogUsecase(bootstrap.Logger)
	catalogController := catalogs.NewCatalogController(bootstrap.Logger, catalogUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, assessmentController, catalogController)
	return nil
}
