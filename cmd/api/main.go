package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"courseadmin/internal/domain/contract"
	handlerHttp "courseadmin/internal/handler/http"
	redisclient "courseadmin/internal/infrastructure/cache"
	"courseadmin/internal/infrastructure/config"
	database "courseadmin/internal/infrastructure/database"
	"courseadmin/internal/infrastructure/external_services"
	"courseadmin/internal/infrastructure/logger"
	passwordservice "courseadmin/internal/infrastructure/password_service"
	randomgenerator "courseadmin/internal/infrastructure/random_generator"
	"courseadmin/internal/infrastructure/repository/mongodb"
	"courseadmin/internal/infrastructure/store"
	"courseadmin/internal/infrastructure/uuidgen"
	"courseadmin/internal/infrastructure/validator"
	"courseadmin/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize email service
	smtpHost := os.Getenv("EMAIL_HOST")
	smtpPort := os.Getenv("EMAIL_PORT")
	smtpUsername := os.Getenv("EMAIL_USERNAME")
	smtpPassword := os.Getenv("EMAIL_APP_PASSWORD")
	smtpFrom := os.Getenv("EMAIL_FROM")

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	courseRepo := mongodb.NewMongoCourseRepository(db.Collection("courses"))
	lessonRepo := mongodb.NewMongoLessonRepository(db.Collection("lessons"))
	enrollmentRepo := mongodb.NewMongoEnrollmentRepository(db.Collection("enrollments"))
	paymentRepo := mongodb.NewMongoPaymentRepository(db.Collection("payments"))
	categoryRepo := mongodb.NewMongoCategoryRepository(db.Collection("categories"))
	cartRepo := mongodb.NewMongoCartRepository(db.Collection("carts"))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()

	// Optional Dependency Injection: Redis-backed role cache
	var roleRepo contract.IRoleRepository = mongodb.NewMongoRoleRepository(db.Collection("roles"))
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		roleCache := store.NewRoleCacheStore(rdb, appConfig.GetRoleCacheTTL())
		roleRepo = store.NewCachedRoleRepository(roleRepo, roleCache)
	}

	// Dependency Injection: Usecases
	userAdminUsecase := usecase.NewUserAdminUsecase(userRepo, roleRepo, courseRepo, hasher, mailService, uuidGenerator, randomGenerator, appValidator, appConfig, appLogger)
	userDetailUsecase := usecase.NewUserDetailUsecase(userRepo, roleRepo, courseRepo, lessonRepo, enrollmentRepo, appLogger)
	statisticsUsecase := usecase.NewStatisticsUsecase(paymentRepo, enrollmentRepo, userRepo, roleRepo, appLogger)
	paymentUsecase := usecase.NewPaymentUsecase(paymentRepo, appLogger)
	enrollmentUsecase := usecase.NewEnrollmentUsecase(enrollmentRepo, courseRepo, lessonRepo, uuidGenerator, appLogger)
	categoryUsecase := usecase.NewCategoryUsecase(categoryRepo, uuidGenerator, appValidator, appLogger)
	cartUsecase := usecase.NewCartUsecase(cartRepo, courseRepo, uuidGenerator, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userAdminUsecase, userDetailUsecase, statisticsUsecase,
		paymentUsecase, enrollmentUsecase, categoryUsecase, cartUsecase,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
