package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jobcompass/jobcompass-api/internal/config"
	"github.com/jobcompass/jobcompass-api/internal/domain/fiber/handler"
	"github.com/jobcompass/jobcompass-api/internal/middleware"
	"github.com/jobcompass/jobcompass-api/internal/model"
	"github.com/jobcompass/jobcompass-api/internal/repository"
	"github.com/jobcompass/jobcompass-api/internal/service"
	"github.com/jobcompass/jobcompass-api/internal/usecase"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowCredentials: false,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// uploaded CV artifacts are served back to the client
	if err := os.MkdirAll(filepath.Join(appConfig.UploadDir, "cv"), 0o755); err != nil {
		log.Fatal(err)
	}
	app.Static("/uploads", appConfig.UploadDir)

	db := ConnectDB()

	profileRepo := repository.NewProfileRepository(db)
	jobRepo := repository.NewJobApplicationRepository(db)

	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		log.Fatal(err)
	}
	serper := service.NewSerperService()
	auth := service.NewAuthService()

	profileUc := usecase.NewProfileUsecase(profileRepo)
	jobUc := usecase.NewJobUsecase(profileRepo, jobRepo, gemini, serper)

	api := app.Group("/api", middleware.Auth(auth))
	handler.NewProfileHandler(profileUc).RegisterRoutes(api)
	handler.NewJobHandler(jobUc).RegisterRoutes(api)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.UserProfile{}, &model.JobApplication{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
