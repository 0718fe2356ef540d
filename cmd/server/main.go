package main

import (
	"errors"
	"os"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hafidzramadhan/talent-match/internal/config"
	"github.com/hafidzramadhan/talent-match/internal/domain/fiber/handler"
	"github.com/hafidzramadhan/talent-match/internal/logger"
	"github.com/hafidzramadhan/talent-match/internal/middleware"
	"github.com/hafidzramadhan/talent-match/internal/repository"
	"github.com/hafidzramadhan/talent-match/internal/service"
	"github.com/hafidzramadhan/talent-match/internal/usecase"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// defaultSQLPath is where the database team drops the scoring query. When the
// file is absent the stored function is called directly.
const defaultSQLPath = "queries/talent_match.sql"

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.L().Info("Could not load .env file, relying on environment")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	employeeRepo := repository.NewEmployeeRepository(db)
	benchmarkRepo := repository.NewBenchmarkRepository(db, resolveSQLPath())
	groq := service.NewGroqService()
	uc := usecase.NewBenchmarkUsecase(employeeRepo, benchmarkRepo, groq)
	handler := handler.NewBenchmarkHandler(uc)

	handler.RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			logger.L().WithField("goroutines", runtime.NumGoroutine()).Debug("runtime stats")
		}
	}()

	logger.L().WithField("port", appConfig.Port).Info("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		logger.L().Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.URL), &gorm.Config{})
	if err != nil {
		logger.L().Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		logger.L().Fatalf("Could not get database instance: %v", err)
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

	// Tables and the scoring function are owned by the database team; nothing
	// to migrate here.
	return db
}

func resolveSQLPath() string {
	if p := os.Getenv("TALENT_MATCH_SQL"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultSQLPath); err == nil {
		return defaultSQLPath
	}
	return ""
}
