package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pradeepaul/devConnector/internal/api"
	"github.com/pradeepaul/devConnector/internal/events"
	"github.com/pradeepaul/devConnector/internal/github"
	"github.com/pradeepaul/devConnector/internal/repository"
	"github.com/pradeepaul/devConnector/internal/s3"
	"github.com/pradeepaul/devConnector/internal/service"
	"github.com/pradeepaul/devConnector/internal/token"
	"github.com/pradeepaul/devConnector/internal/tracing"
	_ "github.com/pradeepaul/devConnector/migrations"
)

// tokenTTL matches the original fixed token lifetime of 100 hours.
const tokenTTL = 100 * time.Hour

var requiredEnv = []string{
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"JWT_SECRET", "GITHUB_CLIENT_ID", "GITHUB_CLIENT_SECRET",
}

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables")
	}

	api.SetupGlobalHandler("devconnector")

	for _, key := range requiredEnv {
		if os.Getenv(key) == "" {
			log.Fatalf("Required environment variable %s is not set", key)
		}
	}

	shutdownTracer, err := tracing.InitTracerProvider("devconnector")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	log.Println("Successfully connected to NATS.")

	avatarPresigner, err := s3.NewAvatarPresigner()
	if err != nil {
		log.Fatalf("Failed to initialize S3 presigner: %v", err)
	}

	tokens := token.NewService(os.Getenv("JWT_SECRET"), tokenTTL)
	githubClient := github.NewClient(os.Getenv("GITHUB_CLIENT_ID"), os.Getenv("GITHUB_CLIENT_SECRET"))

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	postRepo := repository.NewPostgresPostRepository(db)

	authService := service.NewAuthService(userRepo, tokens, eventPublisher)
	profileService := service.NewProfileService(profileRepo, userRepo)
	postService := service.NewPostService(postRepo, userRepo, eventPublisher)

	authHandler := api.NewAuthHandler(authService, avatarPresigner)
	profileHandler := api.NewProfileHandler(profileService, githubClient)
	postHandler := api.NewPostHandler(postService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "devconnector"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authRequired := api.AuthMiddleware(tokens)

	usersRoutes := app.Group("/api/users")
	usersRoutes.Post("/", authHandler.Register)
	usersRoutes.Post("/avatar/upload-url", authRequired, authHandler.AvatarUploadURL)

	authRoutes := app.Group("/api/auth")
	authRoutes.Post("/", authHandler.Login)
	authRoutes.Get("/", authRequired, authHandler.CurrentUser)

	profileRoutes := app.Group("/api/profile")
	profileRoutes.Get("/github/:username", profileHandler.GithubRepos)
	profileRoutes.Use(authRequired)
	profileRoutes.Get("/me", profileHandler.GetMine)
	profileRoutes.Get("/user/:user_id", profileHandler.GetByUserID)
	profileRoutes.Get("/", profileHandler.ListAll)
	profileRoutes.Post("/", profileHandler.Upsert)
	profileRoutes.Delete("/", profileHandler.DeleteAccount)
	profileRoutes.Put("/experience", profileHandler.AddExperience)
	profileRoutes.Delete("/experience/:exp_id", profileHandler.RemoveExperience)
	profileRoutes.Put("/education", profileHandler.AddEducation)
	profileRoutes.Delete("/education/:edu_id", profileHandler.RemoveEducation)

	postRoutes := app.Group("/api/posts")
	postRoutes.Use(authRequired)
	postRoutes.Post("/", postHandler.Create)
	postRoutes.Get("/", postHandler.List)
	postRoutes.Get("/:id", postHandler.Get)
	postRoutes.Delete("/:id", postHandler.Delete)
	postRoutes.Put("/like/:id", postHandler.Like)
	postRoutes.Put("/unlike/:id", postHandler.Unlike)
	postRoutes.Post("/comment/:id", postHandler.AddComment)
	postRoutes.Delete("/comment/:id/:comment_id", postHandler.RemoveComment)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Listening devconnector on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations() {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}

func databaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"), os.Getenv("DB_NAME"),
	)
}
