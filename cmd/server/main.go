package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/postdeck/configs"
	"github.com/maheshrc27/postdeck/internal/analytics"
	"github.com/maheshrc27/postdeck/internal/api/handlers"
	"github.com/maheshrc27/postdeck/internal/api/middleware"
	"github.com/maheshrc27/postdeck/internal/repository"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	var postStore store.PostStore
	var platformStore store.PlatformStore
	var userStore store.UserStore
	var db *sql.DB

	if cfg.PostgresURI != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer closeDB(db)

		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}

		seeder := repository.NewSeeder(db)
		postStore = repository.NewPostRepository(db, seeder)
		platformStore = repository.NewPlatformRepository(db, seeder)
		userStore = repository.NewUserRepository(db)
	} else {
		log.Println("POSTGRES_URI not set, using in-memory demo store")
		memory := store.NewMemory()
		postStore = memory
		platformStore = memory.Platforms()
		userStore = memory.Users()
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 1 * time.Minute,
		BodyLimit:    20 * 1024 * 1024, // 20 MB, image uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return origin == cfg.FrontendURL
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	authService := service.NewAuthService(userStore)
	userService := service.NewUserService(userStore)
	postService := service.NewPostService(postStore)
	platformService := service.NewPlatformService(platformStore)
	analyticsService := service.NewAnalyticsService(analytics.NewStaticSource(), postStore)
	mediaService := service.NewMediaService(*cfg)

	sessionMiddleware := middleware.NewSessionMiddleware(*cfg, session.NewResolver(cfg.SecretKey))

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(sessionMiddleware.Handler())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/create", post.CreatePost)
	api.Post("/posts/update", post.UpdatePost)
	api.Post("/posts/remove", post.RemovePost)
	api.Get("/schedule", post.Schedule)
	api.Get("/schedule/upcoming", post.Upcoming)

	platform := handlers.NewPlatformHandler(platformService)
	api.Get("/platforms", platform.ListPlatforms)
	api.Post("/platforms/connect", platform.Connect)
	api.Post("/platforms/disconnect", platform.Disconnect)

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analyticsHandler.Series)
	api.Get("/analytics/summary", analyticsHandler.Summary)

	media := handlers.NewMediaHandler(mediaService)
	api.Post("/media/upload", media.Upload)

	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.Addr)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}
