package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mpetrov/linkstash/internal/audit"
	"github.com/mpetrov/linkstash/internal/config"
	"github.com/mpetrov/linkstash/internal/handlers"
	"github.com/mpetrov/linkstash/internal/jwt"
	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/middlewares"
	"github.com/mpetrov/linkstash/internal/repositories"
	"github.com/mpetrov/linkstash/internal/usecases"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mpetrov/linkstash/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title linkstash API
// @version 1.0.0
// @description Bookmark management service with per-user bookmarks
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger and the selected storage backend, wires the
// use cases into HTTP handlers, and serves until a shutdown signal.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	var userRepo usecases.UserRepo
	var bookmarkRepo usecases.BookmarkRepo

	switch cfg.RepoBackend {
	case config.BackendMemory:
		logger.Log.Info("Using in-memory storage, data is lost on restart")
		userRepo = repositories.NewMemoryUserRepo()
		bookmarkRepo = repositories.NewMemoryBookmarkRepo()

	case config.BackendRedis:
		logger.Log.Infof("Connecting to Redis: %s", cfg.RedisAddr)
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		userRepo = repositories.NewRedisUserRepo(rdb)
		bookmarkRepo = repositories.NewRedisBookmarkRepo(rdb)

	case config.BackendPostgres:
		logger.Log.Infof("Connecting to PostgreSQL: %s", cfg.PostgresDSN)
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("postgres connection error: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping failed: %w", err)
		}
		userRepo = repositories.NewPostgresUserRepo(db)
		bookmarkRepo = repositories.NewPostgresBookmarkRepo(db)
	}

	var events *audit.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		logger.Log.Infof("Publishing audit events to %v topic %s", cfg.KafkaBrokers, cfg.KafkaTopic)
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		events = audit.NewPublisher(writer)
		defer events.Close()
	}

	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize use cases
	createUser := usecases.NewCreateUserUseCase(userRepo, events)
	authenticateUser := usecases.NewAuthenticateUserUseCase(userRepo)
	createBookmark := usecases.NewCreateBookmarkUseCase(userRepo, bookmarkRepo, events)
	editBookmark := usecases.NewEditBookmarkUseCase(userRepo, bookmarkRepo, events)
	bookmarkDetails := usecases.NewBookmarkDetailsUseCase(bookmarkRepo)
	listBookmarks := usecases.NewListBookmarksUseCase(userRepo, bookmarkRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(createUser))
	r.Post("/login", handlers.NewLoginHandler(authenticateUser, tokener))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Post("/bookmarks", handlers.NewCreateBookmarkHandler(createBookmark))
		r.Get("/bookmarks", handlers.NewListBookmarksHandler(listBookmarks))
		r.Get("/bookmarks/{bookmark_id}", handlers.NewBookmarkDetailsHandler(bookmarkDetails))
		r.Put("/bookmarks/{bookmark_id}", handlers.NewEditBookmarkHandler(editBookmark))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Address)),
	))

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
