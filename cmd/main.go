package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-recipe-atlas/docs"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/handlers"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/jwt"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage backends
const (
	backendMemory   = "memory"
	backendRedis    = "redis"
	backendPostgres = "postgres"
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	storageBackend string
	keyPrefix      string
	seedOnStart    bool

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int
}

// @title gw-recipe-atlas API
// @version 1.0.0
// @description Regional recipe catalog with community variants and voting
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
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

// parseConfig loads environment variables from a file and returns the
// application, storage, Kafka, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	cfg.storageBackend = strings.ToLower(getEnv("STORAGE_BACKEND", backendMemory))
	switch cfg.storageBackend {
	case backendMemory, backendRedis, backendPostgres:
	default:
		err = fmt.Errorf("STORAGE_BACKEND: unknown backend %q", cfg.storageBackend)
		return
	}
	cfg.keyPrefix = getEnv("STORAGE_KEY_PREFIX", repositories.DefaultKeyPrefix)
	if cfg.seedOnStart, err = strconv.ParseBool(getEnv("SEED_ON_START", "true")); err != nil {
		err = fmt.Errorf("SEED_ON_START: %w", err)
		return
	}

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, empty brokers disable publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "recipe-atlas-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	return
}

// openStore connects the configured key-value backend. The returned db is
// non-nil only for postgres and enables the transaction middleware.
func openStore(ctx context.Context, cfg config) (repositories.KeyValueStore, *sqlx.DB, func(), error) {
	switch cfg.storageBackend {
	case backendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return repositories.NewRedisKeyValueRepository(rdb), nil, func() { rdb.Close() }, nil

	case backendPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.pgMaxOpenConns)
		db.SetMaxIdleConns(cfg.pgMaxIdleConns)

		store := repositories.NewPostgresKeyValueRepository(db, middlewares.GetTxFromContext)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return store, db, func() { db.Close() }, nil

	default:
		return repositories.NewMemoryKeyValueRepository(), nil, func() {}, nil
	}
}

// newKafkaWriter returns nil when no broker is configured. The result is
// typed as the interface so that a missing writer stays a true nil.
func newKafkaWriter(brokers []string, topic string) services.KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires repositories, services and handlers under /api/v1.
func newRouter(store repositories.KeyValueStore, db *sqlx.DB, writer services.KafkaWriter, cfg config) (http.Handler, *services.Seeder) {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Repositories
	userRepo := repositories.NewUserRepository(store, cfg.keyPrefix)
	recipeRepo := repositories.NewRecipeRepository(store, cfg.keyPrefix)
	variantRepo := repositories.NewRecipeVariantRepository(store, cfg.keyPrefix)
	regionRepo := repositories.NewRegionRepository(store, cfg.keyPrefix)
	authRepo := repositories.NewAuthRepository(store, cfg.keyPrefix)

	// Services
	events := services.NewKafkaEventPublisher(writer)
	authService := services.NewAuthService(userRepo, authRepo, tokens, events)
	catalogService := services.NewCatalogService(recipeRepo, regionRepo, variantRepo)
	variantService := services.NewVariantService(recipeRepo, variantRepo, events)
	recipeService := services.NewRecipeService(recipeRepo, regionRepo, variantRepo, events)
	userService := services.NewUserService(userRepo, events)
	profileService := services.NewProfileService(recipeRepo, variantRepo)
	contactService := services.NewContactService(events)
	seeder := services.NewSeeder(services.SeedStores{
		Users:    userRepo,
		Recipes:  recipeRepo,
		Variants: variantRepo,
		Regions:  regionRepo,
	})

	// Mutating routes run in one transaction on postgres
	withTx := func(r chi.Router) {
		if db != nil {
			r.Use(middlewares.TxMiddleware(db))
		}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(tokens, authService))

		// Public routes
		r.Get("/session", handlers.NewSessionHandler())
		r.Get("/regions", handlers.NewRegionsHandler(catalogService))
		r.Get("/regions/{id}", handlers.NewRegionDetailHandler(catalogService))
		r.Get("/recipes", handlers.NewListRecipesHandler(catalogService))
		r.Get("/recipes/featured", handlers.NewFeaturedRecipesHandler(catalogService))
		r.Get("/recipes/search", handlers.NewSearchRecipesHandler(catalogService))
		r.Get("/recipes/ingredients", handlers.NewIngredientsHandler(catalogService))
		r.Get("/recipes/{id}", handlers.NewRecipeDetailHandler(catalogService))
		r.Post("/contact", handlers.NewContactHandler(contactService))

		r.Group(func(r chi.Router) {
			withTx(r)
			r.Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.Post("/logout", handlers.NewLogoutHandler(authService))
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireUser)
			r.Get("/profile", handlers.NewProfileHandler(profileService))

			r.Group(func(r chi.Router) {
				withTx(r)
				r.Post("/recipes/{id}/variants", handlers.NewSubmitVariantHandler(variantService))
				r.Post("/variants/{id}/vote", handlers.NewToggleVoteHandler(variantService))
			})
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RequireAdmin)
			r.Get("/users", handlers.NewListUsersHandler(userService))
			r.Get("/session", handlers.NewLastSessionHandler(authService))

			r.Group(func(r chi.Router) {
				withTx(r)
				r.Post("/users", handlers.NewAddUserHandler(userService))
				r.Put("/users/{id}", handlers.NewEditUserHandler(userService))
				r.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))
				r.Post("/recipes", handlers.NewCreateRecipeHandler(recipeService))
				r.Put("/recipes/{id}", handlers.NewUpdateRecipeHandler(recipeService))
				r.Delete("/recipes/{id}", handlers.NewDeleteRecipeHandler(recipeService))
			})
		})
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	return r, seeder
}

// run initializes the logger, storage backend, Kafka writer and HTTP server.
// It seeds an empty store when configured and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	store, db, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Log.Infow("Storage backend ready", "backend", cfg.storageBackend, "prefix", cfg.keyPrefix)

	writer := newKafkaWriter(cfg.kafkaBrokers, cfg.kafkaTopic)
	if writer != nil {
		defer writer.Close()
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	router, seeder := newRouter(store, db, writer, cfg)

	if cfg.seedOnStart {
		seeded, err := seeder.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		logger.Log.Infow("Seed finished", "written", seeded)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: router,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
