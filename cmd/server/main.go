package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"video-editor-backend/internal/blob"
	"video-editor-backend/internal/config"
	"video-editor-backend/internal/database"
	"video-editor-backend/internal/handlers"
	"video-editor-backend/internal/media"
	"video-editor-backend/internal/metrics"
	"video-editor-backend/internal/middleware"
	"video-editor-backend/internal/storage"
	"video-editor-backend/internal/supabase"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Pick the storage backend once: PostgreSQL when a connection string is
	// configured, the in-memory store otherwise. Handlers never know which.
	var store storage.Storage
	if cfg.DatabaseURL != "" {
		migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize migrator")
		}
		if err := migrator.Run(); err != nil {
			migrator.Close()
			logger.Fatal().Err(err).Msg("migration failed")
		}
		migrator.Close()

		pgStore, err := storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pgStore.Close()
		store = pgStore
		logger.Info().Msg("using postgres storage")
	} else {
		store = storage.NewMemoryStore()
		logger.Warn().Msg("DATABASE_URL not set, using in-memory storage (state is lost on restart)")
	}

	// Uploaded bytes go to Supabase Storage when configured, local disk
	// otherwise. Realtime status events follow the same switch.
	var blobs blob.Store
	var events supabase.EventPublisher = supabase.NopPublisher{}
	var localBlobs *blob.LocalStore
	if cfg.SupabaseEnabled() {
		blobs = blob.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket)

		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize supabase client")
		}
		events = supabase.NewRealtimeClient(supabaseClient.Supabase)
		logger.Info().Msg("using supabase upload storage")
	} else {
		localBlobs, err = blob.NewLocalStore(cfg.UploadDir, cfg.UploadPrefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize upload directory")
		}
		blobs = localBlobs
	}

	mediaClient := media.NewClient(cfg.MediaServiceURL)
	if err := mediaClient.RetryWithBackoff(func() error {
		_, err := mediaClient.Health()
		return err
	}, 3); err != nil {
		logger.Warn().Err(err).Msg("media processing service is not reachable")
	}

	mediaURL, err := url.Parse(cfg.MediaServiceURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid media service URL")
	}

	projectsHandler := handlers.NewProjectsHandler(store, events, logger)
	filesHandler := handlers.NewFilesHandler(store, logger)
	uploadHandler := handlers.NewUploadHandler(store, blobs, events, logger)
	proxyHandler := handlers.NewProxyHandler(mediaURL, logger)
	healthHandler := handlers.NewHealthHandler(mediaClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	router.GET("/metrics", metrics.Handler())
	router.GET("/api/health", healthHandler.Health)

	// Project and file persistence
	router.GET("/api/projects", projectsHandler.ListProjects)
	router.GET("/api/projects/:id", projectsHandler.GetProject)
	router.POST("/api/projects", projectsHandler.CreateProject)
	router.PATCH("/api/projects/:id", projectsHandler.UpdateProject)
	router.DELETE("/api/projects/:id", projectsHandler.DeleteProject)
	router.GET("/api/projects/:id/files", filesHandler.GetProjectFiles)
	router.POST("/api/files", filesHandler.CreateFile)
	router.DELETE("/api/files/:id", filesHandler.DeleteFile)
	router.POST("/api/upload", uploadHandler.Upload)

	// Everything media-related is forwarded untouched to the processing
	// service; this backend never interprets those payloads.
	for _, prefix := range []string{"video", "audio", "subtitle", "export", "effects", "download"} {
		router.Any("/api/"+prefix+"/*path", proxyHandler.Forward)
	}
	router.Any("/health", proxyHandler.Forward)

	if localBlobs != nil {
		router.Static(cfg.UploadPrefix, localBlobs.Dir())
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}
