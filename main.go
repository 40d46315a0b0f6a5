// Package main provides the entry point for the View Vault API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viewvault/config"
	"viewvault/database"
	"viewvault/jobs"
	"viewvault/logger"
	"viewvault/repository"
	"viewvault/services"

	"github.com/gorilla/mux"
)

// App represents the application with its dependencies
type App struct {
	movieService *services.MovieService
	tvService    *services.TVService
	tmdbService  *services.TMDBService
	jobManager   *jobs.JobManager
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
		FilePath:    cfg.LogFile,
	})
	for _, warning := range cfg.Warnings {
		logger.Warn("Configuration warning", "warning", warning)
	}
	logger.Info("Configuration loaded", "env", cfg.Env, "tmdb_base_url", cfg.TMDB.BaseURL)

	// Initialize database
	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to connect to database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.InitSchema(); err != nil {
		logger.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	savedMovieRepo := repository.NewSavedMovieRepository(db)
	tmdbService := services.NewTMDBService(cfg.TMDB.BaseURL, cfg.TMDB.Token, cfg.TMDB.Timeout)
	movieService := services.NewMovieService(tmdbService, savedMovieRepo)
	tvService := services.NewTVService(tmdbService)

	jobManager := jobs.NewJobManager(jobs.NewPrefetchJob(movieService, tvService))
	if cfg.Prefetch {
		jobManager.Start()
	}
	defer jobManager.Stop()

	app := &App{
		movieService: movieService,
		tvService:    tvService,
		tmdbService:  tmdbService,
		jobManager:   jobManager,
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      corsMiddleware(cfg.AllowedOrigin)(loggingMiddleware(app.routes())),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.TMDB.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// routes registers every endpoint. Numeric path segments are TMDB ids; any
// other segment is a category name.
func (app *App) routes() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", app.healthHandler).Methods("GET")

	// Saved movie list
	r.HandleFunc("/movies", app.getSavedMoviesHandler).Methods("GET")
	r.HandleFunc("/movies", app.createSavedMovieHandler).Methods("POST")
	r.HandleFunc("/movies/saved/{id:[0-9]+}", app.getSavedMovieHandler).Methods("GET")
	r.HandleFunc("/movies/{id:[0-9]+}", app.deleteSavedMovieHandler).Methods("DELETE")

	// Movie endpoints
	r.HandleFunc("/movies/category/{category}", app.getMoviesByCategoryHandler).Methods("GET")
	r.HandleFunc("/movies/{tmdb_id:[0-9]+}", app.getMovieByTmdbIDHandler).Methods("GET")
	r.HandleFunc("/movies/{category}", app.getMoviesByCategoryHandler).Methods("GET")

	// TV endpoints
	r.HandleFunc("/tv/category/{category}", app.getTvByCategoryHandler).Methods("GET")
	r.HandleFunc("/tv/{tmdb_id:[0-9]+}", app.getTvByTmdbIDHandler).Methods("GET")
	r.HandleFunc("/tv/{tmdb_id:[0-9]+}/season/{season_number:[0-9]+}", app.getTvSeasonHandler).Methods("GET")
	r.HandleFunc("/tv/{tmdb_id:[0-9]+}/season/{season_number:[0-9]+}/episode/{episode_number:[0-9]+}",
		app.getTvSeasonEpisodeHandler).Methods("GET")
	r.HandleFunc("/tv/{category}", app.getTvByCategoryHandler).Methods("GET")

	// Cache warming
	r.HandleFunc("/cache/prefetch/{media_type}", app.prefetchHandler).Methods("POST")

	return r
}
