package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"viewvault/logger"
	"viewvault/models"
	"viewvault/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

func (app *App) healthHandler(w http.ResponseWriter, _ *http.Request) {
	if app.tmdbService != nil {
		w.Header().Set("X-Cache-Entries", strconv.Itoa(app.tmdbService.CacheSize()))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}

func (app *App) getSavedMoviesHandler(w http.ResponseWriter, r *http.Request) {
	var movies []models.SavedMovie
	var err error
	if externalID := strings.TrimSpace(r.URL.Query().Get("external_movie_id")); externalID != "" {
		movies, err = app.movieService.FindSaved(externalID)
	} else {
		movies, err = app.movieService.ListSaved()
	}
	if err != nil {
		logger.Error("Error getting saved movies", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

func (app *App) createSavedMovieHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SaveMovieRequest

	// Decode the request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	movie, err := app.movieService.SaveMovie(req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Validation failed",
				"fields": validationMessages(verrs),
			})
			return
		}
		logger.Error("Error creating saved movie", "error", err)
		http.Error(w, "Failed to save movie", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, movie)
}

func (app *App) getSavedMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid movie ID", http.StatusBadRequest)
		return
	}

	movie, err := app.movieService.GetSaved(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		logger.Error("Failed to get saved movie", "id", id, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

func (app *App) deleteSavedMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid movie ID", http.StatusBadRequest)
		return
	}

	if err := app.movieService.DeleteSaved(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		logger.Error("Failed to delete saved movie", "id", id, "error", err)
		http.Error(w, "Failed to delete movie", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Movie deleted successfully",
		"movie_id": id,
	})
}

func (app *App) getMoviesByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	timeWindow := timeWindowParam(r)
	page := pageParam(r)

	writeJSON(w, http.StatusOK, app.movieService.MoviesByCategory(r.Context(), category, timeWindow, page))
}

func (app *App) getMovieByTmdbIDHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.movieService.MovieDetails(r.Context(), mux.Vars(r)["tmdb_id"]))
}

func (app *App) getTvByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	timeWindow := timeWindowParam(r)
	page := pageParam(r)
	if page == 0 {
		page = 1
	}

	writeJSON(w, http.StatusOK, app.tvService.TVByCategory(r.Context(), category, timeWindow, page))
}

func (app *App) getTvByTmdbIDHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.tvService.TVDetails(r.Context(), mux.Vars(r)["tmdb_id"]))
}

func (app *App) getTvSeasonHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	writeJSON(w, http.StatusOK, app.tvService.SeasonDetails(r.Context(), vars["tmdb_id"], vars["season_number"]))
}

func (app *App) getTvSeasonEpisodeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	episode := app.tvService.EpisodeDetails(r.Context(), vars["tmdb_id"], vars["season_number"], vars["episode_number"])
	writeJSON(w, http.StatusOK, episode)
}

func (app *App) prefetchHandler(w http.ResponseWriter, r *http.Request) {
	mediaType, ok := models.ParseMediaType(mux.Vars(r)["media_type"])
	if !ok {
		http.Error(w, "Invalid media type", http.StatusBadRequest)
		return
	}

	if app.jobManager == nil || !app.jobManager.TriggerPrefetch(mediaType) {
		http.Error(w, "Prefetch unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"message":    "Prefetch started",
		"media_type": mediaType,
	})
}

// timeWindowParam returns the timeWindow query parameter, defaulting to day
func timeWindowParam(r *http.Request) string {
	if tw := strings.TrimSpace(r.URL.Query().Get("timeWindow")); tw != "" {
		return tw
	}
	return models.TimeWindowDay
}

// pageParam returns the page query parameter, or 0 when it is absent or
// not a positive number
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 0
	}
	return page
}

func validationMessages(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			fields[fe.Field()] = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
			continue
		}
		fields[fe.Field()] = fmt.Sprintf("failed on '%s'", fe.Tag())
	}
	return fields
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
