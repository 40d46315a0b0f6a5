package services

import (
	"context"
	"fmt"
	"log/slog"

	"viewvault/logger"
	"viewvault/models"

	"github.com/go-playground/validator/v10"
)

// SavedMovieStore persists the local saved movie list
type SavedMovieStore interface {
	GetAll() ([]models.SavedMovie, error)
	GetByID(id int) (*models.SavedMovie, error)
	GetByExternalID(externalID string) ([]models.SavedMovie, error)
	Create(movie *models.SavedMovie) error
	Delete(id int) error
}

// MovieService serves movie lists and details from TMDB and the saved list
// from local storage
type MovieService struct {
	upstream Upstream
	store    SavedMovieStore
	validate *validator.Validate
	log      *slog.Logger
}

// NewMovieService creates a new movie service
func NewMovieService(upstream Upstream, store SavedMovieStore) *MovieService {
	return &MovieService{
		upstream: upstream,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logger.With("service", "movie"),
	}
}

// ListSaved returns every saved movie
func (s *MovieService) ListSaved() ([]models.SavedMovie, error) {
	movies, err := s.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved movies: %w", err)
	}
	if movies == nil {
		movies = []models.SavedMovie{}
	}
	return movies, nil
}

// GetSaved returns one saved movie by its local id
func (s *MovieService) GetSaved(id int) (*models.SavedMovie, error) {
	return s.store.GetByID(id)
}

// FindSaved returns the saved entries pointing at a TMDB movie id
func (s *MovieService) FindSaved(externalID string) ([]models.SavedMovie, error) {
	movies, err := s.store.GetByExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find saved movies: %w", err)
	}
	if movies == nil {
		movies = []models.SavedMovie{}
	}
	return movies, nil
}

// SaveMovie validates the request and adds it to the saved list. Validation
// failures are returned as validator.ValidationErrors.
func (s *MovieService) SaveMovie(req models.SaveMovieRequest) (*models.SavedMovie, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	movie := req.ToSavedMovie()
	if err := s.store.Create(movie); err != nil {
		return nil, fmt.Errorf("failed to save movie: %w", err)
	}

	s.log.Info("Saved movie", "id", movie.ID, "external_movie_id", movie.ExternalMovieID)
	return movie, nil
}

// DeleteSaved removes a movie from the saved list
func (s *MovieService) DeleteSaved(id int) error {
	return s.store.Delete(id)
}

// MoviesByCategory returns one page of a movie category. Any failure yields
// the empty page.
func (s *MovieService) MoviesByCategory(ctx context.Context, category, timeWindow string, page int) models.Page[models.MovieInList] {
	body, err := s.upstream.GetItemsByCategory(ctx, string(models.MediaTypeMovie), category, timeWindow, page)
	return shapeList[models.MovieInList](s.log, body, err, page)
}

// MovieDetails returns a movie's details, or nil when TMDB could not serve them
func (s *MovieService) MovieDetails(ctx context.Context, tmdbID string) *models.MovieDetail {
	body, err := s.upstream.GetItemDetails(ctx, models.MediaTypeMovie, tmdbID)
	return shapeDetail[models.MovieDetail](s.log, body, err)
}
