// Package repository provides data access layer for the saved movie list.
package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"viewvault/database"
	"viewvault/logger"
	"viewvault/models"
)

// ErrNotFound is wrapped by lookups that match no row
var ErrNotFound = errors.New("not found")

// SavedMovieRepository handles database operations for saved movies
type SavedMovieRepository struct {
	db *database.DB
}

// NewSavedMovieRepository creates a new saved movie repository
func NewSavedMovieRepository(db *database.DB) *SavedMovieRepository {
	return &SavedMovieRepository{db: db}
}

const savedMovieColumns = `id, name, external_movie_id, description, genres, created_at`

// GetAll retrieves all saved movies ordered by id
func (r *SavedMovieRepository) GetAll() ([]models.SavedMovie, error) {
	rows, err := r.db.Query(`SELECT ` + savedMovieColumns + ` FROM saved_movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved movies: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	movies := []models.SavedMovie{}
	for rows.Next() {
		movie, err := scanSavedMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return movies, nil
}

// GetByID retrieves a saved movie by its ID
func (r *SavedMovieRepository) GetByID(id int) (*models.SavedMovie, error) {
	row := r.db.QueryRow(`SELECT `+savedMovieColumns+` FROM saved_movies WHERE id = ?`, id)

	movie, err := scanSavedMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("saved movie with id %d %w", id, ErrNotFound)
		}
		return nil, err
	}
	return movie, nil
}

// GetByExternalID retrieves every saved entry pointing at a TMDB movie id
func (r *SavedMovieRepository) GetByExternalID(externalID string) ([]models.SavedMovie, error) {
	rows, err := r.db.Query(`SELECT `+savedMovieColumns+` FROM saved_movies WHERE external_movie_id = ? ORDER BY id`, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved movies: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	movies := []models.SavedMovie{}
	for rows.Next() {
		movie, err := scanSavedMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return movies, nil
}

// Create inserts a new saved movie and sets its ID and CreatedAt
func (r *SavedMovieRepository) Create(movie *models.SavedMovie) error {
	if movie.Genres == nil {
		movie.Genres = []string{}
	}
	genres, err := json.Marshal(movie.Genres)
	if err != nil {
		return fmt.Errorf("failed to marshal genres: %w", err)
	}

	movie.CreatedAt = time.Now().UTC()

	result, err := r.db.Exec(`
		INSERT INTO saved_movies (name, external_movie_id, description, genres, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, movie.Name, movie.ExternalMovieID, nullString(movie.Description), string(genres), movie.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create saved movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	movie.ID = int(id)
	return nil
}

// Delete removes a saved movie by its ID
func (r *SavedMovieRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM saved_movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved movie: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("saved movie with id %d %w", id, ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedMovie(row rowScanner) (*models.SavedMovie, error) {
	var movie models.SavedMovie
	var description sql.NullString
	var genres string

	if err := row.Scan(&movie.ID, &movie.Name, &movie.ExternalMovieID, &description, &genres, &movie.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan saved movie: %w", err)
	}

	if description.Valid {
		movie.Description = description.String
	}

	movie.Genres = []string{}
	if genres != "" {
		if err := json.Unmarshal([]byte(genres), &movie.Genres); err != nil {
			return nil, fmt.Errorf("failed to decode genres of saved movie %d: %w", movie.ID, err)
		}
	}

	return &movie, nil
}

// Helper functions for handling null values
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
