package models

import "time"

// SavedMovie represents a movie in the local saved list
type SavedMovie struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	ExternalMovieID string    `json:"external_movie_id"`
	Description     string    `json:"description,omitempty"`
	Genres          []string  `json:"genres"`
	CreatedAt       time.Time `json:"created_at"`
}

// SaveMovieRequest is the body accepted when adding a movie to the saved list
type SaveMovieRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	ExternalMovieID string   `json:"external_movie_id" validate:"required,numeric"`
	Description     string   `json:"description" validate:"max=4000"`
	Genres          []string `json:"genres" validate:"dive,required"`
}

// ToSavedMovie converts the request into a model ready to be stored
func (r SaveMovieRequest) ToSavedMovie() *SavedMovie {
	genres := r.Genres
	if genres == nil {
		genres = []string{}
	}
	return &SavedMovie{
		Name:            r.Name,
		ExternalMovieID: r.ExternalMovieID,
		Description:     r.Description,
		Genres:          genres,
	}
}
