package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"viewvault/models"
)

// Upstream is the raw TMDB access used by the domain services
type Upstream interface {
	GetItemsByCategory(ctx context.Context, mediaType, category, timeWindow string, page int) (string, error)
	GetItemDetails(ctx context.Context, mediaType models.MediaType, tmdbID string) (string, error)
	GetSeasonDetails(ctx context.Context, tvID, seasonNumber string) (string, error)
	GetEpisodeDetails(ctx context.Context, tvID, seasonNumber, episodeNumber string) (string, error)
}

// listEnvelope is the paging wrapper TMDB puts around every list response
type listEnvelope struct {
	Page         *int            `json:"page"`
	TotalPages   *int            `json:"total_pages"`
	TotalResults *int            `json:"total_results"`
	Results      json.RawMessage `json:"results"`
}

// errMissingResults reports a list body without a results array
var errMissingResults = errors.New("list response has no results")

// parsePage decodes a list body. requested fills in a missing page number.
// A body without results is an error, so callers fall back to the empty page.
func parsePage[T any](body string, requested int) (models.Page[T], error) {
	page := models.EmptyPage[T](requested)

	var env listEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return page, fmt.Errorf("failed to decode list response: %w", err)
	}
	if len(env.Results) == 0 || string(env.Results) == "null" {
		return page, errMissingResults
	}

	results := []T{}
	if err := json.Unmarshal(env.Results, &results); err != nil {
		return page, fmt.Errorf("failed to decode list results: %w", err)
	}

	page.Results = results
	if env.Page != nil {
		page.Page = *env.Page
	}
	if env.TotalPages != nil {
		page.TotalPages = *env.TotalPages
	}
	if env.TotalResults != nil {
		page.TotalResults = *env.TotalResults
	}
	return page, nil
}

// shapeList turns an upstream list lookup into a page, degrading every
// failure to the empty page
func shapeList[T any](log *slog.Logger, body string, err error, requested int) models.Page[T] {
	if err != nil || body == "" {
		return models.EmptyPage[T](requested)
	}

	page, err := parsePage[T](body, requested)
	if err != nil {
		log.Error("Failed to shape list response", "error", err)
		return models.EmptyPage[T](requested)
	}
	return page
}

// shapeDetail decodes a detail body, returning nil on any failure
func shapeDetail[T any](log *slog.Logger, body string, err error) *T {
	if err != nil || body == "" {
		return nil
	}

	var detail *T
	if err := json.Unmarshal([]byte(body), &detail); err != nil {
		log.Error("Failed to shape detail response", "error", err)
		return nil
	}
	return detail
}
