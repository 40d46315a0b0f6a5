package services

import (
	"context"
	"log/slog"

	"viewvault/logger"
	"viewvault/models"
)

// TVService serves TV lists, shows, seasons and episodes from TMDB
type TVService struct {
	upstream Upstream
	log      *slog.Logger
}

// NewTVService creates a new TV service
func NewTVService(upstream Upstream) *TVService {
	return &TVService{
		upstream: upstream,
		log:      logger.With("service", "tv"),
	}
}

// TVByCategory returns one page of a TV category. Any failure yields the
// empty page.
func (s *TVService) TVByCategory(ctx context.Context, category, timeWindow string, page int) models.Page[models.TVInList] {
	body, err := s.upstream.GetItemsByCategory(ctx, string(models.MediaTypeTV), category, timeWindow, page)
	return shapeList[models.TVInList](s.log, body, err, page)
}

// TVDetails returns a show's details or nil
func (s *TVService) TVDetails(ctx context.Context, tmdbID string) *models.TVDetail {
	body, err := s.upstream.GetItemDetails(ctx, models.MediaTypeTV, tmdbID)
	return shapeDetail[models.TVDetail](s.log, body, err)
}

// SeasonDetails returns a season with its episodes or nil
func (s *TVService) SeasonDetails(ctx context.Context, tmdbID, seasonNumber string) *models.SeasonDetail {
	body, err := s.upstream.GetSeasonDetails(ctx, tmdbID, seasonNumber)
	return shapeDetail[models.SeasonDetail](s.log, body, err)
}

// EpisodeDetails returns a single episode or nil
func (s *TVService) EpisodeDetails(ctx context.Context, tmdbID, seasonNumber, episodeNumber string) *models.EpisodeDetail {
	body, err := s.upstream.GetEpisodeDetails(ctx, tmdbID, seasonNumber, episodeNumber)
	return shapeDetail[models.EpisodeDetail](s.log, body, err)
}
