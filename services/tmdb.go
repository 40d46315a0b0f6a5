// Package services provides the TMDB proxy and the movie and TV domain services.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"viewvault/logger"
	"viewvault/models"

	"golang.org/x/sync/singleflight"
)

// Errors reported by TMDBService lookups
var (
	ErrInvalidMediaType  = errors.New("invalid media type")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrMissingTimeWindow = errors.New("time window is required for trending category")
	ErrInvalidTimeWindow = errors.New("invalid time window")
	ErrUpstreamStatus    = errors.New("TMDB API returned non-success status")
	ErrEmptyBody         = errors.New("TMDB API returned an empty body")
)

const defaultLanguage = "en-US"

// TMDBService handles interactions with The Movie Database API. Raw response
// bodies are cached by full request URL for the lifetime of the process.
type TMDBService struct {
	baseURL string
	token   string
	client  *http.Client
	log     *slog.Logger

	cache   sync.Map // url -> body
	entries atomic.Int64
	group   singleflight.Group
}

// NewTMDBService creates a new TMDB service instance
func NewTMDBService(baseURL, token string, timeout time.Duration) *TMDBService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TMDBService{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger.With("service", "tmdb"),
	}
}

// CategoryURL validates the lookup and builds the upstream list URL.
// page is only added when positive.
func (t *TMDBService) CategoryURL(mediaType, category, timeWindow string, page int) (string, error) {
	media, ok := models.ParseMediaType(mediaType)
	if !ok {
		return "", fmt.Errorf("%w %q: must be 'movie' or 'tv'", ErrInvalidMediaType, mediaType)
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if !media.HasCategory(category) {
		return "", fmt.Errorf("%w %q for %s, valid categories: %s",
			ErrInvalidCategory, category, media, strings.Join(media.Categories(), ", "))
	}

	var path string
	if category == models.CategoryTrending {
		timeWindow = strings.TrimSpace(timeWindow)
		if timeWindow == "" {
			return "", ErrMissingTimeWindow
		}
		if !models.ValidTimeWindow(timeWindow) {
			return "", fmt.Errorf("%w %q: must be 'day' or 'week'", ErrInvalidTimeWindow, timeWindow)
		}
		path = "/trending/" + string(media) + "/" + timeWindow
	} else {
		path = "/" + string(media) + "/" + category
	}

	u := t.baseURL + path + "?language=" + defaultLanguage
	if page > 0 {
		u += "&page=" + strconv.Itoa(page)
	}
	return u, nil
}

// DetailsURL builds the upstream URL for a movie or TV show, with credits
// appended to the response
func (t *TMDBService) DetailsURL(mediaType models.MediaType, tmdbID string) string {
	return fmt.Sprintf("%s/%s/%s?language=%s&append_to_response=credits",
		t.baseURL, mediaType, url.PathEscape(tmdbID), defaultLanguage)
}

// SeasonURL builds the upstream URL for a TV season
func (t *TMDBService) SeasonURL(tvID, seasonNumber string) string {
	return fmt.Sprintf("%s/tv/%s/season/%s?language=%s",
		t.baseURL, url.PathEscape(tvID), url.PathEscape(seasonNumber), defaultLanguage)
}

// EpisodeURL builds the upstream URL for a single TV episode
func (t *TMDBService) EpisodeURL(tvID, seasonNumber, episodeNumber string) string {
	return fmt.Sprintf("%s/tv/%s/season/%s/episode/%s?language=%s",
		t.baseURL, url.PathEscape(tvID), url.PathEscape(seasonNumber), url.PathEscape(episodeNumber), defaultLanguage)
}

// GetItemsByCategory returns the raw list body for a category lookup.
// Validation failures are logged and returned without calling TMDB.
func (t *TMDBService) GetItemsByCategory(ctx context.Context, mediaType, category, timeWindow string, page int) (string, error) {
	u, err := t.CategoryURL(mediaType, category, timeWindow, page)
	if err != nil {
		t.log.Error("Rejected category lookup", "media_type", mediaType, "category", category,
			"time_window", timeWindow, "error", err)
		return "", err
	}
	return t.fetch(ctx, u)
}

// GetItemDetails returns the raw detail body for a movie or TV show
func (t *TMDBService) GetItemDetails(ctx context.Context, mediaType models.MediaType, tmdbID string) (string, error) {
	if _, ok := models.ParseMediaType(string(mediaType)); !ok {
		err := fmt.Errorf("%w %q: must be 'movie' or 'tv'", ErrInvalidMediaType, mediaType)
		t.log.Error("Rejected detail lookup", "error", err)
		return "", err
	}
	return t.fetch(ctx, t.DetailsURL(mediaType, tmdbID))
}

// GetSeasonDetails returns the raw body for a TV season
func (t *TMDBService) GetSeasonDetails(ctx context.Context, tvID, seasonNumber string) (string, error) {
	return t.fetch(ctx, t.SeasonURL(tvID, seasonNumber))
}

// GetEpisodeDetails returns the raw body for a TV episode
func (t *TMDBService) GetEpisodeDetails(ctx context.Context, tvID, seasonNumber, episodeNumber string) (string, error) {
	return t.fetch(ctx, t.EpisodeURL(tvID, seasonNumber, episodeNumber))
}

// CacheSize returns the number of cached upstream responses
func (t *TMDBService) CacheSize() int {
	return int(t.entries.Load())
}

// fetch returns the cached body for u, or calls TMDB and caches a
// successful response. Concurrent misses for the same URL share one call.
func (t *TMDBService) fetch(ctx context.Context, u string) (string, error) {
	if body, ok := t.cache.Load(u); ok {
		t.log.Debug("Cache hit", "url", u)
		return body.(string), nil
	}

	v, err, shared := t.group.Do(u, func() (any, error) {
		if body, ok := t.cache.Load(u); ok {
			return body.(string), nil
		}

		// The call outlives a single caller since others may be waiting on it
		body, err := t.get(context.WithoutCancel(ctx), u)
		if err != nil {
			return "", err
		}

		stored, loaded := t.cache.LoadOrStore(u, body)
		if !loaded {
			t.entries.Add(1)
		}
		return stored.(string), nil
	})
	if err != nil {
		t.log.Error("Error during API call", "url", u, "error", err)
		return "", err
	}

	t.log.Debug("Cache miss", "url", u, "shared", shared)
	return v.(string), nil
}

func (t *TMDBService) get(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.log.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read TMDB response: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyBody
	}

	return string(data), nil
}
