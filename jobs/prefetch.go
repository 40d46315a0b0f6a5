package jobs

import (
	"context"
	"log/slog"

	"viewvault/logger"
	"viewvault/models"
)

// MovieLister fetches one page of a movie category
type MovieLister interface {
	MoviesByCategory(ctx context.Context, category, timeWindow string, page int) models.Page[models.MovieInList]
}

// TVLister fetches one page of a TV category
type TVLister interface {
	TVByCategory(ctx context.Context, category, timeWindow string, page int) models.Page[models.TVInList]
}

// PrefetchTarget is a single list lookup to warm
type PrefetchTarget struct {
	MediaType  models.MediaType
	Category   string
	TimeWindow string
}

// PrefetchJob requests the first page of every category so the upstream
// cache already holds them when clients arrive
type PrefetchJob struct {
	movies MovieLister
	tv     TVLister
	log    *slog.Logger
}

// NewPrefetchJob creates a new prefetch job
func NewPrefetchJob(movies MovieLister, tv TVLister) *PrefetchJob {
	return &PrefetchJob{
		movies: movies,
		tv:     tv,
		log:    logger.With("job", "prefetch"),
	}
}

// Targets lists the lookups warmed for a media type. Trending is warmed for
// both time windows.
func Targets(mediaType models.MediaType) []PrefetchTarget {
	var targets []PrefetchTarget
	for _, category := range mediaType.Categories() {
		if category == models.CategoryTrending {
			for _, window := range []string{models.TimeWindowDay, models.TimeWindowWeek} {
				targets = append(targets, PrefetchTarget{MediaType: mediaType, Category: category, TimeWindow: window})
			}
			continue
		}
		targets = append(targets, PrefetchTarget{MediaType: mediaType, Category: category, TimeWindow: models.TimeWindowDay})
	}
	return targets
}

// Run warms every target of the media type and returns how many came back
// with results. It stops early when ctx is cancelled.
func (j *PrefetchJob) Run(ctx context.Context, mediaType models.MediaType) int {
	warmed := 0
	for _, target := range Targets(mediaType) {
		if ctx.Err() != nil {
			j.log.Info("Prefetch interrupted", "media_type", mediaType, "warmed", warmed)
			return warmed
		}

		var count int
		switch target.MediaType {
		case models.MediaTypeMovie:
			if j.movies == nil {
				continue
			}
			// Movie lists are requested without a page unless the client asks for one
			count = len(j.movies.MoviesByCategory(ctx, target.Category, target.TimeWindow, 0).Results)
		case models.MediaTypeTV:
			if j.tv == nil {
				continue
			}
			count = len(j.tv.TVByCategory(ctx, target.Category, target.TimeWindow, 1).Results)
		}

		if count == 0 {
			j.log.Warn("Prefetch returned no results", "media_type", target.MediaType,
				"category", target.Category, "time_window", target.TimeWindow)
			continue
		}
		warmed++
	}

	j.log.Info("Prefetch completed", "media_type", mediaType, "warmed", warmed)
	return warmed
}
