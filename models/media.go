// Package models defines the data structures used throughout the application.
package models

import "strings"

// MediaType represents the type of media content served by TMDB
type MediaType string

// Media type constants
const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Category names accepted for list lookups
const (
	CategoryTrending    = "trending"
	CategoryPopular     = "popular"
	CategoryTopRated    = "top_rated"
	CategoryUpcoming    = "upcoming"
	CategoryNowPlaying  = "now_playing"
	CategoryAiringToday = "airing_today"
	CategoryOnTheAir    = "on_the_air"
)

// Time windows accepted by the trending endpoints
const (
	TimeWindowDay  = "day"
	TimeWindowWeek = "week"
)

var (
	movieCategories = []string{CategoryTrending, CategoryPopular, CategoryTopRated, CategoryUpcoming, CategoryNowPlaying}
	tvCategories    = []string{CategoryTrending, CategoryPopular, CategoryTopRated, CategoryAiringToday, CategoryOnTheAir}
)

// ParseMediaType normalizes a media type string. ok is false for anything
// other than movie or tv.
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(strings.ToLower(strings.TrimSpace(s))) {
	case MediaTypeMovie:
		return MediaTypeMovie, true
	case MediaTypeTV:
		return MediaTypeTV, true
	}
	return "", false
}

// Categories returns the allow-list of categories for the media type
func (m MediaType) Categories() []string {
	switch m {
	case MediaTypeMovie:
		return append([]string(nil), movieCategories...)
	case MediaTypeTV:
		return append([]string(nil), tvCategories...)
	}
	return nil
}

// HasCategory reports whether category (already lower-cased) is valid for m
func (m MediaType) HasCategory(category string) bool {
	for _, c := range m.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// ValidTimeWindow reports whether w is accepted by TMDB's trending endpoints
func ValidTimeWindow(w string) bool {
	return w == TimeWindowDay || w == TimeWindowWeek
}
