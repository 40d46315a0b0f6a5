package models

// Genre is a TMDB genre as embedded in detail responses
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person is a cast member, crew member or guest star.
// Character and Order are only set for cast entries.
type Person struct {
	Department         string  `json:"department,omitempty"`
	Job                string  `json:"job,omitempty"`
	CreditID           string  `json:"credit_id"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	ID                 int64   `json:"id"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	Character          string  `json:"character,omitempty"`
	Order              *int    `json:"order,omitempty"`
}

// Credits wraps cast and crew arrays
type Credits struct {
	Cast []Person `json:"cast"`
	Crew []Person `json:"crew"`
}

// MovieInList is a movie entry inside a list response
type MovieInList struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	BackdropPath     string  `json:"backdrop_path"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
	Popularity       float64 `json:"popularity"`
	MediaType        string  `json:"media_type,omitempty"`
	GenreIDs         []int   `json:"genre_ids"`
	Video            bool    `json:"video"`
}

// TVInList is a TV show entry inside a list response
type TVInList struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	FirstAirDate     string   `json:"first_air_date"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
	MediaType        string   `json:"media_type,omitempty"`
	Adult            bool     `json:"adult"`
}

// MovieDetail is the response from GET /movie/{id}
type MovieDetail struct {
	Adult            bool     `json:"adult"`
	BackdropPath     string   `json:"backdrop_path"`
	Budget           int64    `json:"budget"`
	Genres           []Genre  `json:"genres"`
	Homepage         string   `json:"homepage"`
	ID               int64    `json:"id"`
	IMDBID           string   `json:"imdb_id"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
	OriginalTitle    string   `json:"original_title"`
	Overview         string   `json:"overview"`
	Popularity       float64  `json:"popularity"`
	PosterPath       string   `json:"poster_path"`
	ReleaseDate      string   `json:"release_date"`
	Revenue          int64    `json:"revenue"`
	Runtime          int      `json:"runtime"`
	Status           string   `json:"status"`
	Tagline          string   `json:"tagline"`
	Title            string   `json:"title"`
	Video            bool     `json:"video"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Credits          *Credits `json:"credits,omitempty"`
}

// EpisodeSummary is the short episode shape embedded in a TV detail
// (last_episode_to_air, next_episode_to_air)
type EpisodeSummary struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	AirDate        string  `json:"air_date"`
	EpisodeNumber  int     `json:"episode_number"`
	ProductionCode string  `json:"production_code"`
	Runtime        int     `json:"runtime"`
	SeasonNumber   int     `json:"season_number"`
	ShowID         int64   `json:"show_id"`
	StillPath      string  `json:"still_path"`
}

// SeasonSummary is a season entry inside a TV detail
type SeasonSummary struct {
	AirDate      string  `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	SeasonNumber int     `json:"season_number"`
	VoteAverage  float64 `json:"vote_average"`
}

// TVDetail is the response from GET /tv/{id}
type TVDetail struct {
	BackdropPath     string          `json:"backdrop_path"`
	EpisodeRunTime   []int           `json:"episode_run_time"`
	FirstAirDate     string          `json:"first_air_date"`
	Genres           []Genre         `json:"genres"`
	Homepage         string          `json:"homepage"`
	ID               int64           `json:"id"`
	InProduction     bool            `json:"in_production"`
	Languages        []string        `json:"languages"`
	LastAirDate      string          `json:"last_air_date"`
	LastEpisodeToAir *EpisodeSummary `json:"last_episode_to_air"`
	Name             string          `json:"name"`
	NextEpisodeToAir *EpisodeSummary `json:"next_episode_to_air"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	OriginCountry    []string        `json:"origin_country"`
	OriginalLanguage string          `json:"original_language"`
	OriginalName     string          `json:"original_name"`
	Overview         string          `json:"overview"`
	Popularity       float64         `json:"popularity"`
	PosterPath       string          `json:"poster_path"`
	Seasons          []SeasonSummary `json:"seasons"`
	Status           string          `json:"status"`
	Tagline          string          `json:"tagline"`
	Type             string          `json:"type"`
	VoteAverage      float64         `json:"vote_average"`
	VoteCount        int             `json:"vote_count"`
	Credits          *Credits        `json:"credits,omitempty"`
}

// Network is a broadcaster attached to a season
type Network struct {
	ID            int64  `json:"id"`
	LogoPath      string `json:"logo_path"`
	Name          string `json:"name"`
	OriginCountry string `json:"origin_country"`
}

// EpisodeDetail is the response from GET /tv/{id}/season/{n}/episode/{m}
// and also the element type of a season's episode list
type EpisodeDetail struct {
	AirDate        string   `json:"air_date"`
	Crew           []Person `json:"crew"`
	EpisodeNumber  int      `json:"episode_number"`
	EpisodeType    string   `json:"episode_type,omitempty"`
	GuestStars     []Person `json:"guest_stars"`
	Name           string   `json:"name"`
	Overview       string   `json:"overview"`
	ID             int64    `json:"id"`
	ProductionCode string   `json:"production_code"`
	Runtime        int      `json:"runtime"`
	SeasonNumber   int      `json:"season_number"`
	ShowID         int64    `json:"show_id,omitempty"`
	StillPath      string   `json:"still_path"`
	VoteAverage    float64  `json:"vote_average"`
	VoteCount      int      `json:"vote_count"`
}

// SeasonDetail is the response from GET /tv/{id}/season/{n}
type SeasonDetail struct {
	InternalID   string          `json:"_id"`
	AirDate      string          `json:"air_date"`
	Episodes     []EpisodeDetail `json:"episodes"`
	Name         string          `json:"name"`
	Networks     []Network       `json:"networks"`
	Overview     string          `json:"overview"`
	ID           int64           `json:"id"`
	PosterPath   string          `json:"poster_path"`
	SeasonNumber int             `json:"season_number"`
	VoteAverage  float64         `json:"vote_average"`
}
