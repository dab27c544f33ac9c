// Package model defines the domain types used across the application.
package model

// TMDB serves images from a fixed CDN; posters and backdrops use different widths.
const (
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
	backdropBaseURL = "https://image.tmdb.org/t/p/w780"
)

// Movie is a single entry of the popular-movies feed.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// PosterURL returns the full CDN URL for the movie poster,
// or "" when the movie has no poster.
func (m Movie) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return posterBaseURL + m.PosterPath
}

// BackdropURL returns the full CDN URL for the movie backdrop,
// or "" when the movie has no backdrop.
func (m Movie) BackdropURL() string {
	if m.BackdropPath == "" {
		return ""
	}
	return backdropBaseURL + m.BackdropPath
}

// PopularPage is one page of the paginated popular-movies endpoint.
type PopularPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a named movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full record for a single movie.
// It is fetched per detail-view visit and never cached across sessions.
type MovieDetail struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []Genre `json:"genres"`
}

// PosterURL returns the full CDN URL for the poster, or "" when absent.
func (d MovieDetail) PosterURL() string {
	if d.PosterPath == "" {
		return ""
	}
	return posterBaseURL + d.PosterPath
}

// BackdropURL returns the full CDN URL for the backdrop, or "" when absent.
func (d MovieDetail) BackdropURL() string {
	if d.BackdropPath == "" {
		return ""
	}
	return backdropBaseURL + d.BackdropPath
}

// FavoriteMovie is the locally persisted record of a favorited movie.
// The poster URL is stored fully resolved so the favorites list can render
// without consulting the remote catalog.
type FavoriteMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterURL   string  `json:"poster_url"`
	VoteAverage float64 `json:"vote_average"`
}

// FavoriteFromMovie builds the persistent favorite record from a feed entry.
func FavoriteFromMovie(m Movie) FavoriteMovie {
	return FavoriteMovie{
		ID:          m.ID,
		Title:       m.Title,
		PosterURL:   m.PosterURL(),
		VoteAverage: m.VoteAverage,
	}
}
