package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageURLs(t *testing.T) {
	tests := []struct {
		name         string
		movie        Movie
		wantPoster   string
		wantBackdrop string
	}{
		{
			name:         "both paths present",
			movie:        Movie{PosterPath: "/abc.jpg", BackdropPath: "/def.jpg"},
			wantPoster:   "https://image.tmdb.org/t/p/w500/abc.jpg",
			wantBackdrop: "https://image.tmdb.org/t/p/w780/def.jpg",
		},
		{
			name:  "missing paths yield empty URLs",
			movie: Movie{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantPoster, tt.movie.PosterURL()); diff != "" {
				t.Errorf("PosterURL mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantBackdrop, tt.movie.BackdropURL()); diff != "" {
				t.Errorf("BackdropURL mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFavoriteFromMovie(t *testing.T) {
	m := Movie{
		ID:          603,
		Title:       "The Matrix",
		Overview:    "A computer hacker learns the truth.",
		PosterPath:  "/matrix.jpg",
		VoteAverage: 8.2,
		GenreIDs:    []int{28, 878},
	}

	want := FavoriteMovie{
		ID:          603,
		Title:       "The Matrix",
		PosterURL:   "https://image.tmdb.org/t/p/w500/matrix.jpg",
		VoteAverage: 8.2,
	}
	if diff := cmp.Diff(want, FavoriteFromMovie(m)); diff != "" {
		t.Errorf("FavoriteFromMovie mismatch (-want +got):\n%s", diff)
	}
}
