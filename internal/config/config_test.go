package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var configEnvKeys = []string{
	"TMDB_API_KEY", "TMDB_BASE_URL", "TRANSLATE_BASE_URL", "DATABASE_PATH",
	"LISTEN_ADDR", "LANGUAGE", "TRANSLATE_TARGET", "LOG_LEVEL",
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name:    "missing api key",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "api key only, defaults applied",
			env:  map[string]string{"TMDB_API_KEY": "test-key"},
			want: &Config{
				CatalogAPIKey:    "test-key",
				CatalogBaseURL:   "https://api.themoviedb.org/3",
				TranslateBaseURL: "https://translate.googleapis.com",
				DatabasePath:     "./data/movies.db",
				ListenAddr:       ":8080",
				Language:         "en-US",
				TranslateTarget:  "id",
				LogLevel:         "info",
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"TMDB_API_KEY":       "k",
				"TMDB_BASE_URL":      "https://catalog.test/3",
				"TRANSLATE_BASE_URL": "https://translate.test",
				"DATABASE_PATH":      "/tmp/movies.db",
				"LISTEN_ADDR":        ":9090",
				"LANGUAGE":           "id-ID",
				"TRANSLATE_TARGET":   "fr",
				"LOG_LEVEL":          "debug",
			},
			want: &Config{
				CatalogAPIKey:    "k",
				CatalogBaseURL:   "https://catalog.test/3",
				TranslateBaseURL: "https://translate.test",
				DatabasePath:     "/tmp/movies.db",
				ListenAddr:       ":9090",
				Language:         "id-ID",
				TranslateTarget:  "fr",
				LogLevel:         "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant env vars
			for _, key := range configEnvKeys {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
