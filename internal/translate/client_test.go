package translate

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/h2non/gock"
)

func TestReassemble(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["Halo dunia","Hello world",null,null,10]],null,"en"]`,
			want: "Halo dunia",
		},
		{
			name: "multiple segments concatenated in order",
			body: `[[["Kalimat pertama. ","First sentence. "],["Kalimat kedua.","Second sentence."]],null,"en"]`,
			want: "Kalimat pertama. Kalimat kedua.",
		},
		{
			name: "no segments yields empty string",
			body: `[[],null,"en"]`,
			want: "",
		},
		{
			name:    "not an array",
			body:    `{"translated":"nope"}`,
			wantErr: true,
		},
		{
			name:    "empty outer array",
			body:    `[]`,
			wantErr: true,
		},
		{
			name:    "segment list is not an array",
			body:    `["Halo dunia"]`,
			wantErr: true,
		},
		{
			name:    "empty segment",
			body:    `[[[]]]`,
			wantErr: true,
		},
		{
			name:    "fragment is not a string",
			body:    `[[[42,"Hello"]]]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reassemble([]byte(tt.body))
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
				t.Errorf("Reassemble mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	httpClient := &http.Client{}
	gock.InterceptClient(httpClient)
	t.Cleanup(gock.Off)
	return New("https://translate.test", httpClient)
}

func TestTranslate(t *testing.T) {
	t.Run("successful translation", func(t *testing.T) {
		c := newTestClient(t)

		gock.New("https://translate.test").
			Get("/translate_a/single").
			MatchParam("client", "gtx").
			MatchParam("dt", "t").
			MatchParam("sl", "en").
			MatchParam("tl", "id").
			MatchParam("q", "Hello world").
			Reply(200).
			BodyString(`[[["Halo dunia","Hello world"]],null,"en"]`)

		got, err := c.Translate(context.Background(), "Hello world", "en", "id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff("Halo dunia", got); diff != "" {
			t.Errorf("Translate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		c := newTestClient(t)

		gock.New("https://translate.test").
			Get("/translate_a/single").
			Reply(429).
			BodyString("slow down")

		_, err := c.Translate(context.Background(), "Hello", "en", "id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("network error", func(t *testing.T) {
		c := newTestClient(t)

		gock.New("https://translate.test").
			Get("/translate_a/single").
			ReplyError(errors.New("no route to host"))

		_, err := c.Translate(context.Background(), "Hello", "en", "id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
