// Package detail fetches a single movie's full record and produces a
// best-effort translated synopsis.
package detail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"movielookup/internal/model"
)

// ErrDetailUnavailable marks a detail fetch that failed; there is no retry.
var ErrDetailUnavailable = errors.New("detail unavailable")

// Catalog is the subset of the catalog client used by the controller.
type Catalog interface {
	Detail(ctx context.Context, movieID int) (*model.MovieDetail, error)
}

// Translator is the translation client contract.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// View is the settled state of one detail-screen activation: the detail
// record plus the synopsis to display. Translated reports whether the
// synopsis is the translation or the original-language fallback.
type View struct {
	Detail     *model.MovieDetail `json:"detail"`
	Synopsis   string             `json:"synopsis"`
	Translated bool               `json:"translated"`
}

// Result delivers an asynchronous load outcome.
type Result struct {
	View *View
	Err  error
}

// Controller bridges the catalog and translation clients.
type Controller struct {
	catalog    Catalog
	translator Translator
	source     string
	target     string
	log        *slog.Logger
}

// New creates a Controller translating synopses from source to target.
func New(catalog Catalog, translator Translator, source, target string, log *slog.Logger) *Controller {
	return &Controller{
		catalog:    catalog,
		translator: translator,
		source:     source,
		target:     target,
		log:        log,
	}
}

// Load fetches the movie's detail record and settles its synopsis:
// translated on success, the original text on any translation failure.
// A failed detail fetch returns ErrDetailUnavailable.
func (c *Controller) Load(ctx context.Context, movieID int) (*View, error) {
	d, err := c.catalog.Detail(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDetailUnavailable, err)
	}

	synopsis, translated := c.TranslateSynopsis(ctx, d.Overview)
	return &View{Detail: d, Synopsis: synopsis, Translated: translated}, nil
}

// TranslateSynopsis translates text, falling back to the input unchanged on
// any failure. Translation is best-effort and never blocks detail display.
func (c *Controller) TranslateSynopsis(ctx context.Context, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	out, err := c.translator.Translate(ctx, text, c.source, c.target)
	if err != nil {
		c.log.Debug("translation fallback", "error", err)
		return text, false
	}
	return out, true
}

// LoadAsync runs Load in the background and delivers the result on the
// returned channel. If ctx is cancelled before delivery the result is
// discarded, so a torn-down screen is never mutated by a late response.
func (c *Controller) LoadAsync(ctx context.Context, movieID int) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		view, err := c.Load(ctx, movieID)
		if ctx.Err() != nil {
			return
		}
		ch <- Result{View: view, Err: err}
	}()
	return ch
}
