// Package feed maintains the paginated popular-movies list, its search
// projection, and per-movie favorite state.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"movielookup/internal/model"
	"movielookup/internal/storage"
)

// lookahead is how close to the end of the filtered list the visible range
// may come before the next page is requested. Measured against the filtered
// list, so heavy filtering fires the trigger less often; accepted behavior.
const lookahead = 4

// ErrFeedUnavailable marks an initial load that could not reach the catalog.
var ErrFeedUnavailable = errors.New("feed unavailable")

// Catalog is the subset of the catalog client used by the controller.
type Catalog interface {
	Popular(ctx context.Context, page int) (*model.PopularPage, error)
}

// Snapshot is the feed state handed to the presentation layer.
type Snapshot struct {
	Movies     []model.Movie `json:"movies"`
	Loading    bool          `json:"loading"`
	EndReached bool          `json:"end_reached"`
}

// Controller drives incremental loading and favorite toggling for one screen.
// One controller owns its accumulated list and cursor; no cross-screen sharing.
type Controller struct {
	catalog Catalog
	favs    storage.FavoriteStore
	log     *slog.Logger

	mu         sync.Mutex
	movies     []model.Movie
	page       int
	loading    bool
	endReached bool
	query      string

	togglesMu sync.Mutex
	toggles   map[int]*sync.Mutex
}

// New creates a Controller over the given catalog and favorite store.
func New(catalog Catalog, favs storage.FavoriteStore, log *slog.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		favs:    favs,
		log:     log,
		page:    1,
		toggles: make(map[int]*sync.Mutex),
	}
}

// Initialize fetches page 1 and resets the accumulated list.
// On failure the list stays empty and ErrFeedUnavailable is returned;
// calling Initialize again is the manual retry.
func (c *Controller) Initialize(ctx context.Context) error {
	resp, err := c.catalog.Popular(ctx, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.movies = nil
		c.page = 1
		c.endReached = false
		return fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}
	c.movies = resp.Results
	c.page = 2
	c.endReached = false
	return nil
}

// LoadNextPage fetches the page at the current cursor and appends its
// results. No-op while a fetch is in flight or after end-of-data.
func (c *Controller) LoadNextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || c.endReached {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	page := c.page
	c.mu.Unlock()

	// The in-flight flag must clear on every exit path.
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	resp, err := c.catalog.Popular(ctx, page)
	if err != nil {
		// List and cursor stay unchanged; the feed stops advancing
		// rather than crashing, and a later call retries this page.
		return fmt.Errorf("fetch page %d: %w", page, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(resp.Results) == 0 {
		c.endReached = true
		return nil
	}
	c.movies = append(c.movies, resp.Results...)
	c.page++
	return nil
}

// SetSearchQuery stores the query driving the visible-list projection.
func (c *Controller) SetSearchQuery(q string) {
	c.mu.Lock()
	c.query = q
	c.mu.Unlock()
}

// Visible returns the accumulated list filtered by the current query:
// case-insensitive substring match on title, order preserved.
func (c *Controller) Visible() []model.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filterByTitle(c.movies, c.query)
}

// Snapshot returns the state the presentation layer renders.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Movies:     filterByTitle(c.movies, c.query),
		Loading:    c.loading,
		EndReached: c.endReached,
	}
}

// NotifyVisible reports the last visible index of the filtered list and
// triggers the next page fetch when the visible range comes within the
// lookahead threshold of the end. Fetch errors are logged, not surfaced;
// scrolling again retries.
func (c *Controller) NotifyVisible(ctx context.Context, lastVisible int) {
	c.mu.Lock()
	total := len(filterByTitle(c.movies, c.query))
	c.mu.Unlock()

	if lastVisible < total-lookahead {
		return
	}
	if err := c.LoadNextPage(ctx); err != nil {
		c.log.Error("load next page", "error", err)
	}
}

// ToggleFavorite flips the favorite state of a movie and returns the new
// state. Toggles on the same movie are serialized so overlapping calls
// cannot both read a stale status.
func (c *Controller) ToggleFavorite(ctx context.Context, m model.Movie) (bool, error) {
	lock := c.lockFor(m.ID)
	lock.Lock()
	defer lock.Unlock()

	fav, err := c.favs.ExistsByID(ctx, m.ID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	if fav {
		if err := c.favs.RemoveByID(ctx, m.ID); err != nil {
			return true, fmt.Errorf("remove favorite: %w", err)
		}
		return false, nil
	}
	if err := c.favs.Upsert(ctx, model.FavoriteFromMovie(m)); err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}

// IsFavorite reports the current favorite state of a movie.
func (c *Controller) IsFavorite(ctx context.Context, movieID int) (bool, error) {
	return c.favs.ExistsByID(ctx, movieID)
}

func (c *Controller) lockFor(movieID int) *sync.Mutex {
	c.togglesMu.Lock()
	defer c.togglesMu.Unlock()
	lock, ok := c.toggles[movieID]
	if !ok {
		lock = &sync.Mutex{}
		c.toggles[movieID] = lock
	}
	return lock
}

func filterByTitle(movies []model.Movie, query string) []model.Movie {
	if query == "" {
		return append([]model.Movie(nil), movies...)
	}
	q := strings.ToLower(query)
	var out []model.Movie
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}
