package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"movielookup/internal/model"
	"movielookup/migrations"
)

// SQLite implements FavoriteStore backed by a SQLite database.
type SQLite struct {
	db *sql.DB
	bc *broadcaster
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db, bc: newBroadcaster()}, nil
}

// Close detaches all subscribers and closes the database connection.
func (s *SQLite) Close() error {
	s.bc.closeAll()
	return s.db.Close()
}

// Upsert inserts or replaces a favorite record by its ID. Idempotent.
func (s *SQLite) Upsert(ctx context.Context, fav model.FavoriteMovie) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorite_movies (id, title, poster_url, vote_average)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   poster_url = excluded.poster_url,
		   vote_average = excluded.vote_average`,
		fav.ID, fav.Title, fav.PosterURL, fav.VoteAverage,
	)
	if err != nil {
		return fmt.Errorf("upsert favorite: %w", err)
	}
	s.notify(ctx)
	return nil
}

// RemoveByID deletes a favorite record. No-op if absent.
func (s *SQLite) RemoveByID(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM favorite_movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	s.notify(ctx)
	return nil
}

// ExistsByID reports whether a favorite record exists for the given ID.
func (s *SQLite) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorite_movies WHERE id = ?`, id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

// ListAll returns every favorite record ordered by ID.
func (s *SQLite) ListAll(ctx context.Context) ([]model.FavoriteMovie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, poster_url, vote_average FROM favorite_movies ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var favs []model.FavoriteMovie
	for rows.Next() {
		var f model.FavoriteMovie
		if err := rows.Scan(&f.ID, &f.Title, &f.PosterURL, &f.VoteAverage); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

// Subscribe registers an observer of favorite-list snapshots.
func (s *SQLite) Subscribe(ctx context.Context) (<-chan []model.FavoriteMovie, func()) {
	id, ch := s.bc.subscribe()

	// Seed with the current contents so new observers render immediately.
	if snap, err := s.ListAll(ctx); err == nil {
		s.bc.send(id, snap)
	}

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			s.bc.unsubscribe(id)
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-stop:
		}
	}()

	return ch, cancel
}

// notify broadcasts a fresh snapshot after a mutation. A failed snapshot
// read drops this notification; the next mutation re-emits.
func (s *SQLite) notify(ctx context.Context) {
	snap, err := s.ListAll(ctx)
	if err != nil {
		return
	}
	s.bc.publish(snap)
}
