// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"

	"movielookup/internal/model"
)

// FavoriteStore is the durable mapping of movie ID to favorite record.
//
// Subscribe returns a channel of full-list snapshots: the current contents
// immediately, then a fresh snapshot after every successful mutation.
// The returned cancel func detaches the subscriber; cancelling ctx does the
// same. Slow consumers see snapshots coalesced (latest wins) and never block
// mutations.
type FavoriteStore interface {
	Upsert(ctx context.Context, fav model.FavoriteMovie) error
	RemoveByID(ctx context.Context, id int) error
	ExistsByID(ctx context.Context, id int) (bool, error)
	ListAll(ctx context.Context) ([]model.FavoriteMovie, error)
	Subscribe(ctx context.Context) (<-chan []model.FavoriteMovie, func())

	Close() error
}
