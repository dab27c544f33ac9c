package storage

import (
	"sync"

	"movielookup/internal/model"
)

// broadcaster fans favorite-list snapshots out to subscribers.
// Every subscriber channel is buffered with capacity 1; publishing to a
// subscriber that has not consumed the previous snapshot replaces it, so
// observers always see the latest state and mutations never block.
type broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan []model.FavoriteMovie
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan []model.FavoriteMovie)}
}

func (b *broadcaster) subscribe() (int, chan []model.FavoriteMovie) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan []model.FavoriteMovie, 1)
	b.subs[id] = ch
	return id, ch
}

func (b *broadcaster) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// send delivers a snapshot to a single subscriber, coalescing with any
// undelivered previous snapshot.
func (b *broadcaster) send(id int, snapshot []model.FavoriteMovie) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		deliver(ch, snapshot)
	}
}

// publish delivers a snapshot to every subscriber.
func (b *broadcaster) publish(snapshot []model.FavoriteMovie) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		deliver(ch, snapshot)
	}
}

func (b *broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func deliver(ch chan []model.FavoriteMovie, snapshot []model.FavoriteMovie) {
	select {
	case <-ch: // drop the stale snapshot
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}
