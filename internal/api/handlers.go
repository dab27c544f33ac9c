package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movielookup/internal/model"
	"movielookup/internal/tmdb"
)

// listMovies returns the feed snapshot. An optional `q` param sets the
// search query; an optional `visible` param reports the last visible index
// so the controller can prefetch the next page.
func (s *Server) listMovies(c *gin.Context) {
	if q, ok := c.GetQuery("q"); ok {
		s.feed.SetSearchQuery(q)
	}
	if v, ok := c.GetQuery("visible"); ok {
		idx, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "visible must be an integer"})
			return
		}
		s.feed.NotifyVisible(c.Request.Context(), idx)
	}
	c.JSON(http.StatusOK, s.feed.Snapshot())
}

// refreshFeed (re)loads page 1; it doubles as the manual retry trigger.
func (s *Server) refreshFeed(c *gin.Context) {
	if err := s.feed.Initialize(c.Request.Context()); err != nil {
		s.log.Error("initialize feed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "feed unavailable"})
		return
	}
	c.JSON(http.StatusOK, s.feed.Snapshot())
}

func (s *Server) getMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	view, err := s.detail.Load(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		s.log.Error("load detail", "movie_id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "detail unavailable"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) listFavorites(c *gin.Context) {
	favs, err := s.favs.ListAll(c.Request.Context())
	if err != nil {
		s.log.Error("list favorites", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read favorites"})
		return
	}
	if favs == nil {
		favs = []model.FavoriteMovie{}
	}
	c.JSON(http.StatusOK, favs)
}

// toggleFavorite flips the favorite state of the movie summary in the body.
// The path ID is authoritative.
func (s *Server) toggleFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var m model.Movie
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie body"})
		return
	}
	m.ID = id

	fav, err := s.feed.ToggleFavorite(c.Request.Context(), m)
	if err != nil {
		s.log.Error("toggle favorite", "movie_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "favorite": fav})
}

// watchFavorites streams favorite-list snapshots as newline-delimited JSON
// until the client disconnects. The subscription is torn down with the
// request context.
func (s *Server) watchFavorites(c *gin.Context) {
	ctx := c.Request.Context()
	ch, cancel := s.favs.Subscribe(ctx)
	defer cancel()

	c.Header("Content-Type", "application/x-ndjson")
	c.Writer.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(c.Writer)

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			if snap == nil {
				snap = []model.FavoriteMovie{}
			}
			if err := enc.Encode(snap); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}
