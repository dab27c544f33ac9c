// Package api exposes the feed, detail, and favorites controllers over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"movielookup/internal/detail"
	"movielookup/internal/feed"
	"movielookup/internal/storage"
)

// Server is the HTTP presentation surface.
type Server struct {
	feed   *feed.Controller
	detail *detail.Controller
	favs   storage.FavoriteStore
	log    *slog.Logger
	engine *gin.Engine
}

// New creates a Server and registers its routes.
func New(feedCtrl *feed.Controller, detailCtrl *detail.Controller, favs storage.FavoriteStore, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())

	s := &Server{
		feed:   feedCtrl,
		detail: detailCtrl,
		favs:   favs,
		log:    log,
		engine: engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/movies", s.listMovies)
	s.engine.POST("/movies/refresh", s.refreshFeed)
	s.engine.GET("/movies/:id", s.getMovie)
	s.engine.GET("/favorites", s.listFavorites)
	s.engine.POST("/favorites/:id/toggle", s.toggleFavorite)
	s.engine.GET("/favorites/watch", s.watchFavorites)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
