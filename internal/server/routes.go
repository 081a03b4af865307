package server

import (
	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/web"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	contactLimiter := middleware.RateLimiter(middleware.ContactRate, middleware.ContactBurst)

	s.E.GET("/", s.home.HomeGet)
	s.E.GET("/resume", s.home.ResumeGet)

	s.E.GET("/notes", s.notes.List)
	s.E.GET("/notes/results", s.notes.Results)
	s.E.GET("/notes/:slug", s.notes.Show)

	s.E.GET("/docs/preview/:index", s.docs.Preview)
	s.E.POST("/contact", s.contact.Post, contactLimiter)

	s.E.POST("/lang", s.lang.Set)
	s.E.GET("/lang/:code", s.lang.Set)

	if s.Cfg.Features.Game {
		s.E.GET("/play/ws", s.play.ServeWS)
	}

	s.E.GET("/health", s.pages.Health)

	// Everything else is a public file: css, js and the documents the
	// content links to.
	s.E.StaticFS("/", echo.MustSubFS(web.Static, "static"))
}
