package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/accountadate/internal/middleware"
	"github.com/nfrund/accountadate/web"
	"github.com/nfrund/accountadate/web/src/templates/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	submitLimiter := middleware.RateLimiter(s.Cfg.SubmitRate, s.Cfg.SubmitBurst)

	s.E.GET("/", s.formHandler.FormGet)
	s.E.POST(pages.SubmitPath, s.formHandler.FormPost, submitLimiter)
	s.E.POST(pages.WidgetsPath, s.formHandler.WidgetsPost, submitLimiter)

	s.E.StaticFS("/static", web.StaticFS())

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
