// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware chain and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/edukit/teachers-api/internal/handler"
	"github.com/edukit/teachers-api/internal/middleware"
	"github.com/edukit/teachers-api/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware chain and all
// routes registered.
//
// Middleware order matters: recovery first so later middleware is
// covered, request id before the context enhancer so the enhanced
// logger carries it, and the New Relic middleware before EnhanceTracing
// so a transaction exists to annotate.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerTeacherRoutes(e, h)

	return e
}
