package handler

import (
	"github.com/edukit/teachers-api/internal/server"
	"github.com/edukit/teachers-api/internal/service"
)

// Handlers is the container that groups all HTTP handlers, so router
// setup receives one wired object.
type Handlers struct {
	Health   *HealthHandler
	Teachers *TeacherHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s, s.DB),
		Teachers: NewTeacherHandler(s, services.Teachers),
	}
}
