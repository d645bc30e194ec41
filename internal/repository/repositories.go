package repository

import (
	"github.com/edukit/teachers-api/internal/server"
)

// Repositories is the container for all repository instances, wired
// once at startup and handed to the service layer.
type Repositories struct {
	Teachers TeacherStore
}

// NewRepositories constructs the repository container from the shared
// application resources.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Teachers: NewTeacherStore(s.DB.Pool),
	}
}
