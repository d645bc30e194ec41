package service

import (
	"github.com/edukit/teachers-api/internal/repository"
	"github.com/edukit/teachers-api/internal/server"
)

// Services is the container that groups all business-layer services.
type Services struct {
	Teachers *TeacherService
}

// NewServices constructs the service container from the application
// container and the repository container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Teachers: NewTeacherService(repos.Teachers),
	}, nil
}
