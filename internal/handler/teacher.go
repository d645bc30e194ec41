package handler

import (
	"strconv"

	"github.com/edukit/teachers-api/internal/errs"
	"github.com/edukit/teachers-api/internal/model"
	"github.com/edukit/teachers-api/internal/server"
	"github.com/edukit/teachers-api/internal/service"
	"github.com/labstack/echo/v4"
)

// TeacherHandler exposes the teachers resource endpoints.
type TeacherHandler struct {
	Handler
	teachers *service.TeacherService
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(s *server.Server, teachers *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{
		Handler:  NewHandler(s),
		teachers: teachers,
	}
}

// CreateTeacherRequest is the POST /teachers body. Fields are pointers
// so an absent field reaches the database as NULL and fails its NOT
// NULL constraint, rather than being masked by a zero value.
type CreateTeacherRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
}

func (r *CreateTeacherRequest) Validate() error { return nil }

// ListTeachersRequest is the GET /teachers query. Limit and Page bind
// as strings: anything non-numeric falls back to the defaults instead
// of failing the request.
type ListTeachersRequest struct {
	Limit    string `query:"limit"`
	Page     string `query:"page"`
	Sort     string `query:"sort"`
	Populate string `query:"populate"`
}

func (r *ListTeachersRequest) Validate() error { return nil }

// GetTeacherRequest is the GET /teachers/:id input.
type GetTeacherRequest struct {
	ID int64 `param:"id"`
}

func (r *GetTeacherRequest) Validate() error { return nil }

// UpdateTeacherRequest is the PUT /teachers/:id input. Body fields are
// optional; omitted fields keep their stored values.
type UpdateTeacherRequest struct {
	ID         int64   `param:"id"`
	Name       *string `json:"name"`
	Department *string `json:"department"`
}

func (r *UpdateTeacherRequest) Validate() error { return nil }

// DeleteTeacherRequest is the DELETE /teachers/:id input.
type DeleteTeacherRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteTeacherRequest) Validate() error { return nil }

// Create inserts a new teacher and returns it with its generated id
// (201 at the route level).
func (h *TeacherHandler) Create(c echo.Context, req *CreateTeacherRequest) (*model.Teacher, error) {
	return h.teachers.Create(c.Request().Context(), service.CreateTeacherInput{
		Name:       req.Name,
		Department: req.Department,
	})
}

// List returns one page of teachers plus paging metadata.
func (h *TeacherHandler) List(c echo.Context, req *ListTeachersRequest) (*service.TeacherPage, error) {
	return h.teachers.List(c.Request().Context(), service.ListQuery{
		Limit:    intOrZero(req.Limit),
		Page:     intOrZero(req.Page),
		Sort:     req.Sort,
		Populate: req.Populate,
	})
}

// Get returns a single teacher with its courses.
func (h *TeacherHandler) Get(c echo.Context, req *GetTeacherRequest) (*model.Teacher, error) {
	return h.teachers.Get(c.Request().Context(), req.ID)
}

// Update applies a partial update and returns the updated teacher.
func (h *TeacherHandler) Update(c echo.Context, req *UpdateTeacherRequest) (*model.Teacher, error) {
	return h.teachers.Update(c.Request().Context(), req.ID, service.UpdateTeacherInput{
		Name:       req.Name,
		Department: req.Department,
	})
}

// Delete removes a teacher. Success is a 200 with a message body, not
// a 204; clients depend on that.
func (h *TeacherHandler) Delete(c echo.Context, req *DeleteTeacherRequest) (*errs.MessageResponse, error) {
	if err := h.teachers.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &errs.MessageResponse{Message: "Deleted"}, nil
}

// intOrZero parses s as an int, returning zero (which the service
// clamps to its defaults) when s is empty or not numeric.
func intOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
