package router

import (
	"net/http"

	"github.com/edukit/teachers-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerTeacherRoutes binds the teachers resource endpoints.
func registerTeacherRoutes(r *echo.Echo, h *handler.Handlers) {
	t := h.Teachers
	g := r.Group("/teachers")

	g.POST("", handler.Handle(t.Handler, t.Create, http.StatusCreated,
		func() *handler.CreateTeacherRequest { return &handler.CreateTeacherRequest{} }))

	g.GET("", handler.Handle(t.Handler, t.List, http.StatusOK,
		func() *handler.ListTeachersRequest { return &handler.ListTeachersRequest{} }))

	g.GET("/:id", handler.Handle(t.Handler, t.Get, http.StatusOK,
		func() *handler.GetTeacherRequest { return &handler.GetTeacherRequest{} }))

	g.PUT("/:id", handler.Handle(t.Handler, t.Update, http.StatusOK,
		func() *handler.UpdateTeacherRequest { return &handler.UpdateTeacherRequest{} }))

	g.DELETE("/:id", handler.Handle(t.Handler, t.Delete, http.StatusOK,
		func() *handler.DeleteTeacherRequest { return &handler.DeleteTeacherRequest{} }))
}
