package service

import (
	"context"
	"errors"

	"github.com/edukit/teachers-api/internal/errs"
	"github.com/edukit/teachers-api/internal/model"
	"github.com/edukit/teachers-api/internal/repository"
)

const (
	// DefaultLimit is the page size applied when limit is absent,
	// unparsable, or non-positive.
	DefaultLimit = 10

	// DefaultPage is the page applied when page is absent, unparsable,
	// or non-positive.
	DefaultPage = 1

	// SortDesc is the only sort value that flips ordering; anything
	// else means ascending.
	SortDesc = "desc"
)

// TeacherService implements the teachers resource operations on top of
// a TeacherStore.
type TeacherService struct {
	store repository.TeacherStore
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(store repository.TeacherStore) *TeacherService {
	return &TeacherService{store: store}
}

// CreateTeacherInput carries the insertable fields. Pointers distinguish
// "absent" from "empty"; absent fields reach the database as NULL so its
// NOT NULL constraints decide what is required.
type CreateTeacherInput struct {
	Name       *string
	Department *string
}

// UpdateTeacherInput carries the partial-update fields; nil fields are
// left unchanged.
type UpdateTeacherInput struct {
	Name       *string
	Department *string
}

// ListQuery is the raw, already-bound listing input. Limit and Page are
// zero when the client sent nothing usable; Sort and Populate are passed
// through verbatim.
type ListQuery struct {
	Limit    int
	Page     int
	Sort     string
	Populate string
}

// PageMeta describes one page of a listing response.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int64 `json:"totalPages"`
}

// TeacherPage is the listing response body.
type TeacherPage struct {
	Meta PageMeta        `json:"meta"`
	Data []model.Teacher `json:"data"`
}

// Create inserts a new teacher and returns it with its generated id.
func (s *TeacherService) Create(ctx context.Context, input CreateTeacherInput) (*model.Teacher, error) {
	return s.store.Create(ctx, repository.CreateTeacherParams{
		Name:       input.Name,
		Department: input.Department,
	})
}

// List returns one page of teachers with paging metadata.
//
// Non-positive or unparsable limit/page values are clamped to the
// defaults, so the offset handed to the store is never negative.
// The total count is always the unfiltered table count, and totalPages
// is computed from it regardless of whether the requested page exists.
func (s *TeacherService) List(ctx context.Context, q ListQuery) (*TeacherPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := q.Page
	if page <= 0 {
		page = DefaultPage
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	include := model.ParsePopulate(q.Populate)
	teachers, err := s.store.List(ctx, repository.ListTeachersParams{
		Limit:          limit,
		Offset:         (page - 1) * limit,
		Desc:           q.Sort == SortDesc,
		IncludeCourses: include.Has(model.RelationCourse),
	})
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}

	return &TeacherPage{
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
		Data: teachers,
	}, nil
}

// Get fetches a teacher by id with its courses always included.
func (s *TeacherService) Get(ctx context.Context, id int64) (*model.Teacher, error) {
	teacher, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return teacher, nil
}

// Update applies a partial update and returns the updated teacher.
// Fields absent from the input keep their stored values; an empty input
// returns the row unchanged.
func (s *TeacherService) Update(ctx context.Context, id int64, input UpdateTeacherInput) (*model.Teacher, error) {
	teacher, err := s.store.Update(ctx, id, repository.UpdateTeacherParams{
		Name:       input.Name,
		Department: input.Department,
	})
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return teacher, nil
}

// Delete permanently removes a teacher. Deleting an already-deleted id
// reports not found, which also covers concurrent delete races.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapNotFound(err)
	}
	return nil
}

// mapNotFound converts the store's not-found sentinel into the API's
// 404 error; everything else passes through for the error funnel.
func (s *TeacherService) mapNotFound(err error) error {
	if errors.Is(err, repository.ErrTeacherNotFound) {
		return errs.NewNotFoundError()
	}
	return err
}
