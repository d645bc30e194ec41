package service

import (
	"context"
	"errors"
	"testing"

	"github.com/edukit/teachers-api/internal/errs"
	"github.com/edukit/teachers-api/internal/model"
	"github.com/edukit/teachers-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore lets each test plug in only the store behavior it needs.
type stubStore struct {
	createFn func(ctx context.Context, params repository.CreateTeacherParams) (*model.Teacher, error)
	countFn  func(ctx context.Context) (int64, error)
	listFn   func(ctx context.Context, params repository.ListTeachersParams) ([]model.Teacher, error)
	getFn    func(ctx context.Context, id int64) (*model.Teacher, error)
	updateFn func(ctx context.Context, id int64, params repository.UpdateTeacherParams) (*model.Teacher, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubStore) Create(ctx context.Context, params repository.CreateTeacherParams) (*model.Teacher, error) {
	return s.createFn(ctx, params)
}

func (s *stubStore) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx)
}

func (s *stubStore) List(ctx context.Context, params repository.ListTeachersParams) ([]model.Teacher, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, params)
}

func (s *stubStore) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	return s.getFn(ctx, id)
}

func (s *stubStore) Update(ctx context.Context, id int64, params repository.UpdateTeacherParams) (*model.Teacher, error) {
	return s.updateFn(ctx, id, params)
}

func (s *stubStore) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func strptr(s string) *string { return &s }

func TestList_PagingNormalization(t *testing.T) {
	tests := []struct {
		name       string
		query      ListQuery
		wantLimit  int
		wantOffset int
		wantDesc   bool
	}{
		{name: "defaults", query: ListQuery{}, wantLimit: 10, wantOffset: 0},
		{name: "explicit page and limit", query: ListQuery{Limit: 5, Page: 3}, wantLimit: 5, wantOffset: 10},
		{name: "zero limit clamped", query: ListQuery{Limit: 0, Page: 2}, wantLimit: 10, wantOffset: 10},
		{name: "negative limit clamped", query: ListQuery{Limit: -5}, wantLimit: 10, wantOffset: 0},
		{name: "zero page clamped", query: ListQuery{Limit: 4, Page: 0}, wantLimit: 4, wantOffset: 0},
		{name: "negative page clamped", query: ListQuery{Limit: 4, Page: -2}, wantLimit: 4, wantOffset: 0},
		{name: "desc exact match", query: ListQuery{Sort: "desc"}, wantLimit: 10, wantDesc: true},
		{name: "desc is case sensitive", query: ListQuery{Sort: "DESC"}, wantLimit: 10, wantDesc: false},
		{name: "unknown sort means asc", query: ListQuery{Sort: "sideways"}, wantLimit: 10, wantDesc: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got repository.ListTeachersParams
			store := &stubStore{
				listFn: func(_ context.Context, params repository.ListTeachersParams) ([]model.Teacher, error) {
					got = params
					return []model.Teacher{}, nil
				},
			}

			_, err := NewTeacherService(store).List(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
			assert.Equal(t, tt.wantDesc, got.Desc)
		})
	}
}

func TestList_PopulateToggle(t *testing.T) {
	tests := []struct {
		populate    string
		wantInclude bool
	}{
		{populate: "", wantInclude: false},
		{populate: "course", wantInclude: true},
		{populate: "COURSE,room", wantInclude: true},
		{populate: "courses", wantInclude: false},
	}

	for _, tt := range tests {
		t.Run("populate="+tt.populate, func(t *testing.T) {
			var got repository.ListTeachersParams
			store := &stubStore{
				listFn: func(_ context.Context, params repository.ListTeachersParams) ([]model.Teacher, error) {
					got = params
					return []model.Teacher{}, nil
				},
			}

			_, err := NewTeacherService(store).List(context.Background(), ListQuery{Populate: tt.populate})
			require.NoError(t, err)
			assert.Equal(t, tt.wantInclude, got.IncludeCourses)
		})
	}
}

func TestList_Meta(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		query          ListQuery
		wantPage       int
		wantTotalPages int64
	}{
		{name: "exact pages", total: 20, query: ListQuery{Limit: 10, Page: 1}, wantPage: 1, wantTotalPages: 2},
		{name: "partial last page", total: 25, query: ListQuery{Limit: 10, Page: 2}, wantPage: 2, wantTotalPages: 3},
		{name: "empty table", total: 0, query: ListQuery{}, wantPage: 1, wantTotalPages: 0},
		{name: "page beyond range keeps meta", total: 3, query: ListQuery{Limit: 2, Page: 9}, wantPage: 9, wantTotalPages: 2},
		{name: "clamped page reported", total: 3, query: ListQuery{Page: -1}, wantPage: 1, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{
				countFn: func(context.Context) (int64, error) { return tt.total, nil },
				listFn: func(context.Context, repository.ListTeachersParams) ([]model.Teacher, error) {
					return []model.Teacher{}, nil
				},
			}

			page, err := NewTeacherService(store).List(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.total, page.Meta.Total)
			assert.Equal(t, tt.wantPage, page.Meta.Page)
			assert.Equal(t, tt.wantTotalPages, page.Meta.TotalPages)
		})
	}
}

func TestList_NilRowsBecomeEmptySlice(t *testing.T) {
	store := &stubStore{
		listFn: func(context.Context, repository.ListTeachersParams) ([]model.Teacher, error) {
			return nil, nil
		},
	}

	page, err := NewTeacherService(store).List(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestList_CountFailurePropagates(t *testing.T) {
	boom := errors.New("connection refused")
	store := &stubStore{
		countFn: func(context.Context) (int64, error) { return 0, boom },
	}

	_, err := NewTeacherService(store).List(context.Background(), ListQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestCreate_PassesFieldsThrough(t *testing.T) {
	var got repository.CreateTeacherParams
	store := &stubStore{
		createFn: func(_ context.Context, params repository.CreateTeacherParams) (*model.Teacher, error) {
			got = params
			return &model.Teacher{ID: 1, Name: *params.Name, Department: *params.Department}, nil
		},
	}

	teacher, err := NewTeacherService(store).Create(context.Background(), CreateTeacherInput{
		Name:       strptr("Alice"),
		Department: strptr("Math"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), teacher.ID)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Alice", *got.Name)
	require.NotNil(t, got.Department)
	assert.Equal(t, "Math", *got.Department)
}

func TestNotFoundMapping(t *testing.T) {
	store := &stubStore{
		getFn: func(context.Context, int64) (*model.Teacher, error) {
			return nil, repository.ErrTeacherNotFound
		},
		updateFn: func(context.Context, int64, repository.UpdateTeacherParams) (*model.Teacher, error) {
			return nil, repository.ErrTeacherNotFound
		},
		deleteFn: func(context.Context, int64) error {
			return repository.ErrTeacherNotFound
		},
	}
	svc := NewTeacherService(store)
	ctx := context.Background()

	_, err := svc.Get(ctx, 42)
	requireNotFound(t, err)

	_, err = svc.Update(ctx, 42, UpdateTeacherInput{Name: strptr("Bob")})
	requireNotFound(t, err)

	requireNotFound(t, svc.Delete(ctx, 42))
}

func TestGatewayErrorsPassThroughUnwrapped(t *testing.T) {
	boom := errors.New(`relation "teachers" does not exist`)
	store := &stubStore{
		getFn: func(context.Context, int64) (*model.Teacher, error) { return nil, boom },
	}

	_, err := NewTeacherService(store).Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Not found", httpErr.Message)
}
