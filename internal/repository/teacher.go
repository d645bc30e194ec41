package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/edukit/teachers-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTeacherNotFound is returned when a primary-key lookup, update, or
// delete matches no row.
var ErrTeacherNotFound = errors.New("teacher not found")

// TeacherStore is the persistence contract for the teachers resource.
// The pgx implementation below is the production store; tests swap in
// in-memory fakes.
type TeacherStore interface {
	Create(ctx context.Context, params CreateTeacherParams) (*model.Teacher, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, params ListTeachersParams) ([]model.Teacher, error)
	GetByID(ctx context.Context, id int64) (*model.Teacher, error)
	Update(ctx context.Context, id int64, params UpdateTeacherParams) (*model.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// CreateTeacherParams are the insertable teacher fields. Pointers pass
// through as SQL NULL when absent, so the schema's NOT NULL constraints
// stay the single authority on required fields.
type CreateTeacherParams struct {
	Name       *string
	Department *string
}

// ListTeachersParams controls one page of a listing query.
type ListTeachersParams struct {
	Limit          int
	Offset         int
	Desc           bool
	IncludeCourses bool
}

// UpdateTeacherParams are the partial-update fields. A nil pointer
// leaves the column unchanged.
type UpdateTeacherParams struct {
	Name       *string
	Department *string
}

const (
	sqlCreateTeacher = `
		INSERT INTO teachers (name, department)
		VALUES ($1, $2)
		RETURNING id, name, department`

	sqlCountTeachers = `
		SELECT COUNT(*) FROM teachers`

	sqlListTeachersAsc = `
		SELECT id, name, department
		FROM   teachers
		ORDER  BY id ASC
		LIMIT  $1 OFFSET $2`

	sqlListTeachersDesc = `
		SELECT id, name, department
		FROM   teachers
		ORDER  BY id DESC
		LIMIT  $1 OFFSET $2`

	sqlGetTeacher = `
		SELECT id, name, department
		FROM   teachers
		WHERE  id = $1`

	sqlUpdateTeacher = `
		UPDATE teachers
		SET    name       = COALESCE($2, name),
		       department = COALESCE($3, department)
		WHERE  id = $1
		RETURNING id, name, department`

	sqlDeleteTeacher = `
		DELETE FROM teachers WHERE id = $1`

	sqlCoursesByTeacherIDs = `
		SELECT id, teacher_id, title, code
		FROM   courses
		WHERE  teacher_id = ANY($1)
		ORDER  BY id`
)

// teacherStore is the pgx-backed TeacherStore.
type teacherStore struct {
	pool *pgxpool.Pool
}

// NewTeacherStore returns a TeacherStore backed by the given pool.
func NewTeacherStore(pool *pgxpool.Pool) TeacherStore {
	return &teacherStore{pool: pool}
}

func (s *teacherStore) Create(ctx context.Context, params CreateTeacherParams) (*model.Teacher, error) {
	var t model.Teacher
	err := s.pool.QueryRow(ctx, sqlCreateTeacher, params.Name, params.Department).
		Scan(&t.ID, &t.Name, &t.Department)
	if err != nil {
		return nil, fmt.Errorf("creating teacher: %w", err)
	}
	return &t, nil
}

func (s *teacherStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.pool.QueryRow(ctx, sqlCountTeachers).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting teachers: %w", err)
	}
	return total, nil
}

func (s *teacherStore) List(ctx context.Context, params ListTeachersParams) ([]model.Teacher, error) {
	query := sqlListTeachersAsc
	if params.Desc {
		query = sqlListTeachersDesc
	}

	rows, err := s.pool.Query(ctx, query, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing teachers: %w", err)
	}
	defer rows.Close()

	teachers := []model.Teacher{}
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Department); err != nil {
			return nil, fmt.Errorf("scanning teacher row: %w", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing teachers: %w", err)
	}

	if params.IncludeCourses {
		if err := s.attachCourses(ctx, teachers); err != nil {
			return nil, err
		}
	}

	return teachers, nil
}

func (s *teacherStore) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	var t model.Teacher
	err := s.pool.QueryRow(ctx, sqlGetTeacher, id).Scan(&t.ID, &t.Name, &t.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching teacher %d: %w", id, err)
	}

	// Get-by-id always eager-loads courses.
	one := []model.Teacher{t}
	if err := s.attachCourses(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (s *teacherStore) Update(ctx context.Context, id int64, params UpdateTeacherParams) (*model.Teacher, error) {
	var t model.Teacher
	err := s.pool.QueryRow(ctx, sqlUpdateTeacher, id, params.Name, params.Department).
		Scan(&t.ID, &t.Name, &t.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating teacher %d: %w", id, err)
	}
	return &t, nil
}

func (s *teacherStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, sqlDeleteTeacher, id)
	if err != nil {
		return fmt.Errorf("deleting teacher %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}
	return nil
}

// attachCourses loads the courses of every teacher in the slice with a
// single query and sets a non-nil Courses slice on each, so populated
// teachers always serialize a courses array even when it is empty.
func (s *teacherStore) attachCourses(ctx context.Context, teachers []model.Teacher) error {
	for i := range teachers {
		courses := []model.Course{}
		teachers[i].Courses = &courses
	}
	if len(teachers) == 0 {
		return nil
	}

	ids := make([]int64, len(teachers))
	byID := make(map[int64]*model.Teacher, len(teachers))
	for i := range teachers {
		ids[i] = teachers[i].ID
		byID[teachers[i].ID] = &teachers[i]
	}

	rows, err := s.pool.Query(ctx, sqlCoursesByTeacherIDs, ids)
	if err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.TeacherID, &c.Title, &c.Code); err != nil {
			return fmt.Errorf("scanning course row: %w", err)
		}
		if t, ok := byID[c.TeacherID]; ok {
			*t.Courses = append(*t.Courses, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}
	return nil
}
