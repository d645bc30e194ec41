package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, UndefinedTable, MapCode("42P01"))
	assert.Equal(t, InvalidTextRepresentation, MapCode("22P02"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("99999"))
	assert.Equal(t, Other, MapCode(""))
}

func TestExtract(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23502",
		Severity:       "ERROR",
		Message:        `null value in column "name" violates not-null constraint`,
		TableName:      "teachers",
		ColumnName:     "name",
		ConstraintName: "",
	}

	details, ok := Extract(fmt.Errorf("creating teacher: %w", pgErr))
	require.True(t, ok)
	assert.Equal(t, NotNullViolation, details.Code)
	assert.Equal(t, "23502", details.SQLState)
	assert.Equal(t, "teachers", details.TableName)
	assert.Equal(t, "name", details.ColumnName)
}

func TestExtract_NonDatabaseError(t *testing.T) {
	_, ok := Extract(errors.New("plain error"))
	assert.False(t, ok)
}
