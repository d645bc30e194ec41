package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Details carries the fields of a classified Postgres error that are
// worth logging.
type Details struct {
	Code           Code
	SQLState       string
	Severity       string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string
}

// Extract walks the error chain looking for a pgconn.PgError and, when
// found, returns its classified details.
func Extract(err error) (*Details, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}

	return &Details{
		Code:           MapCode(pgErr.Code),
		SQLState:       pgErr.Code,
		Severity:       pgErr.Severity,
		Message:        pgErr.Message,
		TableName:      pgErr.TableName,
		ColumnName:     pgErr.ColumnName,
		ConstraintName: pgErr.ConstraintName,
	}, true
}

// Annotate adds the classified database error fields to a log event.
// Events for non-database errors pass through untouched.
func Annotate(e *zerolog.Event, err error) *zerolog.Event {
	details, ok := Extract(err)
	if !ok {
		return e
	}

	e = e.
		Str("db_error_code", details.Code.String()).
		Str("db_sqlstate", details.SQLState)
	if details.TableName != "" {
		e = e.Str("db_table", details.TableName)
	}
	if details.ColumnName != "" {
		e = e.Str("db_column", details.ColumnName)
	}
	if details.ConstraintName != "" {
		e = e.Str("db_constraint", details.ConstraintName)
	}
	return e
}
