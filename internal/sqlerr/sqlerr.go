// Package sqlerr classifies database driver errors.
//
// It parses the cryptic SQLSTATE codes produced by Postgres into named
// categories so the error funnel can log what actually went wrong
// (constraint, table, column) instead of an opaque string. It does not
// influence response status codes: every persistence failure surfaces
// to clients as a 500.
package sqlerr

// Code is the category of a Postgres error.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	UndefinedTable
	InvalidTextRepresentation
	ConnectionFailure
)

// sqlstateCodes maps the SQLSTATE values this API can realistically
// produce onto categories. Anything unmapped is Other.
var sqlstateCodes = map[string]Code{
	"23505": UniqueViolation,
	"23503": ForeignKeyViolation,
	"23502": NotNullViolation,
	"23514": CheckViolation,
	"42P01": UndefinedTable,
	"22P02": InvalidTextRepresentation,
	"08000": ConnectionFailure,
	"08003": ConnectionFailure,
	"08006": ConnectionFailure,
}

// MapCode converts a raw SQLSTATE string into a Code.
func MapCode(sqlstate string) Code {
	if code, ok := sqlstateCodes[sqlstate]; ok {
		return code
	}
	return Other
}

func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case UndefinedTable:
		return "undefined_table"
	case InvalidTextRepresentation:
		return "invalid_text_representation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "other"
	}
}
