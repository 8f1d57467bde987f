package repositories

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// UniqueViolation is the postgres error code for duplicate keys.
const UniqueViolation = "23505"

// NullString maps "" to SQL NULL.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// JoinColumns renders a column list for RETURNING clauses.
func JoinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
