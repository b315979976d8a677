package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect abstracts database-specific SQL generation for pre-flight checks.
type Dialect interface {
	// Identifier Handling
	QuoteIdentifier(name string) string
	QualifyTable(schema, table string) string

	// Query Generation
	// CheckEmptyQuery builds a single-row-bounded existence probe: executing
	// it yields zero rows for an empty table and at most one row otherwise.
	CheckEmptyQuery(schema, table string) string

	// Helpers
	DefaultSchema(input string) string
}

// Checker verifies dialect-specific migration preconditions against a live
// data source: minimum privileges for the executing credentials and server
// variables required for consistent incremental capture. Dialects without
// special rules have no Checker registered.
type Checker interface {
	CheckPrivilege(ctx context.Context, db *sql.DB) error
	CheckVariable(ctx context.Context, db *sql.DB) error
}

// PrivilegeError reports credentials that lack rights the migration needs.
type PrivilegeError struct {
	Driver  string
	Missing []string
}

func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("%s user lacks required privileges: %s", e.Driver, strings.Join(e.Missing, ", "))
}

// VariableError reports a server variable set incompatibly with incremental
// capture.
type VariableError struct {
	Driver   string
	Name     string
	Expected string
	Actual   string
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("%s variable %s must be %s, got %s", e.Driver, e.Name, e.Expected, e.Actual)
}
