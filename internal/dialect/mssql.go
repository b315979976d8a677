package dialect

import (
	"fmt"
	"strings"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) QuoteIdentifier(name string) string {
	// Closing brackets inside the identifier are doubled.
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQLDialect) QualifyTable(schema, table string) string {
	return QualifyTable(d.DefaultSchema(schema), table, d.QuoteIdentifier)
}

func (d *MSSQLDialect) CheckEmptyQuery(schema, table string) string {
	// T-SQL has no LIMIT; TOP bounds the probe to one row.
	return fmt.Sprintf("SELECT TOP 1 1 FROM %s", d.QualifyTable(schema, table))
}

func (d *MSSQLDialect) DefaultSchema(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}
