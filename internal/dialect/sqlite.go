package dialect

import (
	"fmt"
)

type SQLiteDialect struct{}

func (d *SQLiteDialect) QuoteIdentifier(name string) string {
	return QuoteAnsi(name)
}

func (d *SQLiteDialect) QualifyTable(schema, table string) string {
	// Schema is optional; a non-empty schema names an attached database.
	return QualifyTable(schema, table, d.QuoteIdentifier)
}

func (d *SQLiteDialect) CheckEmptyQuery(schema, table string) string {
	return fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", d.QualifyTable(schema, table))
}

func (d *SQLiteDialect) DefaultSchema(input string) string {
	return input
}
