package dialect

import (
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) QuoteIdentifier(name string) string {
	// Oracle stores unquoted identifiers in upper case; fold before quoting
	// so probes match tables created without quotes.
	return QuoteAnsi(strings.ToUpper(name))
}

func (d *OracleDialect) QualifyTable(schema, table string) string {
	// Empty schema targets the connected user's own tables.
	return QualifyTable(schema, table, d.QuoteIdentifier)
}

func (d *OracleDialect) CheckEmptyQuery(schema, table string) string {
	return fmt.Sprintf("SELECT 1 FROM %s WHERE ROWNUM = 1", d.QualifyTable(schema, table))
}

func (d *OracleDialect) DefaultSchema(input string) string {
	return input
}
