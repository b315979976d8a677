package dialect

import (
	"strings"
)

// QuoteAnsi quotes an identifier with double quotes, doubling any embedded
// quote so caller-supplied names cannot break out of the identifier.
func QuoteAnsi(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QualifyTable is a helper that joins a schema and table name with the given
// quote function. An empty schema yields the quoted table name alone, for
// dialects where schema qualification is optional.
func QualifyTable(schema, table string, quoteFunc func(string) string) string {
	if schema == "" {
		return quoteFunc(table)
	}
	return quoteFunc(schema) + "." + quoteFunc(table)
}
