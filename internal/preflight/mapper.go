package preflight

import "slices"

// TableSchemaMapper resolves the physical schema for a logical table name.
type TableSchemaMapper struct {
	schemas map[string]string
}

func NewTableSchemaMapper(schemas map[string]string) *TableSchemaMapper {
	m := make(map[string]string, len(schemas))
	for table, schema := range schemas {
		m[table] = schema
	}
	return &TableSchemaMapper{schemas: m}
}

// SchemaName returns the schema mapped to the logical table name, or the
// empty string when no mapping exists (the dialect then applies its default).
func (m *TableSchemaMapper) SchemaName(logicalTable string) string {
	return m.schemas[logicalTable]
}

// ImporterConfig describes the tables a migration job will write to: the
// logical table names in the order the job declares them, plus the schema
// mapping needed to resolve each to a physical schema.
type ImporterConfig struct {
	logicalTableNames []string
	mapper            *TableSchemaMapper
}

func NewImporterConfig(logicalTableNames []string, mapper *TableSchemaMapper) *ImporterConfig {
	return &ImporterConfig{
		logicalTableNames: slices.Clone(logicalTableNames),
		mapper:            mapper,
	}
}

// LogicalTableNames returns the table names in caller-supplied order.
func (c *ImporterConfig) LogicalTableNames() []string {
	return c.logicalTableNames
}

// TableSchemaMapper returns the schema mapping for the tables.
func (c *ImporterConfig) TableSchemaMapper() *TableSchemaMapper {
	return c.mapper
}
