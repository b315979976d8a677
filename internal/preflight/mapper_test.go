package preflight_test

import (
	"testing"

	"db-preflight/internal/preflight"
)

func TestTableSchemaMapper(t *testing.T) {
	mapper := preflight.NewTableSchemaMapper(map[string]string{
		"orders": "sales",
		"items":  "",
	})

	if got := mapper.SchemaName("orders"); got != "sales" {
		t.Errorf("expected schema %q, got %q", "sales", got)
	}
	if got := mapper.SchemaName("items"); got != "" {
		t.Errorf("expected empty schema, got %q", got)
	}
	if got := mapper.SchemaName("unmapped"); got != "" {
		t.Errorf("expected empty schema for unmapped table, got %q", got)
	}
}

func TestImporterConfigPreservesOrder(t *testing.T) {
	names := []string{"c", "a", "b"}
	config := preflight.NewImporterConfig(names, preflight.NewTableSchemaMapper(nil))

	got := config.LogicalTableNames()
	if len(got) != len(names) {
		t.Fatalf("expected %d names, got %d", len(names), len(got))
	}
	for i := range names {
		if got[i] != names[i] {
			t.Errorf("position %d: expected %q, got %q", i, names[i], got[i])
		}
	}

	// Mutating the caller's slice must not affect the config.
	names[0] = "mutated"
	if config.LogicalTableNames()[0] != "c" {
		t.Error("importer config should hold its own copy of the table names")
	}
}
