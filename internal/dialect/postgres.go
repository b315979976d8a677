package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

type PostgresDialect struct{}

func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return QuoteAnsi(name)
}

func (d *PostgresDialect) QualifyTable(schema, table string) string {
	return QualifyTable(d.DefaultSchema(schema), table, d.QuoteIdentifier)
}

func (d *PostgresDialect) CheckEmptyQuery(schema, table string) string {
	return fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", d.QualifyTable(schema, table))
}

func (d *PostgresDialect) DefaultSchema(input string) string {
	if input == "" {
		return "public"
	}
	return input
}

// PostgresChecker verifies the logical-decoding preconditions an incremental
// migration needs from PostgreSQL.
type PostgresChecker struct{}

func (c *PostgresChecker) CheckPrivilege(ctx context.Context, db *sql.DB) error {
	var rolReplication, rolSuper bool
	row := db.QueryRowContext(ctx, "SELECT rolreplication, rolsuper FROM pg_catalog.pg_roles WHERE rolname = current_user")
	if err := row.Scan(&rolReplication, &rolSuper); err != nil {
		return fmt.Errorf("failed to query role attributes: %w", err)
	}
	return checkReplicationRole(rolReplication, rolSuper)
}

func checkReplicationRole(rolReplication, rolSuper bool) error {
	if !rolReplication && !rolSuper {
		return &PrivilegeError{Driver: "postgres", Missing: []string{"REPLICATION"}}
	}
	return nil
}

func (c *PostgresChecker) CheckVariable(ctx context.Context, db *sql.DB) error {
	var walLevel string
	if err := db.QueryRowContext(ctx, "SHOW wal_level").Scan(&walLevel); err != nil {
		return fmt.Errorf("failed to query wal_level: %w", err)
	}
	if err := checkWalLevel(walLevel); err != nil {
		return err
	}

	var maxSlots string
	if err := db.QueryRowContext(ctx, "SHOW max_replication_slots").Scan(&maxSlots); err != nil {
		return fmt.Errorf("failed to query max_replication_slots: %w", err)
	}
	return checkMaxReplicationSlots(maxSlots)
}

func checkWalLevel(walLevel string) error {
	if walLevel != "logical" {
		return &VariableError{Driver: "postgres", Name: "wal_level", Expected: "logical", Actual: walLevel}
	}
	return nil
}

func checkMaxReplicationSlots(value string) error {
	slots, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("failed to parse max_replication_slots %q: %w", value, err)
	}
	if slots < 1 {
		return &VariableError{Driver: "postgres", Name: "max_replication_slots", Expected: ">= 1", Actual: value}
	}
	return nil
}
