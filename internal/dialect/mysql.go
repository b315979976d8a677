package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MysqlDialect) QualifyTable(schema, table string) string {
	// Empty schema targets the connection's current database.
	return QualifyTable(schema, table, d.QuoteIdentifier)
}

func (d *MysqlDialect) CheckEmptyQuery(schema, table string) string {
	return fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", d.QualifyTable(schema, table))
}

func (d *MysqlDialect) DefaultSchema(input string) string {
	return input
}

// MysqlChecker verifies the replication preconditions an incremental
// migration needs from MySQL: replication grants for the executing user and
// a row-based binlog configuration.
type MysqlChecker struct{}

// Privileges required on *.* for binlog-based incremental capture.
var mysqlRequiredPrivileges = []string{"REPLICATION SLAVE", "REPLICATION CLIENT", "SELECT"}

func (c *MysqlChecker) CheckPrivilege(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, "SHOW GRANTS FOR CURRENT_USER()")
	if err != nil {
		return fmt.Errorf("failed to query grants: %w", err)
	}
	defer rows.Close()

	var grants []string
	for rows.Next() {
		var grant string
		if err := rows.Scan(&grant); err != nil {
			return fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, grant)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read grants: %w", err)
	}

	if missing := missingPrivileges(grants); len(missing) > 0 {
		return &PrivilegeError{Driver: "mysql", Missing: missing}
	}
	return nil
}

// missingPrivileges returns the required privileges no grant covers, sorted.
// Only global grants (ON *.*) satisfy replication privileges; ALL PRIVILEGES
// covers everything.
func missingPrivileges(grants []string) []string {
	missing := make(map[string]bool, len(mysqlRequiredPrivileges))
	for _, p := range mysqlRequiredPrivileges {
		missing[p] = true
	}
	for _, grant := range grants {
		upper := strings.ToUpper(grant)
		if !strings.Contains(upper, " ON *.*") {
			continue
		}
		if strings.Contains(upper, "ALL PRIVILEGES") {
			return nil
		}
		for p := range missing {
			if strings.Contains(upper, p) {
				delete(missing, p)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for p := range missing {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

func (c *MysqlChecker) CheckVariable(ctx context.Context, db *sql.DB) error {
	var logBin, binlogFormat, binlogRowImage string
	row := db.QueryRowContext(ctx, "SELECT @@log_bin, @@binlog_format, @@binlog_row_image")
	if err := row.Scan(&logBin, &binlogFormat, &binlogRowImage); err != nil {
		return fmt.Errorf("failed to query binlog variables: %w", err)
	}
	return checkBinlogVariables(logBin, binlogFormat, binlogRowImage)
}

func checkBinlogVariables(logBin, binlogFormat, binlogRowImage string) error {
	// @@log_bin reports 1/0 on older servers and ON/OFF on newer ones.
	if logBin != "1" && !strings.EqualFold(logBin, "ON") {
		return &VariableError{Driver: "mysql", Name: "log_bin", Expected: "ON", Actual: logBin}
	}
	if !strings.EqualFold(binlogFormat, "ROW") {
		return &VariableError{Driver: "mysql", Name: "binlog_format", Expected: "ROW", Actual: binlogFormat}
	}
	if !strings.EqualFold(binlogRowImage, "FULL") {
		return &VariableError{Driver: "mysql", Name: "binlog_row_image", Expected: "FULL", Actual: binlogRowImage}
	}
	return nil
}
