package preflight

import (
	"context"
	"database/sql"

	"db-preflight/internal/dialect"
)

// CheckEngine runs the pre-flight checks for one migration job. The dialect
// and its optional capability are fixed at construction; the engine holds no
// other state, so it may be used concurrently as long as each call supplies
// its own data sources.
//
// Every check is fail-fast: the first violated precondition aborts the call
// and no later data source or table is contacted. All checks are read-only.
type CheckEngine struct {
	dialect dialect.Dialect
	checker dialect.Checker // nil when the dialect has no extra rules
}

// NewCheckEngine builds an engine for the given driver name.
func NewCheckEngine(driver string) *CheckEngine {
	return &CheckEngine{
		dialect: dialect.GetDialect(driver),
		checker: dialect.GetChecker(driver),
	}
}

// HasCapability reports whether a dialect capability is registered for this
// engine's driver. Without one, CheckPrivilege and CheckVariable are no-ops.
func (e *CheckEngine) HasCapability() bool {
	return e.checker != nil
}

// CheckSourceDataSource validates the source side: connectivity, then
// privileges, then server variables.
func (e *CheckEngine) CheckSourceDataSource(ctx context.Context, source *sql.DB) error {
	dataSources := []*sql.DB{source}
	if err := e.CheckConnection(ctx, dataSources); err != nil {
		return err
	}
	if err := e.CheckPrivilege(ctx, dataSources); err != nil {
		return err
	}
	return e.CheckVariable(ctx, dataSources)
}

// CheckTargetDataSource validates the target side: connectivity, then
// emptiness of every table the importer will write to.
func (e *CheckEngine) CheckTargetDataSource(ctx context.Context, target *sql.DB, importerConfig *ImporterConfig) error {
	dataSources := []*sql.DB{target}
	if err := e.CheckConnection(ctx, dataSources); err != nil {
		return err
	}
	return e.CheckTargetTable(ctx, dataSources, importerConfig.TableSchemaMapper(), importerConfig.LogicalTableNames())
}

// CheckConnection acquires and immediately releases a connection from each
// data source. The first acquisition failure is returned as an
// InvalidConnectionError wrapping the cause.
func (e *CheckEngine) CheckConnection(ctx context.Context, dataSources []*sql.DB) error {
	for _, each := range dataSources {
		conn, err := each.Conn(ctx)
		if err != nil {
			return &InvalidConnectionError{Cause: err}
		}
		if err := conn.Close(); err != nil {
			return &InvalidConnectionError{Cause: err}
		}
	}
	return nil
}

// CheckTargetTable verifies that every logical table, in the order supplied,
// is empty on every data source. A non-empty table is reported as a
// TargetTableNotEmptyError naming that table; a connection or SQL failure
// during the probe is reported as an InvalidConnectionError instead.
func (e *CheckEngine) CheckTargetTable(ctx context.Context, dataSources []*sql.DB, mapper *TableSchemaMapper, logicalTableNames []string) error {
	for _, each := range dataSources {
		for _, tableName := range logicalTableNames {
			empty, err := e.checkEmpty(ctx, each, mapper.SchemaName(tableName), tableName)
			if err != nil {
				return &InvalidConnectionError{Cause: err}
			}
			if !empty {
				return &TargetTableNotEmptyError{Table: tableName}
			}
		}
	}
	return nil
}

// checkEmpty runs the dialect's existence probe. Only row existence is
// inspected; no column data is read. The rows handle is released before
// returning on every path.
func (e *CheckEngine) checkEmpty(ctx context.Context, db *sql.DB, schemaName, tableName string) (bool, error) {
	rows, err := db.QueryContext(ctx, e.dialect.CheckEmptyQuery(schemaName, tableName))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if rows.Next() {
		return false, nil
	}
	return true, rows.Err()
}

// CheckPrivilege delegates to the dialect capability per data source, in
// order, stopping at the first failure. No-op when no capability is
// registered. Capability failures propagate unwrapped: only the dialect
// knows the precise diagnosis.
func (e *CheckEngine) CheckPrivilege(ctx context.Context, dataSources []*sql.DB) error {
	if e.checker == nil {
		return nil
	}
	for _, each := range dataSources {
		if err := e.checker.CheckPrivilege(ctx, each); err != nil {
			return err
		}
	}
	return nil
}

// CheckVariable delegates to the dialect capability per data source, in
// order, stopping at the first failure. No-op when no capability is
// registered.
func (e *CheckEngine) CheckVariable(ctx context.Context, dataSources []*sql.DB) error {
	if e.checker == nil {
		return nil
	}
	for _, each := range dataSources {
		if err := e.checker.CheckVariable(ctx, each); err != nil {
			return err
		}
	}
	return nil
}
