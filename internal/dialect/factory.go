package dialect

// GetDialect returns the appropriate Dialect implementation based on driver name.
func GetDialect(driver string) Dialect {
	switch driver {
	case "postgres":
		return &PostgresDialect{}
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "oracle":
		return &OracleDialect{}
	case "sqlite", "sqlite3":
		return &SQLiteDialect{}
	default: // mysql
		return &MysqlDialect{}
	}
}

// GetChecker returns the Checker registered for the driver, or nil when the
// dialect carries no extra precondition rules. A nil result is the normal,
// expected case: it disables the privilege and variable checks for the
// engine instance, it is never an error.
func GetChecker(driver string) Checker {
	switch driver {
	case "mysql":
		return &MysqlChecker{}
	case "postgres":
		return &PostgresChecker{}
	default:
		return nil
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
var _ Dialect = (*SQLiteDialect)(nil)

var _ Checker = (*MysqlChecker)(nil)
var _ Checker = (*PostgresChecker)(nil)
