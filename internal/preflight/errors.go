package preflight

import "fmt"

// InvalidConnectionError reports a data source that could not be reached or
// used: connection acquisition failures and SQL failures during a probe both
// land here. The underlying cause is carried and exposed via Unwrap.
type InvalidConnectionError struct {
	Cause error
}

func (e *InvalidConnectionError) Error() string {
	return fmt.Sprintf("data source connection is invalid: %v", e.Cause)
}

func (e *InvalidConnectionError) Unwrap() error {
	return e.Cause
}

// TargetTableNotEmptyError reports a target table that must start empty but
// already contains at least one row. Never conflated with connection
// failures: a probe that errors yields InvalidConnectionError instead.
type TargetTableNotEmptyError struct {
	Table string
}

func (e *TargetTableNotEmptyError) Error() string {
	return fmt.Sprintf("target table %q is not empty", e.Table)
}
