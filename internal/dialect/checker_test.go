package dialect

import (
	"errors"
	"strings"
	"testing"
)

func TestMissingPrivileges(t *testing.T) {
	cases := []struct {
		name   string
		grants []string
		want   []string
	}{
		{
			name:   "all privileges shortcut",
			grants: []string{"GRANT ALL PRIVILEGES ON *.* TO 'repl'@'%'"},
			want:   nil,
		},
		{
			name: "exact required grants",
			grants: []string{
				"GRANT SELECT ON *.* TO 'repl'@'%'",
				"GRANT REPLICATION SLAVE, REPLICATION CLIENT ON *.* TO 'repl'@'%'",
			},
			want: nil,
		},
		{
			name:   "database-level grants do not count",
			grants: []string{"GRANT ALL PRIVILEGES ON `sales`.* TO 'app'@'%'"},
			want:   []string{"REPLICATION CLIENT", "REPLICATION SLAVE", "SELECT"},
		},
		{
			name:   "partial grants report the rest sorted",
			grants: []string{"GRANT SELECT, REPLICATION CLIENT ON *.* TO 'app'@'%'"},
			want:   []string{"REPLICATION SLAVE"},
		},
		{
			name:   "no grants at all",
			grants: nil,
			want:   []string{"REPLICATION CLIENT", "REPLICATION SLAVE", "SELECT"},
		},
		{
			name:   "case insensitive",
			grants: []string{"grant replication slave, replication client, select on *.* to 'repl'@'%'"},
			want:   nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := missingPrivileges(c.grants)
			if len(got) != len(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Errorf("position %d: got %q, want %q", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestCheckBinlogVariables(t *testing.T) {
	cases := []struct {
		name     string
		logBin   string
		format   string
		rowImage string
		wantVar  string // empty means pass
	}{
		{"numeric log_bin", "1", "ROW", "FULL", ""},
		{"textual log_bin", "ON", "row", "full", ""},
		{"binlog disabled", "0", "ROW", "FULL", "log_bin"},
		{"binlog off", "OFF", "ROW", "FULL", "log_bin"},
		{"statement format", "ON", "STATEMENT", "FULL", "binlog_format"},
		{"minimal row image", "ON", "ROW", "MINIMAL", "binlog_row_image"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkBinlogVariables(c.logBin, c.format, c.rowImage)
			if c.wantVar == "" {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			var varErr *VariableError
			if !errors.As(err, &varErr) {
				t.Fatalf("expected VariableError, got %v", err)
			}
			if varErr.Name != c.wantVar {
				t.Errorf("expected variable %q reported, got %q", c.wantVar, varErr.Name)
			}
		})
	}
}

func TestCheckReplicationRole(t *testing.T) {
	if err := checkReplicationRole(true, false); err != nil {
		t.Errorf("replication role should pass, got %v", err)
	}
	if err := checkReplicationRole(false, true); err != nil {
		t.Errorf("superuser should pass, got %v", err)
	}

	err := checkReplicationRole(false, false)
	var privErr *PrivilegeError
	if !errors.As(err, &privErr) {
		t.Fatalf("expected PrivilegeError, got %v", err)
	}
	if len(privErr.Missing) != 1 || privErr.Missing[0] != "REPLICATION" {
		t.Errorf("expected REPLICATION reported missing, got %v", privErr.Missing)
	}
}

func TestCheckWalLevel(t *testing.T) {
	if err := checkWalLevel("logical"); err != nil {
		t.Errorf("logical wal_level should pass, got %v", err)
	}

	err := checkWalLevel("replica")
	var varErr *VariableError
	if !errors.As(err, &varErr) {
		t.Fatalf("expected VariableError, got %v", err)
	}
	if varErr.Name != "wal_level" || varErr.Expected != "logical" || varErr.Actual != "replica" {
		t.Errorf("unexpected detail: %v", varErr)
	}
}

func TestCheckMaxReplicationSlots(t *testing.T) {
	if err := checkMaxReplicationSlots("10"); err != nil {
		t.Errorf("10 slots should pass, got %v", err)
	}

	err := checkMaxReplicationSlots("0")
	var varErr *VariableError
	if !errors.As(err, &varErr) {
		t.Fatalf("expected VariableError, got %v", err)
	}
	if varErr.Name != "max_replication_slots" {
		t.Errorf("expected max_replication_slots reported, got %q", varErr.Name)
	}

	err = checkMaxReplicationSlots("not-a-number")
	if err == nil {
		t.Fatal("expected a parse failure")
	}
	var parseErr *VariableError
	if errors.As(err, &parseErr) {
		t.Errorf("parse failure should not be a VariableError, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse failure detail, got %v", err)
	}
}
