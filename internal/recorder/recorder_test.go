package recorder_test

import (
	"testing"
	"time"

	"db-preflight/internal/recorder"
)

func TestElapsedAndCleanWithRecorded(t *testing.T) {
	r := recorder.New()
	r.Record("probe")
	time.Sleep(5 * time.Millisecond)

	if got := r.ElapsedAndClean("probe"); got < 5*time.Millisecond {
		t.Errorf("expected at least 5ms elapsed, got %v", got)
	}
	if got := r.ElapsedAndClean("probe"); got != 0 {
		t.Errorf("label should be forgotten after read, got %v", got)
	}
}

func TestElapsedAndCleanWithoutRecorded(t *testing.T) {
	if got := recorder.New().ElapsedAndClean("probe"); got != 0 {
		t.Errorf("unrecorded label should yield zero, got %v", got)
	}
}
