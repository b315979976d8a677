package recorder

import (
	"sync"
	"time"
)

// Recorder notes start instants keyed by label and reports elapsed time.
// Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	starts map[string]time.Time
}

func New() *Recorder {
	return &Recorder{starts: make(map[string]time.Time)}
}

// Record notes the current instant for the label, replacing any earlier one.
func (r *Recorder) Record(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts[label] = time.Now()
}

// ElapsedAndClean returns the time elapsed since the label was recorded and
// forgets the label. A label that was never recorded yields zero.
func (r *Recorder) ElapsedAndClean(label string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, ok := r.starts[label]
	if !ok {
		return 0
	}
	delete(r.starts, label)
	return time.Since(start)
}
