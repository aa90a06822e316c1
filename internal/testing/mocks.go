package testing

import (
	"sync"
	"testing"

	"github.com/Alia5/synthmouse/device/mouse"
)

// RecordingInjector is a mouse.Injector that records every event instead of
// touching the host input queue.
type RecordingInjector struct {
	mu    sync.Mutex
	calls []mouse.Event
	err   error
}

// Inject records ev and returns the configured error.
func (r *RecordingInjector) Inject(ev mouse.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, ev)
	return r.err
}

// Calls returns a copy of the recorded events in injection order.
func (r *RecordingInjector) Calls() []mouse.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mouse.Event(nil), r.calls...)
}

// CreateRecordingInjector returns a RecordingInjector whose Inject calls
// return err.
func CreateRecordingInjector(t *testing.T, err error) *RecordingInjector {
	t.Helper()
	return &RecordingInjector{err: err}
}
