package mouse

import (
	"errors"
	"fmt"

	"github.com/Alia5/synthmouse/internal/log"
)

// ErrUnsupportedPlatform is returned by the platform injector on hosts without
// a synthetic input facility.
var ErrUnsupportedPlatform = errors.New("mouse injection not supported on this platform")

// Injector submits exactly one synthetic mouse event per call.
type Injector interface {
	Inject(ev Event) error
}

// InjectorFunc adapts a function to Injector.
type InjectorFunc func(ev Event) error

func (f InjectorFunc) Inject(ev Event) error { return f(ev) }

// RawInjector writes each event descriptor to a RawLogger and then forwards the
// event to next. With a nil next nothing reaches the host (dry run).
type RawInjector struct {
	raw  log.RawLogger
	next Injector
}

// NewRawInjector returns a RawInjector. raw may be nil.
func NewRawInjector(raw log.RawLogger, next Injector) *RawInjector {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &RawInjector{raw: raw, next: next}
}

func (r *RawInjector) Inject(ev Event) error {
	data, err := ev.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal event descriptor: %w", err)
	}
	r.raw.Log(data)
	if r.next == nil {
		return nil
	}
	return r.next.Inject(ev)
}
