package mouse

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Mouse dispatches button operations to an Injector, one event per call.
type Mouse struct {
	inj    Injector
	logger *slog.Logger
}

// New returns a Mouse injecting through inj. A nil logger uses slog.Default
// at call time.
func New(inj Injector, logger *slog.Logger) *Mouse {
	return &Mouse{inj: inj, logger: logger}
}

func (m *Mouse) slogger() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return slog.Default()
}

// Inject builds the event for op and b and submits it. Unlike Press, Release
// and Click it reports failures to the caller.
func (m *Mouse) Inject(op Op, b MouseButton) error {
	ev, err := EventFor(op, b)
	if err != nil {
		return err
	}
	m.slogger().Debug("injecting mouse event", "op", op, "button", b, "event", ev)
	if err := m.inj.Inject(ev); err != nil {
		return fmt.Errorf("%s %s: %w", op, b, err)
	}
	return nil
}

// Press injects one event carrying both of b's flags.
func (m *Mouse) Press(b MouseButton) { m.fire(OpPress, b) }

// Release injects one event carrying UpFlagFor(b).
func (m *Mouse) Release(b MouseButton) { m.fire(OpRelease, b) }

// Click injects one event carrying DownFlagFor(b).
func (m *Mouse) Click(b MouseButton) { m.fire(OpClick, b) }

// fire is fire-and-forget: injection failures are logged, never returned.
func (m *Mouse) fire(op Op, b MouseButton) {
	if err := m.Inject(op, b); err != nil {
		m.slogger().Debug("mouse injection failed", "op", op, "button", b, "error", err)
	}
}

var defaultMouse atomic.Pointer[Mouse]

// Default returns the Mouse used by the package-level operations. Unless
// replaced with SetDefault it injects through PlatformInjector.
func Default() *Mouse {
	if m := defaultMouse.Load(); m != nil {
		return m
	}
	defaultMouse.CompareAndSwap(nil, New(PlatformInjector(), nil))
	return defaultMouse.Load()
}

// SetDefault replaces the Mouse used by the package-level operations and
// returns the previous one. Passing nil restores the platform default.
func SetDefault(m *Mouse) *Mouse {
	return defaultMouse.Swap(m)
}

// Press injects the combined press event for b.
func Press(b MouseButton) { Default().Press(b) }

// Release injects the release event for b.
func Release(b MouseButton) { Default().Release(b) }

// Click injects the click event for b.
func Click(b MouseButton) { Default().Click(b) }
