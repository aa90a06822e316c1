package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/synthmouse/device/mouse"
	"github.com/Alia5/synthmouse/internal/log"
)

// Inject holds the flags shared by the press, release and click commands.
type Inject struct {
	Button mouse.MouseButton `arg:"" help:"Button to use: left, right, middle, side, extra or a double-* variant"`
	Delay  time.Duration     `help:"Wait this long before injecting" default:"0s" env:"SYNTHMOUSE_DELAY"`
	DryRun bool              `help:"Log the event descriptor instead of injecting it" default:"false" env:"SYNTHMOUSE_DRY_RUN"`
}

// Press injects one event with both of the button's flags.
type Press struct {
	Inject `embed:""`
}

// Release injects one release event.
type Release struct {
	Inject `embed:""`
}

// Click injects one click event.
type Click struct {
	Inject `embed:""`
}

// Run is called by Kong when the press command is executed.
func (p *Press) Run(logger *slog.Logger, rawLogger log.RawLogger, platform mouse.Injector) error {
	return runWithSignals(func(ctx context.Context) error {
		return p.Execute(ctx, mouse.OpPress, logger, rawLogger, platform)
	})
}

// Run is called by Kong when the release command is executed.
func (r *Release) Run(logger *slog.Logger, rawLogger log.RawLogger, platform mouse.Injector) error {
	return runWithSignals(func(ctx context.Context) error {
		return r.Execute(ctx, mouse.OpRelease, logger, rawLogger, platform)
	})
}

// Run is called by Kong when the click command is executed.
func (c *Click) Run(logger *slog.Logger, rawLogger log.RawLogger, platform mouse.Injector) error {
	return runWithSignals(func(ctx context.Context) error {
		return c.Execute(ctx, mouse.OpClick, logger, rawLogger, platform)
	})
}

func runWithSignals(fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx)
}

// Execute waits for Delay, then injects a single op event for Button through
// platform. In dry-run mode platform is never called. Every descriptor is
// written to rawLogger.
func (in *Inject) Execute(ctx context.Context, op mouse.Op, logger *slog.Logger, rawLogger log.RawLogger, platform mouse.Injector) error {
	if in.Delay > 0 {
		logger.Info("Waiting before injecting", "op", op, "button", in.Button, "delay", in.Delay)
		t := time.NewTimer(in.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	next := platform
	if in.DryRun {
		next = nil
	}
	m := mouse.New(mouse.NewRawInjector(rawLogger, next), logger)
	if err := m.Inject(op, in.Button); err != nil {
		return err
	}

	if in.DryRun {
		ev, _ := mouse.EventFor(op, in.Button)
		logger.Info("Dry run, event not injected", "op", op, "button", in.Button, "event", ev.String())
		return nil
	}
	logger.Info("Injected mouse event", "op", op, "button", in.Button)
	return nil
}
