package config

import (
	"log/slog"

	"github.com/Alia5/synthmouse/device/mouse"
	"github.com/Alia5/synthmouse/internal/log"

	"github.com/alecthomas/kong"
)

// Bind makes the values command Run methods ask for available to ctx.
func Bind(ctx *kong.Context, logger *slog.Logger, rawLogger log.RawLogger, platform mouse.Injector) {
	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	ctx.BindTo(platform, (*mouse.Injector)(nil))
}
