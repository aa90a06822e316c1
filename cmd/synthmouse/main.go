package main

import (
	"os"

	"github.com/Alia5/synthmouse/device/mouse"
	"github.com/Alia5/synthmouse/internal/config"
	"github.com/Alia5/synthmouse/internal/configpaths"
	"github.com/Alia5/synthmouse/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(configpaths.UserConfigPath(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("synthmouse"),
		kong.Description("Simulate mouse button events through the OS input queue"),
		kong.UsageOnError(),
		// Flags and env override config values; earlier files win.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, rawLogger, closers, err := log.Setup(cli.Log, os.Stdout, os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	config.Bind(ctx, logger, rawLogger, mouse.PlatformInjector())
	err = ctx.Run()
	for _, c := range closers {
		_ = c.Close()
	}
	ctx.FatalIfErrorf(err)
}
