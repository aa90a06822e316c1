// Package config defines the synthmouse command line.
package config

import (
	"github.com/Alia5/synthmouse/internal/cmd"
	"github.com/Alia5/synthmouse/internal/log"
)

// CLI is the root kong grammar. Flags can also be set from JSON, YAML or TOML
// config files; flags and environment variables take precedence.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a config file (json, yaml or toml)" type:"path" env:"SYNTHMOUSE_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Press   cmd.Press         `cmd:"" help:"Inject one event carrying both of the button's flags"`
	Release cmd.Release       `cmd:"" help:"Inject one release event"`
	Click   cmd.Click         `cmd:"" help:"Inject one click event"`
	Buttons cmd.Buttons       `cmd:"" help:"List buttons and the events each command injects"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
