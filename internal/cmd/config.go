package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Alia5/synthmouse/internal/configpaths"
	"github.com/Alia5/synthmouse/internal/log"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"press,release,click"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to <command>.<format> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

var templateCommands = map[string]reflect.Type{
	"press":   reflect.TypeOf(Press{}),
	"release": reflect.TypeOf(Release{}),
	"click":   reflect.TypeOf(Click{}),
}

// Run generates a configuration template by reflecting over the command
// struct and its kong tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	data, err := Template(c.Command, format)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// Template renders the default configuration of command in format.
func Template(command, format string) ([]byte, error) {
	t, ok := templateCommands[command]
	if !ok {
		return nil, fmt.Errorf("unknown command %q; expected press, release or click", command)
	}

	switch normalizeFormat(format) {
	case "json", "yaml":
		root := buildMapFromStruct(t)
		root["log"] = buildMapFromStruct(reflect.TypeOf(log.Config{}))
		if normalizeFormat(format) == "json" {
			return json.MarshalIndent(root, "", "  ")
		}
		return yaml.Marshal(root)
	case "toml":
		return tomlTemplate(t)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// tomlTemplate renders flat keys because kong-toml resolves flags by their
// full name only: "dry-run" and the quoted "log.level", never nested tables.
func tomlTemplate(t reflect.Type) ([]byte, error) {
	flat := map[string]any{}
	buildFlatMap(flat, t, "")
	buildFlatMap(flat, reflect.TypeOf(log.Config{}), "log.")

	tree, err := toml.TreeFromMap(map[string]any{})
	if err != nil {
		return nil, err
	}
	for k, v := range flat {
		// SetPath keeps dotted names as a single key
		tree.SetPath([]string{k}, v)
	}
	return tree.Marshal()
}

// configKey converts a Go field name into a config key, joining words with
// sep: '_' for the JSON/YAML resolvers ("DryRun" -> "dry_run"), '-' for the
// kong flag name ("DryRun" -> "dry-run").
func configKey(field string, sep byte) string {
	var sb strings.Builder
	r := []rune(field)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				sb.WriteByte(sep)
			}
			c = unicode.ToLower(c)
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		// positional arguments are not resolved from config files
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok || f.Anonymous {
			prefix := strings.TrimSuffix(f.Tag.Get("prefix"), ".")
			sub := buildMapFromStruct(f.Type)
			if prefix != "" {
				out[prefix] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		val := defaultValueForField(f.Type, f.Tag.Get("default"))
		if val != nil {
			out[configKey(f.Name, '_')] = val
		}
	}
	return out
}

// buildFlatMap adds the kong flag names of t's fields to out, each carrying
// prefix ("log." + "raw-file").
func buildFlatMap(out map[string]any, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok || f.Anonymous {
			buildFlatMap(out, f.Type, prefix+f.Tag.Get("prefix"))
			continue
		}
		val := defaultValueForField(f.Type, f.Tag.Get("default"))
		if val != nil {
			out[prefix+configKey(f.Name, '-')] = val
		}
	}
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Duration(0)) {
		if def != "" {
			return def
		}
		return "0s"
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
