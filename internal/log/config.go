package log

// Config is the logging flag group shared by every command.
type Config struct {
	Level   string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"SYNTHMOUSE_LOG_LEVEL"`
	Format  string `help:"Log output format" default:"text" enum:"text,json" env:"SYNTHMOUSE_LOG_FORMAT"`
	File    string `help:"Also write logs to this file" env:"SYNTHMOUSE_LOG_FILE"`
	RawFile string `help:"Write hex dumps of injected INPUT descriptors to this file" env:"SYNTHMOUSE_LOG_RAW_FILE"`
}
