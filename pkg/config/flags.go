package config

import (
	"flag"
	"io"
)

// ParseFlags loads .env + environment via FromEnv and applies the flags
// shared by both commands. name is the command name shown in usage output.
func ParseFlags(name string, args []string, stderr io.Writer) (Config, error) {
	cfg := FromEnv()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", cfg.Verbose, "Verbose request logging to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Verbose = *verbose
	return Normalize(cfg), nil
}
