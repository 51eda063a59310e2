// Package config handles the parsing and validation of the motd-query
// configuration from command-line arguments and environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mcpetools/motd/internal/logger"
	"github.com/mcpetools/motd/internal/vars"
)

// Config represents the complete application flags configuration.
type Config struct {
	Query   Query         `group:"Query Options" env-namespace:"MOTD"`
	History History       `group:"History Options" namespace:"db" env-namespace:"MOTD_DB"`
	Logger  logger.Config `group:"Logger Options" namespace:"log" env-namespace:"MOTD_LOG"`

	Version bool `short:"v" long:"version" description:"Print version and build info"`

	Args struct {
		Addresses []string `positional-arg-name:"address" description:"Server addresses to query (host or host:port, port defaults to 19132)"`
	} `positional-args:"true"`
}

// Query holds options for the ping exchange itself.
type Query struct {
	Timeout time.Duration `short:"t" long:"timeout" env:"TIMEOUT" description:"Time to wait for a pong per server" default:"5s"`
	Rate    float64       `short:"r" long:"rate" env:"RATE" description:"Maximum queries started per second" default:"8"`
	JSON    bool          `short:"j" long:"json" env:"JSON" description:"Print one JSON object per server instead of text"`
}

// History holds options for the SQLite query history.
type History struct {
	Path   string `short:"d" long:"path" env:"PATH" description:"Path to SQLite history database (history disabled when empty)"`
	Recent int    `long:"recent" env:"RECENT" description:"Print the N most recently seen servers from the history and exit"`
}

// Parse reads the configuration from flags and environment variables.
// It terminates the application if the configuration is invalid or if the
// help flag is invoked.
func Parse() *Config {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}

	if cfg.Version {
		vars.Print()
		os.Exit(0)
	}

	if cfg.History.Recent > 0 && cfg.History.Path == "" {
		fmt.Fprintln(os.Stderr, "Flag `--db-recent' requires a history database path (`-d, --db-path' or `MOTD_DB_PATH`)!")
		os.Exit(1)
	}

	if len(cfg.Args.Addresses) == 0 && cfg.History.Recent == 0 {
		fmt.Fprintln(os.Stderr, "At least one server address is required!")
		os.Exit(1)
	}

	return &cfg
}
