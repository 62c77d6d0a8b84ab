package config

import (
	"flag"
	"os"

	"github.com/akimenko/userdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the user-management API
//	-d string   path of the local state database
//
// Args are filtered to the flags handled here so other components can
// define their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the user-management API")
	fs.StringVar(&cfg.StateFile, "d", cfg.StateFile, "path of the local state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
