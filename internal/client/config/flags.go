package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   server base URL (e.g., "http://localhost:8080")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
