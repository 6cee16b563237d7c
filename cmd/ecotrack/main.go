// Command ecotrack is the personal carbon footprint tracker CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rgreen/ecotrack/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// A local .env can supply ECOTRACK_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
