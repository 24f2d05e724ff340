// ABOUTME: CLI flag definitions using spf13/cobra persistent flags
// ABOUTME: Supports --config, --verbose, --log-file, --engine, --protocol, --prefs

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/pdfview-go/internal/config"
)

type cliArgs struct {
	config   string
	verbose  bool
	logFile  string
	engine   string
	protocol string
	prefs    string
}

func bindFlags(cmd *cobra.Command, args *cliArgs) {
	f := cmd.PersistentFlags()
	f.StringVar(&args.config, "config", config.ConfigFile(), "config file path")
	f.BoolVarP(&args.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&args.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&args.engine, "engine", "", "document engine: auto, poppler or images")
	f.StringVar(&args.protocol, "protocol", "auto", "image protocol: auto, kitty, iterm2 or halfblock")
	f.StringVar(&args.prefs, "prefs", "", "preference backend: sqlite, file or memory")
}

// overrides applies flag values on top of the loaded configuration.
func (a cliArgs) overrides(cfg *config.Config, document []string) {
	if len(document) > 0 {
		cfg.Document = document[0]
	}
	if a.engine != "" {
		cfg.Engine = a.engine
	}
	if a.prefs != "" {
		cfg.Prefs.Backend = a.prefs
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
}
