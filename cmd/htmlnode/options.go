package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	// jsonErrors prints errors as JSON lines, set when logs are JSON.
	jsonErrors bool
}

func (g *globalOptions) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "Path to htmlnode.json (default: nearest in cwd or parents)")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	flags.StringVar(&g.logFormat, "log-format", "", "Log format: text or json (default from config)")
	flags.BoolVar(&g.noColor, "no-color", false, "Disable colored output")
}

// loadConfig resolves the configuration and applies flag overrides.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	g.jsonErrors = cfg.Log.Format == config.LogFormatJSON
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printError writes err to w in the format matching the logs.
func (g *globalOptions) printError(w io.Writer, err error) {
	if g.jsonErrors {
		errors.PrintErrorJSON(w, err)
		return
	}
	errors.PrintError(w, err)
}

// newLogger builds the slog logger described by cfg, writing to w.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
