package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/document"
	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/internal/metrics"
	"github.com/vango-dev/htmlnode/internal/pipeline"
)

func renderCmd(g *globalOptions) *cobra.Command {
	var (
		output      string
		metricsFile string
		newline     bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree document to HTML",
		Long: `Render a tree document to HTML.

Reads the document from the given file, or from stdin when the file is
omitted or "-". Writes the HTML to stdout unless --output (or "output" in
htmlnode.json) names a file.

Examples:
  htmlnode render page.yaml
  htmlnode render page.json -o dist/index.html
  cat page.yaml | htmlnode render --newline
  htmlnode render page.yaml --metrics-file /var/lib/node_exporter/htmlnode.prom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			// Flag paths are relative to the working directory, config
			// paths to the config file.
			if cmd.Flags().Changed("output") {
				cfg.Output = absPath(output)
			}
			if cmd.Flags().Changed("metrics-file") {
				cfg.Metrics.File = absPath(metricsFile)
			}
			if cmd.Flags().Changed("newline") {
				cfg.TrailingNewline = newline
			}

			source := document.StdinName
			if len(args) == 1 {
				source = args[0]
			}
			return runRender(cmd, cfg, source)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after rendering")
	cmd.Flags().BoolVar(&newline, "newline", false, "Append a newline after the HTML")

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, source string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, closeIn, err := openSource(cmd, source)
	if err != nil {
		return err
	}
	defer closeIn()

	rec := metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))
	runner := pipeline.New(
		pipeline.WithLogger(newLogger(cfg, cmd.ErrOrStderr())),
		pipeline.WithMetrics(rec),
		pipeline.WithTrailingNewline(cfg.TrailingNewline),
	)

	outPath := cfg.OutputPath()
	var buf bytes.Buffer
	out := io.Writer(&buf)
	if outPath == "" || outPath == "-" {
		out = cmd.OutOrStdout()
	}

	_, renderErr := runner.Render(ctx, source, in, out)
	if renderErr == nil && out == &buf {
		renderErr = writeOutput(outPath, buf.Bytes())
	}

	if path := cfg.MetricsPath(); path != "" {
		if err := rec.WriteTextfile(path); err != nil && renderErr == nil {
			return err
		}
	}
	return renderErr
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openSource returns a reader for the named document; "-" is stdin.
func openSource(cmd *cobra.Command, source string) (io.Reader, func(), error) {
	if source == document.StdinName {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, errors.New(errors.CodeDocumentRead).
			WithDetail("Could not open " + source + ".").
			Wrap(err)
	}
	return f, func() { f.Close() }, nil
}

func absPath(p string) string {
	if p == "" || p == "-" {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.New(errors.CodeOutputWrite).Wrap(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeOutputWrite).Wrap(err)
	}
	return nil
}
