package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd, g := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		g.printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, *globalOptions) {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "htmlnode",
		Short: "Render node tree documents to HTML",
		Long: `htmlnode renders tree documents into HTML fragments.

A tree document is YAML or JSON describing nested nodes:

  tag: div
  props: {class: c}
  children:
    - {tag: p, value: A}
    - {tag: img, props: {src: t.png}}
    - plain text

Nodes with children render as <tag>children</tag>, nodes with a value as
<tag>value</tag>, and nodes with only a tag as an opening tag. Text and
attribute values are written verbatim.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.jsonErrors = g.logFormat == config.LogFormatJSON
			if g.noColor {
				colorEnabled = false
				errors.DisableColors()
			}
		},
	}

	g.bind(rootCmd)

	rootCmd.AddCommand(
		renderCmd(g),
		checkCmd(g),
		initCmd(),
		versionCmd(),
	)

	return rootCmd, g
}

// colorEnabled is cleared by --no-color.
var colorEnabled = true

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + "\033[0m"
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", paint("\033[32m", "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", paint("\033[31m", "✗"), fmt.Sprintf(format, args...))
}
