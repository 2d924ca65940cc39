package main

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/document"
	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/internal/pipeline"
)

func checkCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate tree documents without writing output",
		Long: `Decode and render each tree document, reporting node counts and depth.

Every file is checked even when an earlier one fails. Reads stdin when no
files are given.

Examples:
  htmlnode check page.yaml
  htmlnode check pages/*.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{document.StdinName}
			}

			runner := pipeline.New(pipeline.WithLogger(newLogger(cfg, cmd.ErrOrStderr())))
			return runCheck(commandContext(cmd), cmd, g, runner, args)
		},
	}

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, g *globalOptions, runner *pipeline.Runner, sources []string) error {
	failed := 0
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := checkOne(ctx, cmd, runner, source)
		if err != nil {
			failed++
			errorMsg(cmd.OutOrStdout(), "%s", source)
			info(cmd.OutOrStdout(), "%s", compact(err))
			g.printError(cmd.ErrOrStderr(), err)
			continue
		}
		success(cmd.OutOrStdout(), "%s", source)
		info(cmd.OutOrStdout(), "%d nodes, depth %d, %d bytes", res.Nodes, res.Depth, len(res.HTML))
	}

	if failed > 0 {
		return errors.Newf(errors.CategoryCLI, "%d of %d documents failed", failed, len(sources))
	}
	return nil
}

func checkOne(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, source string) (*pipeline.Result, error) {
	in, closeIn, err := openSource(cmd, source)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	res, err := runner.Check(ctx, source, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return res, nil
}

// compact returns the one-line form of err.
func compact(err error) string {
	var ne *errors.NodeError
	if stderrors.As(err, &ne) {
		return ne.FormatCompact()
	}
	return err.Error()
}
