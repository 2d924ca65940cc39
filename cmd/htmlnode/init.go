package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default htmlnode.json",
		Long: `Write htmlnode.json with default settings.

Examples:
  htmlnode init
  htmlnode init --dir site --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Exists(dir) && !force {
				return errors.New(errors.CodeConfigInvalid).
					WithDetail(config.ConfigFileName + " already exists in " + dir + ".").
					WithSuggestion("Pass --force to overwrite it")
			}

			path := filepath.Join(dir, config.ConfigFileName)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write htmlnode.json into")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
