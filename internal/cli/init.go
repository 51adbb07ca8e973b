package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/infra/fsworkspace"
	"github.com/team9044/launchband/internal/infra/workspacefinder"
	"github.com/team9044/launchband/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a launchband workspace (config, profiles, plots)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkspaceRoot(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer(), workspacefinder.NewFinder())
			root, err = uc.Execute(cmd.Context(), root, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
