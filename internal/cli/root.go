package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/infra/logger"
	"github.com/team9044/launchband/internal/infra/workspacefinder"
)

// closeLog is set once the file logger is up; Execute runs it on the way out.
var closeLog func() error

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if closeLog != nil {
		_ = closeLog()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "launchband",
		Short:        "Feasible launch-speed band vs standoff distance for a fixed-angle shooter",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			logRoot := wd
			if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, err := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if err == nil {
				closeLog = cleanup
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .launchband/logs/launchband.log")

	cmd.AddCommand(scanCmd())
	cmd.AddCommand(exploreCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(profileCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func debugEnabled(cmd *cobra.Command) bool {
	f := cmd.Flag("debug")
	return f != nil && f.Value.String() == "true"
}
