package cli

import (
	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/infra/logger"
	"github.com/team9044/launchband/internal/ui/tui"
	"github.com/team9044/launchband/internal/usecase"
)

func exploreCmd() *cobra.Command {
	var lf launchFlags

	c := &cobra.Command{
		Use:   "explore",
		Short: "Browse the feasible band interactively and tweak angle/vlimit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(lf.workspace)
			if err != nil {
				return err
			}

			req, err := lf.request(cmd, ws)
			if err != nil {
				return err
			}

			log := logger.Named("explore")
			uc := usecase.NewComputeEnvelope(ws.profiles, nil, usecase.WithLogger(log))

			return tui.Run(tui.Deps{
				Envelope:      uc,
				Request:       req,
				WorkspaceRoot: ws.root,
				Logger:        log,
				Debug:         debugEnabled(cmd),
			})
		},
	}

	lf.bind(c)
	return c
}
