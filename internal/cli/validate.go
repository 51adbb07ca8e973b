package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/usecase"
)

func validateCmd() *cobra.Command {
	var lf launchFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a profile and the launch inputs (no scan)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(lf.workspace)
			if err != nil {
				return err
			}

			req, err := lf.request(cmd, ws)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateProfile(ws.profiles)
			p, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK  profile=%s angle=%s vlimit=%s domain=[%d, %d)\n",
				p.Name, formatNumber(req.AngleDeg), formatNumber(req.SpeedCeiling), p.Domain.Lower, p.Domain.Upper)
			return nil
		},
	}

	lf.bind(c)
	return c
}
