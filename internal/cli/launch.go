package cli

import (
	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/usecase"
)

// launchFlags are the external scalars shared by scan, explore and validate.
type launchFlags struct {
	workspace string
	profile   string
	angle     float64
	vlimit    float64
}

func (lf *launchFlags) bind(c *cobra.Command) {
	c.Flags().StringVarP(&lf.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&lf.profile, "profile", "p", "", "Geometry profile name or path (defaults to the workspace default)")
	c.Flags().Float64VarP(&lf.angle, "angle", "a", 0, "Launch angle in degrees, in (0, 90)")
	c.Flags().Float64VarP(&lf.vlimit, "vlimit", "v", 0, `Speed ceiling in "/s`)
}

// request merges the flags with the workspace defaults. A scalar given nowhere is an input error.
func (lf *launchFlags) request(c *cobra.Command, ws *workspaceCtx) (usecase.EnvelopeRequest, error) {
	req := usecase.EnvelopeRequest{Profile: resolveProfileArg(ws, lf.profile)}

	switch {
	case c.Flags().Changed("angle"):
		req.AngleDeg = lf.angle
	case ws.cfg.Defaults.Angle != nil:
		req.AngleDeg = *ws.cfg.Defaults.Angle
	default:
		return req, domain.InvalidInput("cli.launch", "angle", "is required (use --angle or launchband.defaults.angle)")
	}

	switch {
	case c.Flags().Changed("vlimit"):
		req.SpeedCeiling = lf.vlimit
	case ws.cfg.Defaults.VLimit != nil:
		req.SpeedCeiling = *ws.cfg.Defaults.VLimit
	default:
		return req, domain.InvalidInput("cli.launch", "vlimit", "is required (use --vlimit or launchband.defaults.vlimit)")
	}

	return req, nil
}
