package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/domain"
)

func profileCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "profile",
		Short: "Inspect geometry profiles",
	}

	c.AddCommand(profileShowCmd())
	c.AddCommand(profileListCmd())
	return c
}

func profileShowCmd() *cobra.Command {
	var workspace string
	var profile string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective geometry of a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			p, err := ws.profiles.LoadProfile(resolveProfileArg(ws, profile))
			if err != nil {
				return err
			}

			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Profile name or path (defaults to the workspace default)")
	return cmd
}

func profileListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.profiles.ListProfiles()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ws.root != "" {
				fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			}
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Profile)

			builtin := domain.DefaultProfile().Name
			shadowed := false
			for _, r := range refs {
				rel := r.Path
				if ws.root != "" {
					rel, _ = filepath.Rel(ws.root, r.Path)
				}
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
				shadowed = shadowed || r.Name == builtin
			}
			if !shadowed {
				fmt.Fprintf(out, "- %s  (built-in)\n", builtin)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printProfile(w io.Writer, p domain.Profile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Profile %s", p.Name)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"title", p.Title},
		{"gravity", p.Gravity},
		{"launch_height", p.LaunchHeight},
		{"wall_height", p.WallHeight},
		{"opening.near_edge_height", p.Opening.NearEdgeHeight},
		{"opening.far_edge_height", p.Opening.FarEdgeHeight},
		{"opening.edge_separation", p.Opening.EdgeSeparation},
		{"domain", fmt.Sprintf("[%d, %d)", p.Domain.Lower, p.Domain.Upper)},
		{"solver.speed_tolerance", p.SpeedTolerance},
		{"samples_per_curve", p.SamplesPerCurve},
	})
	t.Render()
}
