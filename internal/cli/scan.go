package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/infra/logger"
	"github.com/team9044/launchband/internal/infra/plotrender"
	"github.com/team9044/launchband/internal/ports"
	"github.com/team9044/launchband/internal/usecase"
)

func scanCmd() *cobra.Command {
	var lf launchFlags
	var plotPath string
	var noPlot bool
	var format string

	c := &cobra.Command{
		Use:   "scan",
		Short: "Scan the distance domain and print the feasible launch-speed band",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(lf.workspace)
			if err != nil {
				return err
			}

			req, err := lf.request(cmd, ws)
			if err != nil {
				return err
			}

			var renderer ports.ChartRenderer
			if !noPlot {
				if plotPath == "" {
					plotPath = defaultPlotPath(ws, req.AngleDeg, req.SpeedCeiling)
				}
				renderer = plotrender.New(plotPath)
			}

			uc := usecase.NewComputeEnvelope(ws.profiles, renderer, usecase.WithLogger(logger.Named("scan")))

			out := cmd.OutOrStdout()
			res, _, err := uc.Execute(cmd.Context(), req)
			if errors.Is(err, domain.ErrTotalInfeasibility) {
				_ = printNoSolution(out, format)
				return err
			}
			if err != nil && len(res.Rows) == 0 {
				return err
			}

			if perr := printScan(out, res, format); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}

			if renderer != nil && format != "json" {
				fmt.Fprintf(out, "\nChart: %s\n", plotPath)
			}
			return nil
		},
	}

	lf.bind(c)
	c.Flags().StringVar(&plotPath, "plot", "", "Chart output file; the extension picks the format (default plots/envelope_<angle>deg_<vlimit>.png)")
	c.Flags().BoolVar(&noPlot, "no-plot", false, "Skip rendering the chart")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|table|json")

	return c
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "table", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|table|json)", format)
	}
}

func printScan(w io.Writer, res domain.ScanResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newScanPayload(res))
	case "table":
		printTableScan(w, res)
		return nil
	case "pretty", "":
		printPrettyScan(w, res)
		return nil
	default:
		return checkFormat(format)
	}
}

func printNoSolution(w io.Writer, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(scanPayload{Feasible: false, Rows: []domain.Sample{}, Curves: []curvePayload{}})
	}
	_, err := fmt.Fprintln(w, "No solution")
	return err
}

func printPrettyScan(w io.Writer, res domain.ScanResult) {
	for _, s := range res.Rows {
		fmt.Fprintln(w, s.String())
	}
	fmt.Fprintln(w)

	for _, k := range []domain.BoundaryKind{domain.BoundaryNear, domain.BoundaryInflection, domain.BoundaryFar} {
		s, ok := res.Boundary(k)
		if !ok {
			fmt.Fprintf(w, "%-11s (none)\n", k.Title()+":")
			continue
		}
		fmt.Fprintf(w, "%-11s %s\n", k.Title()+":", s.String())
	}
}

func printTableScan(w io.Writer, res domain.ScanResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Distance", "v_min", "v_max", "Band", "Boundary"})
	for _, s := range res.Rows {
		t.AppendRow(table.Row{
			s.Distance,
			fmt.Sprintf("%.0f", s.MinSpeed),
			fmt.Sprintf("%.0f", s.MaxSpeed),
			fmt.Sprintf("%.0f", s.MaxSpeed-s.MinSpeed),
			boundaryLabel(res, s.Distance),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Rows", len(res.Rows)})
	t.Render()
}

func boundaryLabel(res domain.ScanResult, distance int) string {
	kinds := lo.Filter([]domain.BoundaryKind{domain.BoundaryNear, domain.BoundaryInflection, domain.BoundaryFar},
		func(k domain.BoundaryKind, _ int) bool {
			s, ok := res.Boundary(k)
			return ok && s.Distance == distance
		})
	return strings.Join(lo.Map(kinds, func(k domain.BoundaryKind, _ int) string { return string(k) }), ",")
}

type curvePayload struct {
	Kind     domain.BoundaryKind `json:"kind"`
	Bound    domain.SpeedBound   `json:"bound"`
	Distance int                 `json:"distance"`
	Speed    float64             `json:"speed"`
	Label    string              `json:"label"`
	Points   []domain.Point      `json:"points"`
}

type scanPayload struct {
	Feasible   bool                     `json:"feasible"`
	Launch     *domain.LaunchParameters `json:"launch,omitempty"`
	Near       *domain.Sample           `json:"near,omitempty"`
	Inflection *domain.Sample           `json:"inflection,omitempty"`
	Far        *domain.Sample           `json:"far,omitempty"`
	Rows       []domain.Sample          `json:"rows"`
	Curves     []curvePayload           `json:"curves"`
}

func newScanPayload(res domain.ScanResult) scanPayload {
	near := res.Near
	launch := res.Launch
	return scanPayload{
		Feasible:   true,
		Launch:     &launch,
		Near:       &near,
		Inflection: res.Inflection,
		Far:        res.Far,
		Rows:       res.Rows,
		Curves: lo.Map(res.Curves, func(c domain.Curve, _ int) curvePayload {
			var pts []domain.Point
			if c.Points != nil {
				pts = slices.Collect(c.Points)
			}
			return curvePayload{
				Kind:     c.Kind,
				Bound:    c.Bound,
				Distance: c.Distance,
				Speed:    c.Speed,
				Label:    c.Label,
				Points:   pts,
			}
		}),
	}
}
