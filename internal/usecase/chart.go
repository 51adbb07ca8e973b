package usecase

import (
	"fmt"

	"github.com/team9044/launchband/internal/domain"
)

const (
	chartXLabel = "Horizontal inches from shooter exit"
	chartYLabel = "Vertical inches from floor"
)

// BuildChart lays out a scan for the renderer: the opening, the wall, the floor out to the
// farthest boundary, and every boundary curve.
func BuildChart(p domain.Profile, res domain.ScanResult) domain.Chart {
	title := p.Title
	if title == "" {
		title = p.Name
	}

	return domain.Chart{
		Title:    title,
		Subtitle: fmt.Sprintf(`exit_height=%v", angle=%v°`, p.LaunchHeight, res.Launch.AngleDeg),
		XLabel:   chartXLabel,
		YLabel:   chartYLabel,
		Fixtures: []domain.Polyline{
			{
				Label: "Target Opening",
				Points: []domain.Point{
					{X: 0, Y: p.Opening.NearEdgeHeight},
					{X: -p.Opening.EdgeSeparation, Y: p.Opening.FarEdgeHeight},
				},
			},
			{
				Label:  "Wall",
				Points: []domain.Point{{X: 0, Y: 0}, {X: 0, Y: p.WallHeight}},
			},
			{
				Label:  "Floor",
				Points: []domain.Point{{X: -float64(res.Extent()), Y: 0}, {X: 0, Y: 0}},
			},
		},
		Curves: res.Curves,
	}
}
