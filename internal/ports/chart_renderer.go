package ports

import "github.com/team9044/launchband/internal/domain"

// ChartRenderer displays labelled polylines. It has no influence on the math.
type ChartRenderer interface {
	Render(chart domain.Chart) error
}
