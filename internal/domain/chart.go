package domain

// Polyline is a fixed piece of scenery (opening, wall, floor) drawn next to the curves.
type Polyline struct {
	Label  string
	Points []Point
}

// Chart is everything a renderer needs. It carries no math.
type Chart struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string

	Fixtures []Polyline
	Curves   []Curve
}
