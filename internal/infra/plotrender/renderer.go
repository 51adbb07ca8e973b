// Package plotrender draws envelope charts to image files with gonum/plot.
package plotrender

import (
	"bufio"
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

// Renderer writes a chart to a single file. The format follows the file extension;
// ".png" is rasterized at the configured DPI, anything else goes through plot.Save.
type Renderer struct {
	path   string
	width  vg.Length
	height vg.Length
	dpi    int
}

type Option func(*Renderer)

// WithSize sets the canvas size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(r *Renderer) {
		if widthIn > 0 && heightIn > 0 {
			r.width = vg.Length(widthIn) * vg.Inch
			r.height = vg.Length(heightIn) * vg.Inch
		}
	}
}

func WithDPI(dpi int) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

func New(path string, opts ...Option) *Renderer {
	r := &Renderer{
		path:   path,
		width:  10 * vg.Inch,
		height: 7 * vg.Inch,
		dpi:    150,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// Path is the file the renderer writes to.
func (r *Renderer) Path() string { return r.path }

func (r *Renderer) Render(chart domain.Chart) error {
	if strings.TrimSpace(r.path) == "" {
		return renderErr(r.path, errors.New("output path is empty"))
	}

	p, err := Build(chart)
	if err != nil {
		return renderErr(r.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return renderErr(r.path, err)
	}

	if strings.EqualFold(filepath.Ext(r.path), ".png") {
		err = r.savePNG(p)
	} else {
		err = p.Save(r.width, r.height, r.path)
	}
	if err != nil {
		return renderErr(r.path, err)
	}
	return nil
}

// Build turns a chart into a plot. Fixtures are drawn in gray, min-speed curves solid and
// max-speed curves dashed, one color per boundary.
func Build(chart domain.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chart.Title
	if chart.Subtitle != "" {
		p.Title.Text += "\n" + chart.Subtitle
	}
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, f := range chart.Fixtures {
		if len(f.Points) < 2 {
			continue
		}
		l, err := plotter.NewLine(toXYs(f.Points))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = color.Gray{Y: 96}
		p.Add(l)
		p.Legend.Add(f.Label, l)
	}

	for _, c := range chart.Curves {
		var pts []domain.Point
		if c.Points != nil {
			for pt := range c.Points {
				pts = append(pts, pt)
			}
		}
		if len(pts) < 2 {
			continue
		}

		l, err := plotter.NewLine(toXYs(pts))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(kindIndex(c.Kind))
		if c.Bound == domain.BoundMax {
			l.LineStyle.Dashes = plotutil.Dashes(1)
		}
		p.Add(l)
		p.Legend.Add(c.Label, l)
	}

	return p, nil
}

func (r *Renderer) savePNG(p *plot.Plot) error {
	c := vgimg.NewWith(
		vgimg.UseWH(r.width, r.height),
		vgimg.UseDPI(r.dpi),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	return writeAndClose(f, vgimg.PngCanvas{Canvas: c})
}

// writeAndClose buffers src into wc and closes it. A close failure is reported
// when every write succeeded.
func writeAndClose(wc io.WriteCloser, src io.WriterTo) error {
	bw := bufio.NewWriter(wc)
	if _, err := src.WriteTo(bw); err != nil {
		_ = wc.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

func toXYs(pts []domain.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

func kindIndex(k domain.BoundaryKind) int {
	switch k {
	case domain.BoundaryNear:
		return 0
	case domain.BoundaryInflection:
		return 1
	case domain.BoundaryFar:
		return 2
	default:
		return 3
	}
}

func renderErr(path string, err error) error {
	return domain.Execution("plotrender.save", path, err)
}
