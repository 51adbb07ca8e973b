package plotrender

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/team9044/launchband/internal/domain"
)

func line(pts ...domain.Point) iter.Seq[domain.Point] {
	return func(yield func(domain.Point) bool) {
		for _, p := range pts {
			if !yield(p) {
				return
			}
		}
	}
}

func sampleChart() domain.Chart {
	return domain.Chart{
		Title:    "Team 9044 Ballistics Design (2024)",
		Subtitle: `exit_height=25.5", angle=45°`,
		XLabel:   "Distance from wall (in)",
		YLabel:   "Height (in)",
		Fixtures: []domain.Polyline{
			{Label: "Wall", Points: []domain.Point{{X: 0, Y: 0}, {X: 0, Y: 98.302}}},
			{Label: "Floor", Points: []domain.Point{{X: 0, Y: 0}, {X: -120, Y: 0}}},
		},
		Curves: []domain.Curve{
			{
				Kind:   domain.BoundaryNear,
				Bound:  domain.BoundMin,
				Label:  `Near d=80", v_min=245"/s`,
				Points: line(domain.Point{X: -80, Y: 25.5}, domain.Point{X: -40, Y: 60}, domain.Point{X: 0, Y: 78}),
			},
			{
				Kind:   domain.BoundaryNear,
				Bound:  domain.BoundMax,
				Label:  `Near d=80", v_max=300"/s`,
				Points: line(domain.Point{X: -80, Y: 25.5}, domain.Point{X: 0, Y: 95}),
			},
			{
				Kind:   domain.BoundaryFar,
				Bound:  domain.BoundMin,
				Label:  "degenerate",
				Points: line(domain.Point{X: -116, Y: 25.5}),
			},
		},
	}
}

func TestRender_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "envelope.png")

	r := New(path, WithSize(4, 3), WithDPI(72))
	if err := r.Render(sampleChart()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatalf("expected a PNG file")
	}
}

func TestRender_WritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envelope.svg")

	if err := New(path).Render(sampleChart()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(b, []byte("<svg")) {
		t.Fatalf("expected svg content")
	}
}

func TestRender_EmptyPath(t *testing.T) {
	err := New("").Render(sampleChart())
	if !domain.IsKind(err, domain.KindExecution) || !errors.Is(err, domain.ErrExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestRender_ParentIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "plots")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := New(filepath.Join(blocker, "band.png")).Render(sampleChart())
	if !domain.IsKind(err, domain.KindExecution) || !errors.Is(err, domain.ErrExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
}

type fakeFile struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *fakeFile) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndClose(t *testing.T) {
	diskFull := errors.New("disk full")
	writeFailed := errors.New("encode failed")

	tests := []struct {
		name     string
		src      io.WriterTo
		closeErr error
		want     error
	}{
		{"ok", strings.NewReader("png"), nil, nil},
		{"close error surfaces", strings.NewReader("png"), diskFull, diskFull},
		{"write error wins", failingSource{writeFailed}, diskFull, writeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFile{closeErr: tt.closeErr}
			err := writeAndClose(f, tt.src)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !f.closed {
				t.Fatalf("file left open")
			}
			if tt.want == nil && f.String() != "png" {
				t.Fatalf("unexpected content %q", f.String())
			}
		})
	}
}

type failingSource struct{ err error }

func (s failingSource) WriteTo(io.Writer) (int64, error) { return 0, s.err }

func TestBuild_TitleCarriesSubtitle(t *testing.T) {
	p, err := Build(sampleChart())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := "Team 9044 Ballistics Design (2024)\nexit_height=25.5\", angle=45°"
	if p.Title.Text != want {
		t.Fatalf("unexpected title %q", p.Title.Text)
	}
	if p.X.Label.Text != "Distance from wall (in)" {
		t.Fatalf("unexpected x label %q", p.X.Label.Text)
	}
}
