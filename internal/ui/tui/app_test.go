package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/usecase"
)

type fakeRunner struct {
	mu  sync.Mutex
	res domain.ScanResult
	err error
	got []usecase.EnvelopeRequest
}

func (f *fakeRunner) Execute(_ context.Context, req usecase.EnvelopeRequest) (domain.ScanResult, domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, req)
	return f.res, domain.DefaultProfile(), f.err
}

func scanResult() domain.ScanResult {
	rows := []domain.Sample{
		{Distance: 80, MinSpeed: 250, MaxSpeed: 300},
		{Distance: 81, MinSpeed: 248, MaxSpeed: 300},
		{Distance: 82, MinSpeed: 249, MaxSpeed: 300},
	}
	infl := rows[1]
	far := rows[2]
	return domain.ScanResult{
		Near:       rows[0],
		Inflection: &infl,
		Far:        &far,
		Rows:       rows,
		Curves: []domain.Curve{
			{Kind: domain.BoundaryNear, Bound: domain.BoundMin, Distance: 80, Label: `Near d=80", v_min=250"/s`},
			{Kind: domain.BoundaryNear, Bound: domain.BoundMax, Distance: 80, Label: `Near d=80", v_max=300"/s`},
		},
	}
}

func testModel() model {
	m := newModel(Deps{
		Request: usecase.EnvelopeRequest{AngleDeg: 45, SpeedCeiling: 300},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ScanDoneFillsRows(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, scanDoneMsg{seq: m.seq, res: scanResult(), profile: domain.DefaultProfile()})

	if m.scr != screenRows || m.running {
		t.Fatalf("expected rows screen and idle model, got scr=%v running=%v", m.scr, m.running)
	}
	items := m.rows.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if it := items[0].(sampleItem); it.kind != domain.BoundaryNear || !strings.Contains(it.Title(), "[near]") {
		t.Fatalf("expected near marker on first row, got %q", it.Title())
	}
	if it := items[1].(sampleItem); it.kind != domain.BoundaryInflection {
		t.Fatalf("expected inflection marker, got %q", it.kind)
	}
	if !strings.Contains(m.View(), "Feasible distances") {
		t.Fatalf("expected list in view")
	}
}

func TestModel_DropsStaleResults(t *testing.T) {
	m := testModel()
	m.seq = 3
	m, _ = update(t, m, scanDoneMsg{seq: 2, res: scanResult()})

	if !m.running || m.scr != screenScanning {
		t.Fatalf("stale result should be ignored")
	}
}

func TestModel_TotalInfeasibilityShowsNoSolution(t *testing.T) {
	m := testModel()
	err := &domain.OpError{Op: "usecase.scan_envelope", Kind: domain.KindInfeasible, Err: domain.ErrTotalInfeasibility}
	m, _ = update(t, m, scanDoneMsg{seq: m.seq, err: err})

	if m.scr != screenError {
		t.Fatalf("expected error screen, got %v", m.scr)
	}
	if !strings.Contains(m.View(), "No solution") {
		t.Fatalf("expected no-solution message, got:\n%s", m.View())
	}
}

func TestModel_DetailNavigation(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, scanDoneMsg{seq: m.seq, res: scanResult()})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenDetail {
		t.Fatalf("expected detail screen, got %v", m.scr)
	}
	if v := m.View(); !strings.Contains(v, `Near d=80", v_min=250"/s`) {
		t.Fatalf("expected curve labels in detail, got:\n%s", v)
	}

	m, _ = update(t, m, key("b"))
	if m.scr != screenRows {
		t.Fatalf("expected rows screen after back, got %v", m.scr)
	}
}

func TestModel_AdjustRescans(t *testing.T) {
	runner := &fakeRunner{res: scanResult()}
	m := newModel(Deps{
		Envelope: runner,
		Request:  usecase.EnvelopeRequest{AngleDeg: 45, SpeedCeiling: 300},
	})
	m.running = false

	m, cmd := update(t, m, key("+"))
	if cmd == nil || !m.running {
		t.Fatalf("expected a rescan command")
	}
	if m.req.AngleDeg != 46 || m.seq != 2 {
		t.Fatalf("expected angle 46 and seq 2, got %v / %d", m.req.AngleDeg, m.seq)
	}

	m, _ = update(t, m, key("]"))
	if m.req.SpeedCeiling != 310 || m.seq != 3 {
		t.Fatalf("expected vlimit 310 and seq 3, got %v / %d", m.req.SpeedCeiling, m.seq)
	}
}

func TestModel_AdjustRejectsOutOfRange(t *testing.T) {
	m := newModel(Deps{Request: usecase.EnvelopeRequest{AngleDeg: 89, SpeedCeiling: 5}})

	m, cmd := update(t, m, key("+"))
	if cmd != nil || m.req.AngleDeg != 89 || m.toast == "" {
		t.Fatalf("expected rejected angle change, got angle=%v toast=%q", m.req.AngleDeg, m.toast)
	}

	m, cmd = update(t, m, key("["))
	if cmd != nil || m.req.SpeedCeiling != 5 {
		t.Fatalf("expected rejected vlimit change, got %v", m.req.SpeedCeiling)
	}
}

func TestStartScanAsync_DeliversResult(t *testing.T) {
	runner := &fakeRunner{res: scanResult()}
	_, cmd := startScanAsync(runner, usecase.EnvelopeRequest{AngleDeg: 45, SpeedCeiling: 300}, 7, nil)

	msg, ok := cmd().(scanDoneMsg)
	if !ok {
		t.Fatalf("expected scanDoneMsg")
	}
	if msg.seq != 7 || msg.err != nil || len(msg.res.Rows) != 3 {
		t.Fatalf("unexpected message %+v", msg)
	}
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.got) != 1 || runner.got[0].AngleDeg != 45 {
		t.Fatalf("unexpected requests %+v", runner.got)
	}
}

func TestStartScanAsync_NilRunner(t *testing.T) {
	_, cmd := startScanAsync(nil, usecase.EnvelopeRequest{}, 1, nil)
	msg := cmd().(scanDoneMsg)
	if msg.err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

type panicMsg struct{}

func TestSafeModel_RecoversFromPanic(t *testing.T) {
	m := testModel()
	m.scr = screenRows

	d := list.NewDefaultDelegate()
	d.UpdateFunc = func(tea.Msg, *list.Model) tea.Cmd { panic("boom") }
	m.rows.SetDelegate(d)

	s := wrapSafe(m, nil)

	next, cmd := s.Update(panicMsg{})
	if cmd != nil {
		t.Fatalf("expected no command after recovery")
	}
	sm := next.(safeModel)
	if sm.m.scr != screenError || sm.m.toast == "" {
		t.Fatalf("expected error screen with toast, got scr=%v toast=%q", sm.m.scr, sm.m.toast)
	}
	if sm.m.err == nil {
		t.Fatalf("expected recovered error")
	}
}
