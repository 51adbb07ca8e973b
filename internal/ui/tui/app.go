package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/usecase"
)

type screen int

const (
	screenScanning screen = iota
	screenRows
	screenDetail
	screenError
)

const (
	angleStep  = 1.0
	vlimitStep = 10.0
)

type sampleItem struct {
	sample domain.Sample
	kind   domain.BoundaryKind // empty for interior rows
}

func (i sampleItem) Title() string {
	t := fmt.Sprintf(`d=%d"`, i.sample.Distance)
	if i.kind != "" {
		t += "  [" + string(i.kind) + "]"
	}
	return t
}

func (i sampleItem) Description() string {
	return fmt.Sprintf(`v_min=%.0f  v_max=%.0f  band=%.0f"/s`,
		i.sample.MinSpeed, i.sample.MaxSpeed, i.sample.MaxSpeed-i.sample.MinSpeed)
}

func (i sampleItem) FilterValue() string { return strconv.Itoa(i.sample.Distance) }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	rows list.Model
	spin spinner.Model

	req     usecase.EnvelopeRequest
	seq     int
	running bool

	res     domain.ScanResult
	profile domain.Profile
	err     error
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Feasible distances"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenScanning,
		rows:    l,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		req:     deps.Request,
		seq:     1,
		running: true,
	}
}

func (m model) Init() tea.Cmd {
	_, cmd := startScanAsync(m.deps.Envelope, m.req, m.seq, m.deps.Logger)
	return tea.Batch(cmd, m.spin.Tick)
}

func (m model) rescan() (model, tea.Cmd) {
	m.seq++
	m.running = true
	m.toast = ""
	_, cmd := startScanAsync(m.deps.Envelope, m.req, m.seq, m.deps.Logger)
	return m, tea.Batch(cmd, m.spin.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.rows.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scanDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.running = false
		m.profile = msg.profile
		if msg.err != nil {
			m.err = msg.err
			m.res = domain.ScanResult{}
			m.rows.SetItems(nil)
			m.scr = screenError
			return m, nil
		}
		m.err = nil
		m.res = msg.res
		m.rows.SetItems(buildItems(msg.res))
		if m.scr != screenDetail {
			m.scr = screenRows
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenDetail {
				m.scr = screenRows
				return m, nil
			}
			return m, tea.Quit

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenRows
			}
			return m, nil

		case "enter":
			if m.scr == screenRows {
				if _, ok := m.rows.SelectedItem().(sampleItem); ok {
					m.scr = screenDetail
				}
			}
			return m, nil

		case "r":
			return m.rescan()

		case "+", "=":
			return m.adjust(angleStep, 0)
		case "-":
			return m.adjust(-angleStep, 0)
		case "]":
			return m.adjust(0, vlimitStep)
		case "[":
			return m.adjust(0, -vlimitStep)
		}
	}

	if m.scr == screenRows {
		var cmd tea.Cmd
		m.rows, cmd = m.rows.Update(msg)
		return m, cmd
	}
	return m, nil
}

// adjust nudges the launch inputs and rescans, refusing values the evaluator would reject.
func (m model) adjust(dAngle, dVLimit float64) (tea.Model, tea.Cmd) {
	angle := m.req.AngleDeg + dAngle
	vlimit := m.req.SpeedCeiling + dVLimit

	if angle <= 0 || angle >= 90 {
		m.toast = "angle must stay within (0, 90)"
		return m, nil
	}
	if vlimit <= 0 {
		m.toast = "vlimit must stay positive"
		return m, nil
	}

	m.req.AngleDeg = angle
	m.req.SpeedCeiling = vlimit
	return m.rescan()
}

func buildItems(res domain.ScanResult) []list.Item {
	items := make([]list.Item, 0, len(res.Rows))
	for _, s := range res.Rows {
		items = append(items, sampleItem{sample: s, kind: boundaryAt(res, s.Distance)})
	}
	return items
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("launchband explorer") + "\n" +
		m.theme.Subtitle.Render(launchLine(m.profile, m.req)) + "\n"
	if m.deps.WorkspaceRoot != "" {
		header += m.theme.Help.Render("Workspace: "+m.deps.WorkspaceRoot) + "\n"
	}

	status := ""
	if m.running {
		status = m.spin.View() + " scanning…\n"
	}
	if m.toast != "" {
		status += m.theme.Toast.Render(m.toast) + "\n"
	}

	keys := "+/- angle • [/] vlimit • r rescan • q quit"

	switch m.scr {
	case screenScanning:
		return wrap.Render(header + "\n" + status)

	case screenRows:
		summary := m.theme.Card.Render(renderBoundarySummary(m.theme, m.res))
		help := m.theme.Help.Render("↑/↓ navigate • enter details • " + keys)
		return wrap.Render(header + "\n" + status + summary + "\n" + m.theme.Card.Render(m.rows.View()) + "\n" + help)

	case screenDetail:
		it, _ := m.rows.SelectedItem().(sampleItem)
		card := m.theme.Card.Render(
			m.theme.Title.Render(it.Title()) + "\n\n" + renderSampleDetails(it.sample, m.res),
		)
		help := m.theme.Help.Render("esc/b back • " + keys)
		return wrap.Render(header + "\n" + status + card + "\n" + help)

	case screenError:
		msg := userMessage(m.err)
		detail := ""
		if m.err != nil && !errors.Is(m.err, domain.ErrTotalInfeasibility) {
			detail = "\n\n" + m.theme.Help.Render(clampString(m.err.Error(), 160))
		}
		card := m.theme.Card.Render("⚠ " + msg + detail)
		return wrap.Render(header + "\n" + status + card + "\n" + m.theme.Help.Render(keys))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
