package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

var errRecovered = errors.New("explorer recovered from a panic")

// safeModel keeps the alternate screen alive when the inner model panics: the panic is
// logged with its stack and the explorer falls back to the last good scan.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r, "msg_type", fmt.Sprintf("%T", msg))
			s.m = s.m.recover()
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = "Unexpected error (see logs)"
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any, attrs ...any) {
	args := append([]any{
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}, attrs...)
	s.log.Error("panic.recovered", args...)
}

// recover resets the transient state after a panic.
func (m model) recover() model {
	m.running = false
	m.toast = "Unexpected error (see logs)"
	if len(m.res.Rows) == 0 {
		m.err = errRecovered
		m.scr = screenError
		return m
	}
	m.scr = screenRows
	return m
}

var _ tea.Model = (*safeModel)(nil)
