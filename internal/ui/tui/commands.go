package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/team9044/launchband/internal/usecase"
)

const scanTimeout = 30 * time.Second

func listenScan(ch <-chan scanDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return scanDoneMsg{err: errors.New("scan channel closed")}
		}
		return msg
	}
}

// startScanAsync runs one envelope scan off the UI goroutine. seq tags the result so the
// model can drop answers to requests the user has already moved past.
func startScanAsync(runner EnvelopeRunner, req usecase.EnvelopeRequest, seq int, log *slog.Logger) (chan scanDoneMsg, tea.Cmd) {
	ch := make(chan scanDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		if runner == nil {
			ch <- scanDoneMsg{seq: seq, err: errors.New("envelope runner is nil")}
			return
		}

		log.Info("explore.scan.start",
			"seq", seq,
			"profile", req.Profile,
			"angle", req.AngleDeg,
			"vlimit", req.SpeedCeiling,
		)

		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()

		res, profile, err := runner.Execute(ctx, req)
		if err != nil {
			log.Warn("explore.scan.failed", "seq", seq, "err", err)
		} else {
			log.Info("explore.scan.ok", "seq", seq, "rows", len(res.Rows))
		}

		ch <- scanDoneMsg{seq: seq, res: res, profile: profile, err: err}
	}()

	return ch, listenScan(ch)
}
