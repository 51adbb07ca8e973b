package tui

import "github.com/team9044/launchband/internal/domain"

type scanDoneMsg struct {
	seq     int
	res     domain.ScanResult
	profile domain.Profile
	err     error
}
