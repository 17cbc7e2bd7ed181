// Package tui renders the authentication form in the terminal with
// bubbletea.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-form/internal/authform"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionSource exposes the cached session for the authenticated view.
type SessionSource interface {
	Session() models.Session
}

type TUI struct {
	ctrl      *authform.Controller
	sessions  SessionSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(ctrl *authform.Controller, sessions SessionSource, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{ctrl: ctrl, sessions: sessions, buildInfo: buildInfo, logger: log}
}

// Run shows the form until the user quits. The controller must already be
// initialised.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.ctrl, t.sessions, t.buildInfo, t.logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
