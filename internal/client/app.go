package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-form/internal/authform"
	"github.com/MKhiriev/go-auth-form/internal/logger"
)

var _ Client = (*App)(nil)

type App struct {
	ctrl   *authform.Controller
	ui     UI
	logger *logger.Logger
}

func NewApp(ctrl *authform.Controller, ui UI, log *logger.Logger) (*App, error) {
	if ctrl == nil || ui == nil {
		return nil, fmt.Errorf("client app: missing dependency")
	}
	return &App{ctrl: ctrl, ui: ui, logger: log}, nil
}

// Run restores the session flag and blocks in the UI until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	state := a.ctrl.Initialize()
	a.logger.Info().Stringer("session", state.Session).Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
