// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

// App ties the terminal UI and the service layer into one session
// lifecycle.
type App struct {
	services *service.Services
	ui       *tui.TUI
	log      *logger.Logger
}

// NewApp creates an [App] over an already-wired service layer and UI.
func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui must be non-nil")
	}

	return &App{
		services: services,
		ui:       ui,
		log:      log,
	}, nil
}

// Run drives one vault session: unlock (or first-run setup), load the
// vault with the session key, run the main loop, then flush every record
// back to disk. A user quit at the gate is a clean exit; a spent attempt
// budget is an error.
func (a *App) Run() error {
	ctx := context.Background()

	key, err := a.ui.UnlockFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.log.Info().Msg("session abandoned at the gate")
			return nil
		}
		return fmt.Errorf("unlock: %w", err)
	}

	a.services.Vault.SetSessionKey(key)

	skipped, err := a.services.Vault.Load()
	if err != nil {
		return fmt.Errorf("load vault: %w", err)
	}
	if skipped > 0 {
		a.log.Warn().Int("skipped", skipped).Msg("unreadable vault lines were dropped")
	}

	if err = a.ui.MainLoop(ctx, skipped); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	if err = a.services.Vault.SaveAll(); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	a.log.Info().Int("records", a.services.Vault.Count()).Msg("vault saved")
	return nil
}
