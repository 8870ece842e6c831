// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui contains the terminal user interface of the vault: the
// master gate screen and the main credential loop, both built on Bubble
// Tea. The package renders and collects input only; all vault semantics
// live in the service layer.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// TUI runs the interactive screens of a vault session.
type TUI struct {
	services *service.Services
	cfg      *config.StructuredConfig
	log      *logger.Logger
}

// New creates a [TUI] over the wired service layer.
func New(services *service.Services, cfg *config.StructuredConfig, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		cfg:      cfg,
		log:      log,
	}
}

// UnlockFlow runs the master gate screen and returns the session
// transform key on success. It returns [ErrUserQuit] if the user
// abandoned the screen and [ErrAuthFailed] if the attempt budget was
// spent without a matching passphrase.
func (t *TUI) UnlockFlow(ctx context.Context) ([]byte, error) {
	model := NewUnlockModel(t.services.Auth, t.cfg.Auth.UnlockAttempts)

	finalModel, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("run unlock screen: %w", err)
	}

	final, ok := finalModel.(*UnlockModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", finalModel)
	}

	switch {
	case final.quitByUser:
		return nil, ErrUserQuit
	case final.authFailed:
		t.log.Warn().Int("attempts", final.attempts).Msg("unlock attempt budget spent")
		return nil, ErrAuthFailed
	case final.sessionKey == nil:
		return nil, ErrUserQuit
	}

	t.log.Info().Bool("first_run", final.firstRun).Msg("vault unlocked")
	return final.sessionKey, nil
}

// MainLoop runs the credential screens until the user quits. skipped is
// the count of vault lines dropped during Load, shown as a warning in
// the status line.
func (t *TUI) MainLoop(ctx context.Context, skipped int) error {
	model := NewMainLoopModel(t.services.Vault, t.services.Generator, skipped)

	if _, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run main loop: %w", err)
	}

	t.log.Info().Int("records", t.services.Vault.Count()).Msg("session finished")
	return nil
}
