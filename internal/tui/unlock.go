// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// UnlockModel is the Bubble Tea model for the master gate screen. On a
// first run it captures a new master passphrase twice and sets up the
// gate; otherwise it verifies the passphrase against the persisted digest
// with a bounded attempt budget. The verified passphrase becomes the
// session transform key and never leaves process memory.
type UnlockModel struct {
	auth     service.AuthService
	firstRun bool

	inputs      []textinput.Model
	focus       int
	attempts    int
	maxAttempts int
	errMsg      string

	sessionKey []byte
	authFailed bool
	quitByUser bool
}

// NewUnlockModel creates an [UnlockModel]. maxAttempts bounds the number
// of wrong passphrases tolerated before the session is abandoned; it is
// ignored on a first run, where there is nothing to verify yet.
func NewUnlockModel(auth service.AuthService, maxAttempts int) *UnlockModel {
	passInput := newPassphraseInput("master passphrase")
	passInput.Focus()

	inputs := []textinput.Model{passInput}
	if auth.FirstRun() {
		inputs = append(inputs, newPassphraseInput("repeat passphrase"))
	}

	return &UnlockModel{
		auth:        auth,
		firstRun:    auth.FirstRun(),
		inputs:      inputs,
		maxAttempts: maxAttempts,
	}
}

func newPassphraseInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc        — abandons the session without authenticating.
//   - tab        — moves focus between the two setup inputs.
//   - enter      — submits: setup on first run, verify otherwise.
//
// All other key events are forwarded to the focused input widget.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "tab", "shift+tab":
			m.focusNext()
			return m, nil
		case "enter":
			if m.firstRun {
				return m.submitSetup()
			}
			return m.submitVerify()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *UnlockModel) submitSetup() (tea.Model, tea.Cmd) {
	passphrase := m.inputs[0].Value()
	confirm := m.inputs[1].Value()

	if passphrase == "" {
		m.errMsg = "Passphrase must not be empty"
		return m, nil
	}
	if passphrase != confirm {
		m.errMsg = "Passphrases do not match"
		return m, nil
	}

	if err := m.auth.Setup(passphrase); err != nil {
		m.errMsg = fmt.Sprintf("Setup failed: %v", err)
		return m, nil
	}

	key, err := m.auth.SessionKey(passphrase)
	if err != nil {
		m.errMsg = fmt.Sprintf("Key derivation failed: %v", err)
		return m, nil
	}

	m.sessionKey = key
	return m, tea.Quit
}

func (m *UnlockModel) submitVerify() (tea.Model, tea.Cmd) {
	passphrase := m.inputs[0].Value()

	if !m.auth.Verify(passphrase) {
		m.attempts++
		if m.attempts >= m.maxAttempts {
			m.authFailed = true
			return m, tea.Quit
		}
		m.errMsg = fmt.Sprintf("Wrong passphrase (%d of %d attempts used)", m.attempts, m.maxAttempts)
		m.inputs[0].SetValue("")
		return m, nil
	}

	key, err := m.auth.SessionKey(passphrase)
	if err != nil {
		m.errMsg = fmt.Sprintf("Key derivation failed: %v", err)
		return m, nil
	}

	m.sessionKey = key
	return m, tea.Quit
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder

	if m.firstRun {
		b.WriteString("No vault found. Choose a master passphrase.\n\n")
		b.WriteString("Passphrase │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("Repeat     │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	} else {
		b.WriteString("Passphrase │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "UNLOCK VAULT"
	if m.firstRun {
		title = "SET UP VAULT"
	}

	hotKeys := "enter: confirm │ esc: quit"
	if m.firstRun {
		hotKeys = "enter: confirm │ tab: next field │ esc: quit"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *UnlockModel) focusNext() {
	if len(m.inputs) < 2 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
