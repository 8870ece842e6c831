// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type screen int

const (
	screenList screen = iota
	screenAdd
	screenDetail
	screenConfirmDelete
	screenGenerate
)

const (
	addFieldService = iota
	addFieldUsername
	addFieldPassword
	addFieldCount
)

// MainLoopModel is the Bubble Tea model for an unlocked session. It
// renders the service list and drives the add, detail, delete and
// generate screens on top of it. All mutations go through the vault
// service; nothing touches disk until the session flushes on exit.
type MainLoopModel struct {
	vault     service.VaultService
	generator service.GeneratorService

	screen    screen
	summaries []models.ServiceSummary
	cursor    int
	status    string

	// add form
	addInputs [addFieldCount]textinput.Model
	addFocus  int

	// detail / delete
	selected models.Credential
	revealed bool

	// generate
	lengthInput textinput.Model
	generated   string
}

// NewMainLoopModel creates a [MainLoopModel] over an already-loaded vault.
// skipped is the count of vault file lines dropped during hydration; a
// non-zero value is surfaced in the status line so silent data loss stays
// visible.
func NewMainLoopModel(vault service.VaultService, generator service.GeneratorService, skipped int) *MainLoopModel {
	m := &MainLoopModel{
		vault:     vault,
		generator: generator,
	}
	m.refreshSummaries()

	if skipped > 0 {
		m.status = fmt.Sprintf("Warning: %d unreadable vault line(s) were skipped", skipped)
	}

	return m
}

// Init implements [tea.Model].
func (m *MainLoopModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Dispatches by the active screen; ctrl+c
// quits the session from anywhere, saving is the shell's responsibility.
func (m *MainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.status = fmt.Sprintf("%s copied to clipboard", msg.what)
		return m, nil
	case copyFailedMsg:
		m.status = fmt.Sprintf("Clipboard error: %v", msg.err)
		return m, nil
	case generatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Generation error: %v", msg.err)
			return m, nil
		}
		m.generated = msg.password
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenList:
			return m.updateList(msg)
		case screenAdd:
			return m.updateAdd(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenConfirmDelete:
			return m.updateConfirmDelete(msg)
		case screenGenerate:
			return m.updateGenerate(msg)
		}
	}

	return m, nil
}

func (m *MainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.summaries)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.summaries) == 0 {
			return m, nil
		}
		cred, ok := m.vault.Get(m.summaries[m.cursor].Service)
		if !ok {
			m.status = "Record not found"
			return m, nil
		}
		m.selected = cred
		m.revealed = false
		m.screen = screenDetail
	case "a":
		m.openAddForm()
	case "d":
		if len(m.summaries) == 0 {
			return m, nil
		}
		cred, ok := m.vault.Get(m.summaries[m.cursor].Service)
		if !ok {
			m.status = "Record not found"
			return m, nil
		}
		m.selected = cred
		m.screen = screenConfirmDelete
	case "g":
		m.openGenerateForm()
	}
	return m, nil
}

func (m *MainLoopModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenList
		m.status = ""
		return m, nil
	case "tab", "down":
		m.focusAddField((m.addFocus + 1) % addFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusAddField((m.addFocus + addFieldCount - 1) % addFieldCount)
		return m, nil
	case "enter":
		if m.addFocus < addFieldCount-1 {
			m.focusAddField(m.addFocus + 1)
			return m, nil
		}
		err := m.vault.Add(
			m.addInputs[addFieldService].Value(),
			m.addInputs[addFieldUsername].Value(),
			m.addInputs[addFieldPassword].Value(),
		)
		if err != nil {
			m.status = fmt.Sprintf("Cannot add: %v", err)
			return m, nil
		}
		m.refreshSummaries()
		m.status = fmt.Sprintf("Saved %q", m.addInputs[addFieldService].Value())
		m.screen = screenList
		return m, nil
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m *MainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenList
		m.status = ""
	case "r":
		m.revealed = !m.revealed
	case "c":
		return m, cmdCopyToClipboard("Password", m.selected.Password)
	case "u":
		return m, cmdCopyToClipboard("Username", m.selected.Username)
	case "d":
		m.screen = screenConfirmDelete
	}
	return m, nil
}

func (m *MainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.vault.Delete(m.selected.Service) {
			m.status = fmt.Sprintf("Deleted %q", m.selected.Service)
		} else {
			m.status = "Record not found"
		}
		m.refreshSummaries()
		m.screen = screenList
	case "n", "esc":
		m.screen = screenList
		m.status = ""
	}
	return m, nil
}

func (m *MainLoopModel) updateGenerate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenList
		m.status = ""
		return m, nil
	case "c":
		if m.generated != "" {
			return m, cmdCopyToClipboard("Password", m.generated)
		}
		return m, nil
	case "enter":
		length := m.generator.DefaultLength()
		if raw := strings.TrimSpace(m.lengthInput.Value()); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				m.status = "Length must be a number"
				return m, nil
			}
			length = parsed
		}
		m.status = ""
		return m, cmdGeneratePassword(m.generator, length)
	}

	var cmd tea.Cmd
	m.lengthInput, cmd = m.lengthInput.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *MainLoopModel) View() string {
	switch m.screen {
	case screenAdd:
		return m.viewAdd()
	case screenDetail:
		return m.viewDetail()
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	case screenGenerate:
		return m.viewGenerate()
	default:
		return m.viewList()
	}
}

func (m *MainLoopModel) viewList() string {
	var b strings.Builder

	if len(m.summaries) == 0 {
		b.WriteString("Vault is empty. Press 'a' to add a credential.\n")
	} else {
		for i, s := range m.summaries {
			row := fmt.Sprintf("%-24s %s", fitText(s.Service, 24), fitText(s.Username, 24))
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n%d record(s)", m.vault.Count()))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage(
		"VAULT",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ a: add │ d: delete │ g: generate │ q: quit & save",
	)
}

func (m *MainLoopModel) viewAdd() string {
	var b strings.Builder

	labels := [addFieldCount]string{"Service ", "Username", "Password"}
	for i := range m.addInputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(m.addInputs[i].View())
		b.WriteString("]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(
		"ADD CREDENTIAL",
		strings.TrimRight(b.String(), "\n"),
		"enter: next/save │ tab: next field │ esc: back",
	)
}

func (m *MainLoopModel) viewDetail() string {
	var b strings.Builder

	b.WriteString("Service  │ ")
	b.WriteString(m.selected.Service)
	b.WriteString("\nUsername │ ")
	b.WriteString(m.selected.Username)
	b.WriteString("\nPassword │ ")
	b.WriteString(maskPassword(m.revealed, m.selected.Password))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage(
		"CREDENTIAL",
		b.String(),
		"r: reveal/hide │ c: copy password │ u: copy username │ d: delete │ esc: back",
	)
}

func (m *MainLoopModel) viewConfirmDelete() string {
	data := fmt.Sprintf("Delete credential for %q?", m.selected.Service)
	return renderPage("CONFIRM DELETE", data, "y: delete │ n: keep")
}

func (m *MainLoopModel) viewGenerate() string {
	var b strings.Builder

	b.WriteString("Length │ [")
	b.WriteString(m.lengthInput.View())
	b.WriteString(fmt.Sprintf("]  (default %d)\n", m.generator.DefaultLength()))

	if m.generated != "" {
		b.WriteString("\nGenerated │ ")
		b.WriteString(m.generated)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(
		"GENERATE PASSWORD",
		strings.TrimRight(b.String(), "\n"),
		"enter: generate │ c: copy │ esc: back",
	)
}

func (m *MainLoopModel) refreshSummaries() {
	m.summaries = m.vault.List()
	sort.Slice(m.summaries, func(i, j int) bool {
		return m.summaries[i].Service < m.summaries[j].Service
	})
	if m.cursor >= len(m.summaries) {
		m.cursor = len(m.summaries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *MainLoopModel) openAddForm() {
	placeholders := [addFieldCount]string{"service name", "username", "password"}
	for i := range m.addInputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		in.Width = 40
		m.addInputs[i] = in
	}
	m.addFocus = 0
	m.addInputs[0].Focus()
	m.status = ""
	m.screen = screenAdd
}

func (m *MainLoopModel) openGenerateForm() {
	in := textinput.New()
	in.Placeholder = strconv.Itoa(m.generator.DefaultLength())
	in.CharLimit = 4
	in.Width = 6
	in.Focus()
	m.lengthInput = in
	m.generated = ""
	m.status = ""
	m.screen = screenGenerate
}

func (m *MainLoopModel) focusAddField(idx int) {
	m.addInputs[m.addFocus].Blur()
	m.addFocus = idx
	m.addInputs[m.addFocus].Focus()
}

func cmdCopyToClipboard(what, value string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

func cmdGeneratePassword(generator service.GeneratorService, length int) tea.Cmd {
	return func() tea.Msg {
		password, err := generator.Generate(length)
		return generatedMsg{password: password, err: err}
	}
}
