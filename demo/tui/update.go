package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case CheckCompleteMsg:
		return m.handleCheckComplete(msg)
	case StatsUpdateMsg:
		return m.handleStatsUpdate(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.Mode == ModeText {
			m.Mode = ModeDocument
		} else {
			m.Mode = ModeText
		}
		return m, nil
	case "enter":
		if m.Busy {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		m.Busy = true
		m.Err = nil
		m.Input.SetValue("")
		m = m.AddLog("Submitted " + string(m.Mode) + " check")
		if m.Mode == ModeDocument {
			return m, submitDocument(m.Client, m.UserID, text)
		}
		return m, submitText(m.Client, m.UserID, text)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// handleCheckComplete processes the server reply
func (m Model) handleCheckComplete(msg CheckCompleteMsg) (tea.Model, tea.Cmd) {
	m.Busy = false
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.LastReply = msg.Reply
	m = m.AddLog("Reply: " + msg.Reply)
	return m, fetchStats(m.Client)
}

// handleStatsUpdate refreshes the counters line
func (m Model) handleStatsUpdate(msg StatsUpdateMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		m.Stats = msg.Stats
	}
	return m, nil
}
