package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"originbot/demo/client"
)

// Mode selects which check path a submission takes
type Mode string

const (
	// ModeText posts to the free-form text path ("A VS B" works here too)
	ModeText Mode = "text"
	// ModeDocument posts to the document pair path
	ModeDocument Mode = "document"
)

// LogEntry represents a single log line with timestamp
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// Model represents the TUI client state (thin client)
type Model struct {
	Client *client.Client
	UserID string

	Input     textinput.Model
	Mode      Mode
	Busy      bool
	LastReply string
	Logs      []LogEntry
	Stats     *client.StatsResponse
	Err       error
}

// NewModel creates a new TUI model
func NewModel(serverURL, userID string) Model {
	input := textinput.New()
	input.Placeholder = "Type text to check, or: first text VS second text"
	input.CharLimit = 0
	input.Width = 80
	input.Focus()

	return Model{
		Client: client.NewClient(serverURL),
		UserID: userID,
		Input:  input,
		Mode:   ModeText,
		Logs:   make([]LogEntry, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchStats(m.Client))
}

// AddLog appends a timestamped entry, keeping the most recent ten
func (m Model) AddLog(message string) Model {
	m.Logs = append(m.Logs, LogEntry{Timestamp: time.Now(), Message: message})
	if len(m.Logs) > 10 {
		m.Logs = m.Logs[len(m.Logs)-10:]
	}
	return m
}

func (m Model) modeLabel() string {
	if m.Mode == ModeDocument {
		return "document pair"
	}
	return "text / VS compare"
}

func (m Model) statsLine() string {
	if m.Stats == nil {
		return ""
	}
	return fmt.Sprintf("users: %d | checks: %d", m.Stats.DistinctUsers, m.Stats.ChecksDone)
}
