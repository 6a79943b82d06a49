package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"originbot/demo/client"
)

// submitText creates a command posting a free-form text check
func submitText(c *client.Client, userID, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := c.CheckText(userID, text)
		return CheckCompleteMsg{Reply: reply, Err: err}
	}
}

// submitDocument creates a command posting a document pair submission
func submitDocument(c *client.Client, userID, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := c.CheckDocument(userID, text)
		return CheckCompleteMsg{Reply: reply, Err: err}
	}
}

// fetchStats creates a command fetching the usage counters
func fetchStats(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := c.GetStats()
		return StatsUpdateMsg{Stats: stats, Err: err}
	}
}
