package tui

import "strings"

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🔎 OriginBot Demo"))
	b.WriteString("\n\n")

	// Mode and counters
	b.WriteString(HighlightStyle.Render("mode: " + m.modeLabel()))
	if stats := m.statsLine(); stats != "" {
		b.WriteString("  ")
		b.WriteString(InfoStyle.Render(stats))
	}
	b.WriteString("\n\n")

	// Input
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	// Status / errors
	if m.Busy {
		b.WriteString(StatusStyle.Render("⏳ Checking..."))
		b.WriteString("\n\n")
	}
	if m.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.Err.Error()))
		b.WriteString("\n\n")
	}

	// Latest reply
	if m.LastReply != "" {
		b.WriteString(ReplyStyle.Render(m.LastReply))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, entry := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + entry.Message))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	b.WriteString(InfoStyle.Render("Enter to submit | Tab to switch mode | Ctrl+C to quit"))

	return b.String()
}
