package tui

import "originbot/demo/client"

// Messages for the tea program

// CheckCompleteMsg is sent when the server replies to a check
type CheckCompleteMsg struct {
	Reply string
	Err   error
}

// StatsUpdateMsg is sent when usage counters are fetched
type StatsUpdateMsg struct {
	Stats *client.StatsResponse
	Err   error
}
