package ingest

import (
	"context"
	"encoding/json"
	"log"

	"originbot/orchestrator"
	"originbot/types"
)

// CheckEvent is the wire format of an inbound originality check request
type CheckEvent struct {
	UserID  string        `json:"user_id"`
	Text    string        `json:"text"`
	Channel types.Channel `json:"channel"`
}

// ReplyFunc delivers a formatted report back to the user on whatever
// transport produced the event
type ReplyFunc func(userID, reply string)

// CheckHandler decodes check events and routes them through the orchestrator
type CheckHandler struct {
	orch  *orchestrator.Orchestrator
	reply ReplyFunc
}

// NewCheckHandler creates a handler; a nil reply function logs replies instead
func NewCheckHandler(orch *orchestrator.Orchestrator, reply ReplyFunc) *CheckHandler {
	if reply == nil {
		reply = func(userID, msg string) {
			log.Printf("Reply to %s: %s", userID, msg)
		}
	}
	return &CheckHandler{orch: orch, reply: reply}
}

// HandleMessage implements MessageHandler. Malformed events are marked and
// skipped; routing itself never fails, so every decoded event is marked.
func (h *CheckHandler) HandleMessage(ctx context.Context, message []byte) (bool, error) {
	var event CheckEvent
	if err := json.Unmarshal(message, &event); err != nil {
		log.Printf("Warning: skipping malformed check event: %v", err)
		return true, nil
	}
	if event.UserID == "" {
		log.Printf("Warning: skipping check event with no user ID")
		return true, nil
	}

	sub := types.NewSubmission(event.UserID, event.Text, event.Channel)
	log.Printf("Processing submission %s from user %s via %s", sub.ID, sub.UserID, sub.Channel)

	reply := h.orch.Handle(ctx, sub)
	h.reply(sub.UserID, reply)
	return true, nil
}
