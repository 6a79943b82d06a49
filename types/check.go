package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Channel identifies how a submission reached the engine
type Channel string

const (
	// ChannelText marks a free-form chat message
	ChannelText Channel = "text"
	// ChannelDocument marks text extracted from an uploaded document
	ChannelDocument Channel = "document"
)

// Verdict classifies a similarity score against the configured threshold
type Verdict string

const (
	VerdictUnique  Verdict = "unique"
	VerdictSuspect Verdict = "suspect"
)

// SearchOutcome describes the result of an evidence search
type SearchOutcome string

const (
	// OutcomeMatches means the backend returned at least one candidate source
	OutcomeMatches SearchOutcome = "matches"
	// OutcomeNoMatches means both search phases completed with zero results
	OutcomeNoMatches SearchOutcome = "no_matches"
	// OutcomeUnavailable means the backend could not be reached or errored
	OutcomeUnavailable SearchOutcome = "unavailable"
)

// Submission represents a single piece of text handed to the engine
type Submission struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"text"`
	Channel    Channel   `json:"channel"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewSubmission builds a submission stamped with a derived ID and the
// receipt time
func NewSubmission(userID, text string, channel Channel) Submission {
	return Submission{
		ID:         GenerateID(userID + ":" + text),
		UserID:     userID,
		Text:       text,
		Channel:    channel,
		ReceivedAt: time.Now(),
	}
}

// SimilarityReport contains the result of comparing two texts
type SimilarityReport struct {
	Score     float64   `json:"score"`
	Verdict   Verdict   `json:"verdict"`
	CheckedAt time.Time `json:"checked_at"`
}

// EvidenceReport contains the result of a web originality check
type EvidenceReport struct {
	Query     string        `json:"query"`
	URLs      []string      `json:"urls,omitempty"`
	Outcome   SearchOutcome `json:"outcome"`
	CheckedAt time.Time     `json:"checked_at"`
}

// GenerateID creates a unique ID from submitted text
func GenerateID(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])[:16]
}
