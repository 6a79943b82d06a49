// Package orchestrator routes each incoming submission to one of three
// paths: explicit two-part comparison ("A VS B"), paired document
// comparison through the session store, or a single-text web originality
// check. It owns the usage counters and produces the user-facing report
// strings; no error escapes any of its public operations.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"originbot/session"
	"originbot/similarity"
	"originbot/stats"
	"originbot/textproc"
	"originbot/types"
)

// DefaultSeparator is the token that splits an explicit two-part comparison
const DefaultSeparator = "VS"

// Searcher describes the evidence search functionality the orchestrator consumes
type Searcher interface {
	FindEvidence(ctx context.Context, query string) types.EvidenceReport
}

// NotifyFunc delivers an interim acknowledgment to a user before a slow path runs
type NotifyFunc func(userID, message string)

// Config holds configuration for the orchestrator
type Config struct {
	// Separator token for explicit comparisons. Default: "VS".
	Separator string
	// CaseInsensitive matches the separator regardless of case
	CaseInsensitive bool
	// Threshold is the verdict boundary. Default: similarity.DefaultThreshold.
	Threshold float64
	// Sessions is the injected pair store. Required.
	Sessions *session.Store
	// Stats is the injected usage tracker. Required.
	Stats *stats.Usage
	// Searcher runs the web originality check. Optional: when nil, the
	// single-text path reports the search as unavailable.
	Searcher Searcher
	// Notify emits the "please wait" acknowledgment before a search. Optional.
	Notify NotifyFunc
}

// Orchestrator routes submissions and aggregates usage statistics
type Orchestrator struct {
	separator  string
	sepPattern *regexp.Regexp
	threshold  float64
	sessions   *session.Store
	usage      *stats.Usage
	searcher   Searcher
	notify     NotifyFunc
}

// New creates an orchestrator from its injected collaborators
func New(config Config) (*Orchestrator, error) {
	if config.Sessions == nil {
		return nil, fmt.Errorf("session store cannot be nil")
	}
	if config.Stats == nil {
		return nil, fmt.Errorf("stats tracker cannot be nil")
	}
	if config.Separator == "" {
		config.Separator = DefaultSeparator
	}
	if config.Threshold == 0 {
		config.Threshold = similarity.DefaultThreshold
	}

	expr := regexp.QuoteMeta(config.Separator)
	if config.CaseInsensitive {
		expr = "(?i)" + expr
	}
	sepPattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile separator pattern: %w", err)
	}

	return &Orchestrator{
		separator:  config.Separator,
		sepPattern: sepPattern,
		threshold:  config.Threshold,
		sessions:   config.Sessions,
		usage:      config.Stats,
		searcher:   config.Searcher,
		notify:     config.Notify,
	}, nil
}

// Handle routes a submission by its channel: document text goes through
// the pair session, everything else through the chat text path.
func (o *Orchestrator) Handle(ctx context.Context, sub types.Submission) string {
	if sub.Channel == types.ChannelDocument {
		return o.HandleDocument(ctx, sub.UserID, sub.Text)
	}
	return o.HandleText(ctx, sub.UserID, sub.Text)
}

// HandleText routes a free-form chat message. Text containing the separator
// is treated as an explicit two-part comparison and never reaches the
// session store or the searcher; anything else goes through the web
// originality check.
func (o *Orchestrator) HandleText(ctx context.Context, userID, text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "nothing to check, send some text"
	}

	if o.sepPattern.MatchString(trimmed) {
		parts := o.sepPattern.Split(trimmed, 2)
		if len(parts) < 2 {
			return o.formatError()
		}
		return o.Compare(userID, parts[0], parts[1])
	}

	return o.checkOriginality(ctx, userID, trimmed)
}

// Compare scores two explicit text parts and formats the result. Empty
// parts after trimming are reported as a format error and counted as
// nothing.
func (o *Orchestrator) Compare(userID, textA, textB string) string {
	textA = strings.TrimSpace(textA)
	textB = strings.TrimSpace(textB)
	if textA == "" || textB == "" {
		return o.formatError()
	}

	report := similarity.Compare(textA, textB, o.threshold)
	o.usage.Record(userID)
	return formatSimilarity(report)
}

// HandleDocument routes already-extracted document text through the pair
// session. The first document for a user is held until a second arrives;
// the second triggers the comparison and clears the slot.
func (o *Orchestrator) HandleDocument(ctx context.Context, userID, text string) string {
	if strings.TrimSpace(text) == "" {
		// Extraction produced nothing; never enter the pair session
		return "could not read any text from the document"
	}

	result := o.sessions.Submit(userID, text)
	if result.Pending {
		o.usage.RecordUser(userID)
		return "first document received, send a second one to compare"
	}

	o.usage.Record(userID)
	return formatSimilarity(*result.Report)
}

// Stats returns a read-only snapshot of the usage counters
func (o *Orchestrator) Stats() stats.Snapshot {
	return o.usage.Snapshot()
}

// SearchEnabled reports whether a web search backend is configured
func (o *Orchestrator) SearchEnabled() bool {
	return o.searcher != nil
}

// PendingPairs returns how many users are waiting on a second document
func (o *Orchestrator) PendingPairs() int {
	return o.sessions.Pending()
}

func (o *Orchestrator) checkOriginality(ctx context.Context, userID, text string) string {
	if o.notify != nil {
		o.notify(userID, "analyzing, please wait...")
	}

	normalized := textproc.Normalize(text)
	query := textproc.SelectQuery(normalized, false)

	if o.searcher == nil {
		log.Printf("Warning: no search backend configured, skipping originality check for user %s", userID)
		return "search unavailable, try again later"
	}

	report := o.searcher.FindEvidence(ctx, query)
	o.usage.Record(userID)
	return formatEvidence(report)
}

func (o *Orchestrator) formatError() string {
	return fmt.Sprintf("use the format: <text A> %s <text B>", o.separator)
}

func formatSimilarity(report types.SimilarityReport) string {
	return fmt.Sprintf("%.2f%% similarity, %s", report.Score, report.Verdict)
}

func formatEvidence(report types.EvidenceReport) string {
	switch report.Outcome {
	case types.OutcomeMatches:
		return fmt.Sprintf("%d matches: %s", len(report.URLs), strings.Join(report.URLs, ", "))
	case types.OutcomeUnavailable:
		return "search unavailable, try again later"
	default:
		return "no matches found"
	}
}
