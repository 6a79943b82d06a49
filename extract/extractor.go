// Package extract turns a submitted web page URL into plain text suitable
// for an originality check. PDF/DOCX extraction is handled by an external
// collaborator; this package only covers readable web pages.
package extract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const extractTimeout = 30 * time.Second

// FromURL fetches a web page and extracts its readable text content
func FromURL(pageURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	article, err := readability.FromURL(parsed.String(), extractTimeout)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("page has no extractable text")
	}
	return text, nil
}
