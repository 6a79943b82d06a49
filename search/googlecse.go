package search

import (
	"context"
	"fmt"
	"os"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleCSE wraps the Google Custom Search JSON API
type GoogleCSE struct {
	service  *customsearch.Service
	engineID string
}

// GoogleCSEConfig holds configuration for the Custom Search connection
type GoogleCSEConfig struct {
	APIKey   string
	EngineID string
	// Endpoint overrides the API endpoint, mainly for tests
	Endpoint string
}

// NewGoogleCSE creates a new Custom Search wrapper instance
func NewGoogleCSE(ctx context.Context, config GoogleCSEConfig) (*GoogleCSE, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("google custom search API key is required")
	}
	if config.EngineID == "" {
		return nil, fmt.Errorf("google custom search engine ID is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}

	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create custom search service: %w", err)
	}

	return &GoogleCSE{service: service, engineID: config.EngineID}, nil
}

// NewGoogleCSEFromEnv creates a Custom Search client using environment variables
// GOOGLE_CSE_KEY and GOOGLE_CSE_ID
func NewGoogleCSEFromEnv(ctx context.Context) (*GoogleCSE, error) {
	return NewGoogleCSE(ctx, GoogleCSEConfig{
		APIKey:   os.Getenv("GOOGLE_CSE_KEY"),
		EngineID: os.Getenv("GOOGLE_CSE_ID"),
	})
}

// Search issues a single query and returns result URLs in relevance order
func (g *GoogleCSE) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		return nil, nil
	}
	if maxResults > 10 {
		// API maximum per request
		maxResults = 10
	}

	resp, err := g.service.Cse.List().
		Cx(g.engineID).
		Q(query).
		Num(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	urls := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		urls = append(urls, item.Link)
		if len(urls) == maxResults {
			break
		}
	}
	return urls, nil
}
