package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const eventRegistryURL = "https://eventregistry.org/api/v1/article/getArticles"

// Client fetches recent headlines from the EventRegistry article API.
// A missing API key is not an error: the scanner just runs without news.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	url        string
	logger     zerolog.Logger
}

// NewClient creates a news client
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		apiKey:     apiKey,
		url:        eventRegistryURL,
		logger:     log.With().Str("component", "news_client").Logger(),
	}
}

type articlesResponse struct {
	Articles struct {
		Results []struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"results"`
	} `json:"articles"`
}

// GetHeadlines returns up to 10 recent "Title + Summary" strings for the
// ticker. Empty output on missing key or upstream failure.
func (c *Client) GetHeadlines(ctx context.Context, ticker string) ([]string, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	payload := map[string]any{
		"action":               "getArticles",
		"keyword":              ticker,
		"ignoreSourceGroupUri": "paywall/paywalled_sources",
		"lang":                 "eng",
		"articlesPage":         1,
		"articlesCount":        10,
		"articlesSortBy":       "date",
		"articlesSortByAsc":    false,
		"daysBack":             2,
		"dataType":             []string{"news", "pr"},
		"apiKey":               c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var resp *http.Response
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("non-200 status code: %d", resp.StatusCode)
		}
		return nil
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = 20 * time.Second

	if err := backoff.Retry(operation, backoffStrategy); err != nil {
		return nil, fmt.Errorf("after retries: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var data articlesResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		c.logger.Error().Err(err).Msg("Error parsing news JSON")
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	headlines := make([]string, 0, len(data.Articles.Results))
	for _, art := range data.Articles.Results {
		summary := art.Body
		if len(summary) > 200 {
			summary = summary[:200] + "..."
		}
		headlines = append(headlines, fmt.Sprintf("Title: %s \n Summary: %s", art.Title, summary))
	}

	c.logger.Debug().Str("ticker", ticker).Int("count", len(headlines)).Msg("Fetched headlines")
	return headlines, nil
}
