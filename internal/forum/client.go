// Package forum talks to the Discourse-style forum hosting the Bullhorn
// category: a paginated topic listing plus a raw-Markdown endpoint per post.
package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Options configures a Client.
type Options struct {
	// ListingURL is the topic listing endpoint; a "page" query parameter is
	// appended per request.
	ListingURL string
	// RawURL is the base of the raw-content endpoint; the topic id is
	// appended as a path segment.
	RawURL string
	// Timeout bounds each request.
	Timeout time.Duration
	// RequestsPerSecond throttles all outbound requests. Zero or negative
	// disables throttling.
	RequestsPerSecond float64
	// RetryMax caps transport-level retries when positive. Zero keeps the
	// client default.
	RetryMax int
	// DisableRetries turns transport-level retries off entirely.
	DisableRetries bool
}

// Client fetches listing pages and raw post bodies.
type Client struct {
	http    *retryablehttp.Client
	limiter *rate.Limiter
	listing string
	raw     string
	logger  *slog.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options, logger *slog.Logger) *Client {
	hc := retryablehttp.NewClient()
	hc.Logger = nil
	if opts.Timeout > 0 {
		hc.HTTPClient.Timeout = opts.Timeout
	}
	if opts.DisableRetries {
		hc.RetryMax = 0
	} else if opts.RetryMax > 0 {
		hc.RetryMax = opts.RetryMax
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		http:    hc,
		limiter: rate.NewLimiter(limit, 1),
		listing: opts.ListingURL,
		raw:     strings.TrimRight(opts.RawURL, "/"),
		logger:  logger,
	}
}

// listingPage mirrors the slice of the Discourse listing JSON we consume.
type listingPage struct {
	TopicList struct {
		Topics []topicRecord `json:"topics"`
	} `json:"topic_list"`
}

type topicRecord struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Views     int    `json:"views"`
	LikeCount int    `json:"like_count"`
}

// listRecords fetches one listing page. An empty record list means the
// listing is exhausted; any transport or decode failure is an error.
func (c *Client) listRecords(ctx context.Context, page int) ([]topicRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?page=%d", c.listing, page)
	c.logger.Info("fetching listing page", slog.Int("page", page))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("forum: build listing request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forum: fetch listing page %d: %w", page, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forum: listing page %d: status %d", page, resp.StatusCode)
	}

	var payload listingPage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("forum: decode listing page %d: %w", page, err)
	}
	return payload.TopicList.Topics, nil
}

// Raw returns the raw Markdown body of one post, verbatim.
func (c *Client) Raw(ctx context.Context, id int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%d", c.raw, id)
	c.logger.Info("fetching raw content", slog.Int("id", id))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("forum: build raw request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("forum: fetch raw %d: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("forum: raw %d: status %d", id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("forum: read raw %d: %w", id, err)
	}
	return string(body), nil
}
