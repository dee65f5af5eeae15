package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"adviceslip/internal/app/errors"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

const (
	randomPath = "/advice"
	searchPath = "/advice/search/"

	maxBodySize = 1 << 20
)

// slip mirrors the wire format, pointers tell missing fields from zero values
type slip struct {
	ID     *int    `json:"id"`
	Advice *string `json:"advice"`
}

type randomResponse struct {
	Slip *slip `json:"slip"`
}

type searchResponse struct {
	TotalResults string `json:"total_results"`
	Query        string `json:"query"`
	Slips        []slip `json:"slips"`
}

// Client is the HTTP implementation of Source
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       logger.Logger
}

// NewClient creates an api client from the api configuration
func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Random fetches one random item
func (c *Client) Random(ctx context.Context) (Item, error) {
	var resp randomResponse
	if err := c.get(ctx, c.baseURL+randomPath, &resp); err != nil {
		return Item{}, err
	}

	if resp.Slip == nil {
		return Item{}, fmt.Errorf("%w: missing slip", errors.ErrParse)
	}

	item, err := resp.Slip.item()
	if err != nil {
		return Item{}, err
	}

	c.log.Debug().Int("id", item.ID).Msg("Fetched random advice")

	return item, nil
}

// Search fetches every item matching query
func (c *Client) Search(ctx context.Context, query string) (ResultSet, error) {
	query, err := NormalizeQuery(query)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := c.get(ctx, c.baseURL+searchPath+escapeQuery(query), &resp); err != nil {
		return nil, err
	}

	results := make(ResultSet, 0, len(resp.Slips))

	for _, s := range resp.Slips {
		item, err := s.item()
		if err != nil {
			return nil, err
		}

		results = append(results, item)
	}

	c.log.Debug().Str("query", query).Int("results", len(results)).Msg("Search completed")

	return results, nil
}

// get performs a GET request and decodes the JSON body into out
func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", errors.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrParse, err)
	}

	return nil
}

// item converts a wire slip, both id and advice are required
func (s slip) item() (Item, error) {
	if s.ID == nil {
		return Item{}, fmt.Errorf("%w: missing slip id", errors.ErrParse)
	}

	if s.Advice == nil {
		return Item{}, fmt.Errorf("%w: missing slip advice", errors.ErrParse)
	}

	return Item{ID: *s.ID, Text: *s.Advice}, nil
}

// escapeQuery percent-encodes a query for use as a single path segment
func escapeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
