// Package notion implements the goal source and the task sink on top of the
// Notion REST API.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"goaltask/internal/config"
	"goaltask/internal/service"
)

// Client talks to the Notion API. Every request carries the bearer token and
// the configured Notion-Version header.
type Client struct {
	http       *http.Client
	baseURL    string
	version    string
	pageID     string
	databaseID string
	log        *zap.Logger
	now        func() time.Time
}

var (
	_ service.GoalSource      = (*Client)(nil)
	_ service.TaskSink        = (*Client)(nil)
	_ service.SchemaDescriber = (*Client)(nil)
)

// New creates a Notion client for the goals page and todo database named in cfg.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.NotionToken,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.HTTPTimeout

	return &Client{
		http:       httpClient,
		baseURL:    strings.TrimRight(cfg.NotionBaseURL, "/"),
		version:    cfg.NotionVersion,
		pageID:     cfg.GoalsPageID,
		databaseID: cfg.TodoDatabaseID,
		log:        log.Named("notion"),
		now:        time.Now,
	}
}

// SetClock replaces the clock used for date fields (for testing).
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

// do sends a JSON request and returns the response body. Non-2xx statuses
// become a *service.RemoteError carrying the raw body.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.version)

	c.log.Debug("request", zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	c.log.Debug("response", zap.String("path", path), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &service.RemoteError{Op: op, StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
