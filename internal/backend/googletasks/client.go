// Package googletasks implements service.TaskSink using the Google Tasks API.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"goaltask/internal/config"
	"goaltask/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second
)

// TaskList is a Google Tasks list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// Client implements service.TaskSink using Google Tasks API.
type Client struct {
	svc      *tasks.Service
	listName string
	log      *zap.Logger
	now      func() time.Time
}

var _ service.TaskSink = (*Client)(nil)

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist (see Login).
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}

	// Token source refreshes automatically.
	httpClient := oauthConfig.Client(ctx, token)

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return newClient(svc, cfg.GTasksList, log), nil
}

// NewWithHTTPClient creates a client against endpoint with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, endpoint, listName string, log *zap.Logger) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, err
	}
	return newClient(svc, listName, log), nil
}

func newClient(svc *tasks.Service, listName string, log *zap.Logger) *Client {
	return &Client{
		svc:      svc,
		listName: listName,
		log:      log.Named("googletasks"),
		now:      time.Now,
	}
}

// SetClock replaces the clock used for due dates (for testing).
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

// ListLists returns all task lists in API order. The default list's ID is
// normalized to DefaultListID.
func (c *Client) ListLists(ctx context.Context) ([]TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	defaultList, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return nil, wrapError("read default list", err)
	}

	var result []TaskList
	err = c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			isDefault := list.Id == defaultList.Id
			id := list.Id
			if isDefault {
				id = DefaultListID
			}
			result = append(result, TaskList{ID: id, Title: list.Title, IsDefault: isDefault})
		}
		return nil
	})
	if err != nil {
		return nil, wrapError("list task lists", err)
	}
	return result, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
// DefaultListID resolves without a lookup.
func (c *Client) ResolveList(ctx context.Context, name string) (TaskList, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == DefaultListID {
		return TaskList{ID: DefaultListID, IsDefault: true}, nil
	}
	nameLower := strings.ToLower(name)

	lists, err := c.ListLists(ctx)
	if err != nil {
		return TaskList{}, err
	}

	var matches []TaskList
	for _, list := range lists {
		if strings.ToLower(strings.TrimSpace(list.Title)) == nameLower {
			matches = append(matches, list)
		}
	}

	switch len(matches) {
	case 0:
		return TaskList{}, fmt.Errorf("list not found: %s", name)
	case 1:
		return matches[0], nil
	default:
		return TaskList{}, fmt.Errorf("ambiguous list name: %s", name)
	}
}

// CreateTask inserts the draft into the configured list, due today, and
// returns the new task's ID.
func (c *Client) CreateTask(ctx context.Context, d service.Draft) (string, error) {
	list, err := c.ResolveList(ctx, c.listName)
	if err != nil {
		return "", err
	}

	// The API stores only the date part of due.
	y, m, day := c.now().Date()
	due := time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	c.log.Debug("inserting task", zap.String("list", list.ID), zap.String("due", due))
	task, err := c.svc.Tasks.Insert(list.ID, &tasks.Task{
		Title: d.Title,
		Notes: d.Description,
		Due:   due,
	}).Context(ctx).Do()
	if err != nil {
		return "", wrapError("create task", err)
	}
	return task.Id, nil
}

// wrapError converts API errors to *service.RemoteError and timeouts to a
// short message.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		body := gerr.Body
		if body == "" {
			body = gerr.Message
		}
		return &service.RemoteError{Op: op, StatusCode: gerr.Code, Body: body}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to %s: request timed out", op)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
