// Package client is a typed HTTP client for the todo API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yash7800/Todo/internal/domain"
)

// DefaultTimeout bounds each request when no http.Client is supplied.
const DefaultTimeout = 15 * time.Second

// APIError is a non-success response from the API.
type APIError struct {
	StatusCode int
	// Message is the server's "error" field.
	Message string
	// Details is the server's optional "details" field.
	Details string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type summaryBody struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

// Client talks to the todo API at a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client. httpClient may be nil.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTodos fetches every todo.
func (c *Client) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var todos []domain.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, http.StatusOK, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// CreateTodo adds a todo with the given text.
func (c *Client) CreateTodo(ctx context.Context, text string) (*domain.Todo, error) {
	var todo domain.Todo
	body := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/todos", body, http.StatusCreated, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes the todo with the given id.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	path := "/todos/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

// Summarize asks the server to summarize pending todos and post them to chat.
// It returns the generated summary.
func (c *Client) Summarize(ctx context.Context) (string, error) {
	var resp summaryBody
	if err := c.do(ctx, http.MethodPost, "/summarize", nil, http.StatusOK, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}, want int, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != want {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil {
			apiErr.Message = eb.Error
			apiErr.Details = eb.Details
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
