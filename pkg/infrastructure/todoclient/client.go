package todoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"todo-app/pkg/entity/model"
)

// Client calls the todo service. It never retries.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todo service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("todo service returned %d: %s", e.StatusCode, e.Message)
}

// New creates a client for the service at baseURL. A zero timeout means none.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", baseURL)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// List fetches every todo, ordered by id.
func (c *Client) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, c.baseURL.JoinPath("todos"), nil, &todos); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// Create sends a new todo and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, name string) (model.Todo, error) {
	var todo model.Todo
	body := model.CreateTodoInput{Name: &name, IsComplete: false}
	if err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath("todos"), body, &todo); err != nil {
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

// Delete removes the todo with id.
func (c *Client) Delete(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, c.baseURL.JoinPath("todos", strconv.Itoa(id)), nil, nil); err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	return nil
}

// UpdateCompletion sends the whole todo; the service only applies is_complete.
func (c *Client) UpdateCompletion(ctx context.Context, todo model.Todo) error {
	id, isComplete := todo.ID, todo.IsComplete
	body := model.UpdateTodoInput{ID: &id, Name: todo.Name, IsComplete: &isComplete}
	if err := c.do(ctx, http.MethodPatch, c.baseURL.JoinPath("todos"), body, nil); err != nil {
		return fmt.Errorf("update todo %d: %w", todo.ID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, u *url.URL, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{StatusCode: resp.StatusCode}
		var payload struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			se.Code, se.Message = payload.Code, payload.Message
		}
		return se
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	return nil
}
