// Package client talks to the notes api over http.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/platform/web/handler"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a non 2xx answer of the api
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api answered %d", e.Status)
	}
	return fmt.Sprintf("api answered %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an api 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Message returns the message the api sent with err, or def when there is none
func Message(err error, def string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return def
}

type clientIPKey struct{}

// WithClientIP returns a copy of ctx carrying the address of the browser the request is made for. The api receives
// it as X-Forwarded-For, so each browser gets its own rate limit window when this server is one of its trusted
// proxies.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the browser address set by WithClientIP
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the api at baseURL, e.g. http://localhost:5000
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) List(ctx context.Context) ([]note.Note, error) {
	notes := make([]note.Note, 0)
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) Get(ctx context.Context, id string) (note.Note, error) {
	var n note.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, &n); err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func (c *Client) Create(ctx context.Context, newN note.NewNote) (note.Note, error) {
	var n note.Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", newN, &n); err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func (c *Client) Update(ctx context.Context, id string, upd note.UpdateNote) (note.Note, error) {
	var n note.Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), upd, &n); err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ip := ClientIP(ctx); ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr handler.Error
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
