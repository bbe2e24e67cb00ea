// Package client talks to the shopping list API and keeps the list view
// state a front end needs to page, filter and sort items.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer. Message is the server's translated message
// when the body carried one.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

type Option func(*Client)

// WithLanguage sets Accept-Language so errors come back translated.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout bounds each request. Zero or negative keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListItems(ctx context.Context, params url.Values) (*ItemPage, error) {
	path := "/items"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page ItemPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, req ItemCreate) (*Item, error) {
	if err := ValidateItemCreate(req); err != nil {
		return nil, err
	}

	var item Item
	if err := c.do(ctx, http.MethodPost, "/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, req ItemUpdate) (*Item, error) {
	if err := ValidateItemUpdate(req); err != nil {
		return nil, err
	}

	var item Item
	if err := c.do(ctx, http.MethodPatch, "/items/"+url.PathEscape(id), req.body(), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var list struct {
		Data []Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	if err := ValidateCategoryName(name); err != nil {
		return nil, err
	}

	var category Category
	if err := c.do(ctx, http.MethodPost, "/categories", map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) RenameCategory(ctx context.Context, id, name string) (*Category, error) {
	if err := ValidateCategoryName(name); err != nil {
		return nil, err
	}

	var category Category
	if err := c.do(ctx, http.MethodPatch, "/categories/"+url.PathEscape(id), map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Field = body.Field
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
