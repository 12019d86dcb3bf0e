package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

const DefaultServer = "http://localhost:8080"

// APIError is a non-2xx answer from the server. It unwraps to the matching
// domain sentinel so callers can use errors.Is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrEntryNotFound
	case http.StatusConflict:
		return domain.ErrEntryConflict
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultServer
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Habits(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog
	err := c.getJSON(ctx, "/api/v1/habits", nil, &catalog)
	return catalog, err
}

// Calendar fetches a month view; empty arguments let the server pick today.
func (c *Client) Calendar(ctx context.Context, date, selected string) (*domain.MonthView, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if selected != "" {
		q.Set("selected", selected)
	}

	var view domain.MonthView
	if err := c.getJSON(ctx, "/api/v1/calendar", q, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.HabitSummary, error) {
	var summary domain.HabitSummary
	if err := c.getJSON(ctx, "/api/v1/stats", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Today(ctx context.Context) (domain.DailyContent, error) {
	var content domain.DailyContent
	err := c.getJSON(ctx, "/api/v1/content/today", nil, &content)
	return content, err
}

func (c *Client) Entry(ctx context.Context, date string) (*domain.DayEntry, error) {
	var entry domain.DayEntry
	if err := c.getJSON(ctx, "/api/v1/entries/"+url.PathEscape(date), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) Toggle(ctx context.Context, date, habitID string) (*domain.DayEntry, error) {
	path := fmt.Sprintf("/api/v1/entries/%s/habits/%s/toggle", url.PathEscape(date), url.PathEscape(habitID))

	resp, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entry domain.DayEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	return &entry, nil
}

// DayPDF streams the printable page for date into w.
func (c *Client) DayPDF(ctx context.Context, w io.Writer, date string) error {
	return c.download(ctx, w, "/api/v1/export/day/"+url.PathEscape(date), nil)
}

// BookletPDF streams a booklet into w. Zero days means the server default.
func (c *Client) BookletPDF(ctx context.Context, w io.Writer, start string, days int) error {
	q := url.Values{}
	if start != "" {
		q.Set("start", start)
	}
	if days != 0 {
		q.Set("days", strconv.Itoa(days))
	}
	return c.download(ctx, w, "/api/v1/export/booklet", q)
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, w io.Writer, path string, q url.Values) error {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download interrupted: %w", err)
	}
	return nil
}

// do sends the request and turns any non-2xx status into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Error
		}
	}
	return nil, apiErr
}
