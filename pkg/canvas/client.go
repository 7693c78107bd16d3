package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotConfigured is returned when the client is missing its base URL or
// access token.
var ErrNotConfigured = errors.New("canvas base URL and access token must be configured")

// defaultWindow is how far ahead planner items are fetched when the caller
// gives no end time.
const defaultWindow = 30 * 24 * time.Hour

// Client is the HTTP wrapper for the Canvas REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new Canvas HTTP client. Requests are rate limited to
// stay inside Canvas's per-token quota.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 20 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(5), 10),
	}
}

// FetchPlannerItems pulls upcoming planner items (assignments, quizzes,
// events). Zero start defaults to now; zero end defaults to start + 30 days.
func (c *Client) FetchPlannerItems(ctx context.Context, start, end time.Time) ([]PlannerItem, error) {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	if end.IsZero() {
		end = start.Add(defaultWindow)
	}

	params := url.Values{}
	params.Set("start_date", start.UTC().Format("2006-01-02T15:04:05")+"Z")
	params.Set("end_date", end.UTC().Format("2006-01-02T15:04:05")+"Z")
	params.Set("per_page", "100")

	var items []PlannerItem
	if err := c.get(ctx, "/api/v1/planner/items", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCourses returns the active, enrolled courses.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	params := url.Values{}
	params.Set("enrollment_state", "active")
	params.Set("per_page", "100")

	var courses []Course
	if err := c.get(ctx, "/api/v1/courses", params, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.baseURL == "" || c.accessToken == "" {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("canvas rate limiter: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build canvas request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call canvas API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("canvas API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode canvas response: %w", err)
	}
	return nil
}
