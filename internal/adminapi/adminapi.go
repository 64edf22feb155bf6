// internal/adminapi/adminapi.go
package adminapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/models"
	"siteadmin/internal/paginator"

	"go.uber.org/zap"
)

var (
	ErrUnauthorized = errors.New("admin API rejected the credentials")
	ErrBaseURL      = errors.New("admin API base URL not configured")
)

// Credentials authenticate one request. An empty Token sends no
// Authorization header.
type Credentials struct {
	Token string
}

type ProjectQuery struct {
	Title    string
	Status   models.ProjectStatus
	Page     int
	PageSize int
}

// Listing is one page of a list endpoint as the client received it.
type Listing[T any] struct {
	Data     []T
	Page     int
	PageSize int
	// TotalCount is the number of matching items across all pages.
	TotalCount int
}

func (l *Listing[T]) LastPage() int {
	return paginator.LastPage(l.TotalCount, l.PageSize)
}

// Window derives the paginator for the listing from its totalCount and
// pageSize; the current page is clamped first.
func (l *Listing[T]) Window(maxLength int) ([]paginator.Token, error) {
	last := l.LastPage()
	return paginator.Window(paginator.Clamp(l.Page, last), last, maxLength)
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		client:  httpClient,
	}
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
	Page struct {
		TotalCount int `json:"totalCount"`
		Page       int `json:"page"`
		PageSize   int `json:"pageSize"`
	} `json:"page"`
}

func (c *Client) ListProjects(ctx context.Context, creds Credentials, q ProjectQuery) (*Listing[models.Project], error) {
	if c.baseURL == "" {
		return nil, ErrBaseURL
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin API URL: %w", err)
	}
	u = u.JoinPath("projects")

	query := u.Query()
	if q.Title != "" {
		query.Set("title", q.Title)
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build admin API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	utils.Logger.Debug("Calling admin API", zap.String("url", u.String()))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call admin API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("admin API returned error: %s", resp.Status)
	}

	var envelope listEnvelope[models.Project]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode admin API response: %w", err)
	}

	listing := &Listing[models.Project]{
		Data:       envelope.Data,
		Page:       envelope.Page.Page,
		PageSize:   envelope.Page.PageSize,
		TotalCount: envelope.Page.TotalCount,
	}
	// Servers that omit the echo get the values we asked for.
	if listing.Page == 0 {
		listing.Page = max(q.Page, 1)
	}
	if listing.PageSize == 0 {
		listing.PageSize = q.PageSize
		if listing.PageSize <= 0 {
			listing.PageSize = models.DefaultPageSize
		}
	}

	utils.Logger.Debug("Admin API response", zap.Int("count", len(listing.Data)), zap.Int("total", listing.TotalCount))
	return listing, nil
}
