package trade

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

	"unique-checker/feature/uniques/models"

	"github.com/tidwall/gjson"
)

var (
	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected status from trade website")
	// ErrMalformedBody is returned when a response cannot be decoded.
	ErrMalformedBody = errors.New("malformed response from trade website")
)

// Client performs single attempts against the trade API.
type Client interface {
	// Search returns the listing ids of a player's unique items in a category.
	Search(ctx context.Context, username, categoryKey string) ([]string, error)
	// Fetch returns the items of the given listing ids.
	Fetch(ctx context.Context, ids []string) ([]models.Item, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL   string
	league    string
	userAgent string
	http      *http.Client
}

// NewHTTPClient creates a client from configuration.
func NewHTTPClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		league:    cfg.League,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout()},
	}
}

type searchRequest struct {
	Query searchQuery `json:"query"`
}

type searchQuery struct {
	Filters searchFilters `json:"filters"`
}

type searchFilters struct {
	TradeFilters filterGroup `json:"trade_filters"`
	TypeFilters  filterGroup `json:"type_filters"`
}

type filterGroup struct {
	Disabled bool           `json:"disabled"`
	Filters  map[string]any `json:"filters"`
}

func newSearchRequest(username, categoryKey string) searchRequest {
	return searchRequest{Query: searchQuery{Filters: searchFilters{
		TradeFilters: filterGroup{Filters: map[string]any{
			"account": map[string]string{"input": username},
		}},
		TypeFilters: filterGroup{Filters: map[string]any{
			"category": map[string]string{"option": categoryKey},
			"rarity":   map[string]string{"option": "unique"},
		}},
	}}}
}

func (c *HTTPClient) Search(ctx context.Context, username, categoryKey string) ([]string, error) {
	body, err := json.Marshal(newSearchRequest(username, categoryKey))
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/search/" + url.PathEscape(c.league)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	result := gjson.GetBytes(raw, "result")
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: search has no result list", ErrMalformedBody)
	}

	ids := []string{}
	result.ForEach(func(_, value gjson.Result) bool {
		ids = append(ids, value.String())
		return true
	})
	return ids, nil
}

func (c *HTTPClient) Fetch(ctx context.Context, ids []string) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}
	endpoint := c.baseURL + "/fetch/" + strings.Join(escaped, ",")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	result := gjson.GetBytes(raw, "result")
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: fetch has no result list", ErrMalformedBody)
	}

	items := make([]models.Item, 0, len(ids))
	result.ForEach(func(_, value gjson.Result) bool {
		item := value.Get("item")
		if !item.IsObject() {
			// delisted between search and fetch
			return true
		}

		mods := []string{}
		item.Get("explicitMods").ForEach(func(_, mod gjson.Result) bool {
			mods = append(mods, mod.String())
			return true
		})
		items = append(items, models.Item{
			Name:         item.Get("name").String() + " " + item.Get("typeLine").String(),
			ExplicitMods: mods,
		})
		return true
	})
	return items, nil
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformedBody
	}
	return raw, nil
}
