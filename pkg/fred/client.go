package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/metrics"
)

// DefaultBaseURL is the public FRED REST API endpoint
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// maxErrorBodyLen bounds the upstream body excerpt carried in error results
const maxErrorBodyLen = 512

// Config contains FRED API client configuration
type Config struct {
	APIKey  string `mapstructure:"api_key" json:"api_key" yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	Timeout int    `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
}

// Client is an HTTP client for the FRED REST API. The API key is fixed at
// construction time and appended to every request together with
// file_type=json. A zero-value Client is not usable; use NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	logger     *zap.Logger
	httpClient *http.Client
}

// NewClient creates a new FRED API client
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("fred config is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("FRED API key is required - set the FRED_API_KEY environment variable")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := 15 * time.Second
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 5,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 15 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}

	c := &Client{
		apiKey:  config.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("fred"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}

	c.logger.Info("FRED client created",
		zap.String("base_url", c.baseURL),
		zap.Duration("timeout", timeout),
	)

	return c, nil
}

// get executes a single GET against the given endpoint with the api_key and
// file_type=json parameters appended. No retry is attempted.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("file_type", "json")

	endpoint = strings.Trim(endpoint, "/")
	fullURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	c.logger.Debug("Making FRED request",
		zap.String("endpoint", endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error("FRED request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		metrics.RecordUpstreamRequest(endpoint, duration, false)
		metrics.RecordUpstreamError(endpoint, "network")
		return nil, fmt.Errorf("failed to reach FRED API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, duration, false)
		metrics.RecordUpstreamError(endpoint, "network")
		return nil, fmt.Errorf("failed to read FRED API response: %w", err)
	}

	c.logger.Debug("FRED response received",
		zap.String("endpoint", endpoint),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordUpstreamRequest(endpoint, duration, false)
		metrics.RecordUpstreamError(endpoint, strconv.Itoa(resp.StatusCode))
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.RecordUpstreamRequest(endpoint, duration, false)
		metrics.RecordUpstreamError(endpoint, "decode")
		return nil, &DecodeError{Err: err}
	}

	metrics.RecordUpstreamRequest(endpoint, duration, true)
	return payload, nil
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}

// SearchSeries searches for series matching the given text
func (c *Client) SearchSeries(ctx context.Context, searchText string, limit int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("search_text", searchText)
	params.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "series/search", params)
}

// ObservationOptions contains optional filters for SeriesObservations
type ObservationOptions struct {
	StartDate string
	EndDate   string
	Limit     int
}

// SeriesObservations returns observations for a series. StartDate and
// EndDate map to the upstream observation_start and observation_end
// parameters and are omitted when empty.
func (c *Client) SeriesObservations(ctx context.Context, seriesID string, opts ObservationOptions) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)
	if opts.StartDate != "" {
		params.Set("observation_start", opts.StartDate)
	}
	if opts.EndDate != "" {
		params.Set("observation_end", opts.EndDate)
	}
	params.Set("limit", strconv.Itoa(opts.Limit))
	return c.get(ctx, "series/observations", params)
}

// SeriesInfo returns metadata for a series
func (c *Client) SeriesInfo(ctx context.Context, seriesID string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)
	return c.get(ctx, "series", params)
}

// RootCategory returns the root of the category tree
func (c *Client) RootCategory(ctx context.Context) (map[string]interface{}, error) {
	return c.get(ctx, "category", nil)
}

// CategoryChildren returns the child categories of the given category
func (c *Client) CategoryChildren(ctx context.Context, categoryID int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("category_id", strconv.Itoa(categoryID))
	return c.get(ctx, "category/children", params)
}

// Releases returns all releases of economic data
func (c *Client) Releases(ctx context.Context, limit int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "releases", params)
}

// Release returns a single release
func (c *Client) Release(ctx context.Context, releaseID int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("release_id", strconv.Itoa(releaseID))
	return c.get(ctx, "release", params)
}

// ReleaseSeries returns the series belonging to a release
func (c *Client) ReleaseSeries(ctx context.Context, releaseID int, limit int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("release_id", strconv.Itoa(releaseID))
	params.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "release/series", params)
}

// ReleaseDateOptions contains optional filters for ReleaseDates
type ReleaseDateOptions struct {
	StartDate string
	EndDate   string
	Limit     int
}

// ReleaseDates returns the publication dates of a release. StartDate and
// EndDate map to the upstream realtime_start and realtime_end parameters
// and are omitted when empty.
func (c *Client) ReleaseDates(ctx context.Context, releaseID int, opts ReleaseDateOptions) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("release_id", strconv.Itoa(releaseID))
	params.Set("limit", strconv.Itoa(opts.Limit))
	if opts.StartDate != "" {
		params.Set("realtime_start", opts.StartDate)
	}
	if opts.EndDate != "" {
		params.Set("realtime_end", opts.EndDate)
	}
	return c.get(ctx, "release/dates", params)
}
