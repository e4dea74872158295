package series

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/fred"
)

// newTestModule returns a module backed by a fake upstream that records the
// last request and replies with the given status and body.
func newTestModule(t *testing.T, status int, body string) (*Module, *url.Values, *string) {
	t.Helper()

	lastQuery := &url.Values{}
	lastPath := new(string)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastQuery = r.URL.Query()
		*lastPath = r.URL.Path
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := fred.NewClient(&fred.Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())
	require.NoError(t, err)

	m, err := New(&Config{}, client, zap.NewNop())
	require.NoError(t, err)
	return m, lastQuery, lastPath
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content item should be text")
	return text.Text
}

func TestModuleRequiresClient(t *testing.T) {
	_, err := New(&Config{}, nil, zap.NewNop())
	require.Error(t, err)

	_, err = New(nil, nil, zap.NewNop())
	require.Error(t, err)
}

func TestGetToolsReturnsAllSeriesTools(t *testing.T) {
	m, _, _ := newTestModule(t, http.StatusOK, `{}`)

	tools := m.GetTools()
	require.Len(t, tools, 3)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	assert.ElementsMatch(t, []string{"search_economic_data", "get_economic_series", "get_series_info"}, names)
}

func TestToolNamePrefixSuffix(t *testing.T) {
	client, err := fred.NewClient(&fred.Config{APIKey: "test-key", BaseURL: "http://localhost:1"}, zap.NewNop())
	require.NoError(t, err)

	m, err := New(&Config{Tools: ToolsConfig{Prefix: "fred_", Suffix: "_v1"}}, client, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "fred_get_series_info_v1", m.BuildToolName("get_series_info"))
}

func TestSearchEconomicDataDefaultLimit(t *testing.T) {
	m, query, path := newTestModule(t, http.StatusOK, `{"seriess":[{"id":"UNRATE"}]}`)

	result, err := m.handleSearchEconomicData(context.Background(), callRequest("search_economic_data", map[string]interface{}{
		"search_text": "unemployment",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "/series/search", *path)
	assert.Equal(t, "unemployment", query.Get("search_text"))
	assert.Equal(t, "10", query.Get("limit"))
	assert.Equal(t, "json", query.Get("file_type"))
	assert.Equal(t, "test-key", query.Get("api_key"))
	assert.Contains(t, resultText(t, result), "UNRATE")
}

func TestSearchEconomicDataExplicitLimit(t *testing.T) {
	m, query, _ := newTestModule(t, http.StatusOK, `{"seriess":[]}`)

	result, err := m.handleSearchEconomicData(context.Background(), callRequest("search_economic_data", map[string]interface{}{
		"search_text": "gdp",
		"limit":       float64(25),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "25", query.Get("limit"))
}

func TestSearchEconomicDataMissingSearchText(t *testing.T) {
	m, _, _ := newTestModule(t, http.StatusOK, `{}`)

	result, err := m.handleSearchEconomicData(context.Background(), callRequest("search_economic_data", map[string]interface{}{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "search_text")
}

func TestGetEconomicSeriesDateRange(t *testing.T) {
	m, query, path := newTestModule(t, http.StatusOK, `{"observations":[{"date":"2020-01-01","value":"3.5"}]}`)

	result, err := m.handleGetEconomicSeries(context.Background(), callRequest("get_economic_series", map[string]interface{}{
		"series_id":  "UNRATE",
		"start_date": "2020-01-01",
		"end_date":   "2023-12-31",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "/series/observations", *path)
	assert.Equal(t, "UNRATE", query.Get("series_id"))
	assert.Equal(t, "2020-01-01", query.Get("observation_start"))
	assert.Equal(t, "2023-12-31", query.Get("observation_end"))
	assert.Equal(t, "100", query.Get("limit"))
	assert.Equal(t, "json", query.Get("file_type"))
	assert.Equal(t, "test-key", query.Get("api_key"))
}

func TestGetEconomicSeriesDefaults(t *testing.T) {
	m, query, _ := newTestModule(t, http.StatusOK, `{"observations":[]}`)

	result, err := m.handleGetEconomicSeries(context.Background(), callRequest("get_economic_series", map[string]interface{}{
		"series_id": "GDP",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "100", query.Get("limit"))
	assert.False(t, query.Has("observation_start"))
	assert.False(t, query.Has("observation_end"))
}

func TestGetEconomicSeriesMissingSeriesID(t *testing.T) {
	m, _, _ := newTestModule(t, http.StatusOK, `{}`)

	result, err := m.handleGetEconomicSeries(context.Background(), callRequest("get_economic_series", map[string]interface{}{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "series_id")
}

func TestGetSeriesInfo(t *testing.T) {
	m, query, path := newTestModule(t, http.StatusOK, `{"seriess":[{"id":"GDP","title":"Gross Domestic Product"}]}`)

	result, err := m.handleGetSeriesInfo(context.Background(), callRequest("get_series_info", map[string]interface{}{
		"series_id": "GDP",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "/series", *path)
	assert.Equal(t, "GDP", query.Get("series_id"))
	assert.Contains(t, resultText(t, result), "Gross Domestic Product")
}

func TestGetSeriesInfoMissingSeriesID(t *testing.T) {
	m, _, _ := newTestModule(t, http.StatusOK, `{}`)

	result, err := m.handleGetSeriesInfo(context.Background(), callRequest("get_series_info", map[string]interface{}{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "series_id")
}

func TestUpstream500YieldsErrorResult(t *testing.T) {
	m, _, _ := newTestModule(t, http.StatusInternalServerError, `{"error_message":"internal"}`)

	result, err := m.handleGetSeriesInfo(context.Background(), callRequest("get_series_info", map[string]interface{}{
		"series_id": "GDP",
	}))
	require.NoError(t, err, "upstream failures must not escape as handler errors")
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "500")
	assert.Contains(t, resultText(t, result), "get_series_info")
}

func TestMalformedUpstreamJSONYieldsErrorResult(t *testing.T) {
	m, _, _ := newTestModule(t, http.StatusOK, `not json at all`)

	result, err := m.handleSearchEconomicData(context.Background(), callRequest("search_economic_data", map[string]interface{}{
		"search_text": "gdp",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "decode")
}
