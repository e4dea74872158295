package docs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/config"
	"github.com/econtools/fred-mcp-server/pkg/fred"
)

func newTestCollector(t *testing.T, cfg *config.Config) *Collector {
	t.Helper()

	client, err := fred.NewClient(&fred.Config{APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)
	return NewCollector(cfg, client, zap.NewNop())
}

func toolNames(tools []ToolInfo) []string {
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestCollectToolsInfoAllModulesEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Series.Enabled = true
	cfg.Categories.Enabled = true
	cfg.Releases.Enabled = true

	info := newTestCollector(t, cfg).CollectToolsInfo()

	assert.Equal(t, "fred-mcp-server", info.Service)
	assert.Equal(t, []string{"series", "categories", "releases"}, info.Modules)
	assert.Equal(t, 7, info.TotalTools)
	assert.ElementsMatch(t, []string{
		"search_economic_data", "get_economic_series", "get_series_info",
		"get_categories",
		"get_releases", "get_release_series", "get_release_dates",
	}, toolNames(info.Tools))
}

func TestCollectToolsInfoOnlyEnabledModules(t *testing.T) {
	cfg := &config.Config{}
	cfg.Series.Enabled = true

	info := newTestCollector(t, cfg).CollectToolsInfo()

	assert.Equal(t, []string{"series"}, info.Modules)
	assert.Equal(t, 3, info.TotalTools)
	for _, tool := range info.Tools {
		assert.Equal(t, "series", tool.Module)
	}
}

func TestCollectToolsInfoIncludesResources(t *testing.T) {
	cfg := &config.Config{}

	info := newTestCollector(t, cfg).CollectToolsInfo()

	require.Len(t, info.Resources, 2)
	uris := []string{info.Resources[0].URI, info.Resources[1].URI}
	assert.ElementsMatch(t, []string{"fred://popular-series", "fred://popular-releases"}, uris)
}

func TestCollectToolsInfoParameters(t *testing.T) {
	cfg := &config.Config{}
	cfg.Series.Enabled = true

	info := newTestCollector(t, cfg).CollectToolsInfo()

	var searchTool *ToolInfo
	for i := range info.Tools {
		if info.Tools[i].Name == "search_economic_data" {
			searchTool = &info.Tools[i]
			break
		}
	}
	require.NotNil(t, searchTool)

	searchText, ok := searchTool.Parameters["search_text"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, searchText["required"])

	limit, ok := searchTool.Parameters["limit"].(map[string]interface{})
	require.True(t, ok)
	_, hasRequired := limit["required"]
	assert.False(t, hasRequired, "limit is optional")
}

func TestDocsHandlerServesJSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Series.Enabled = true

	client, err := fred.NewClient(&fred.Config{APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)
	handler := NewHandler(cfg, client, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/mcp/docs", nil)
	rec := httptest.NewRecorder()
	handler.HandleDocs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "search_economic_data")
	assert.Contains(t, rec.Body.String(), "fred://popular-series")
}
