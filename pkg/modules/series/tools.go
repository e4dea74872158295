package series

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/econtools/fred-mcp-server/pkg/metrics"
)

// ToolConfig defines configuration for a single tool
type ToolConfig struct {
	Enabled     bool   // Whether the tool is enabled
	Name        string // Tool name
	Description string // Tool description
}

// SeriesToolsConfig defines configuration for all tools
type SeriesToolsConfig struct {
	SearchEconomicData ToolConfig
	GetEconomicSeries  ToolConfig
	GetSeriesInfo      ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() SeriesToolsConfig {
	return SeriesToolsConfig{
		SearchEconomicData: ToolConfig{
			Enabled:     true,
			Name:        "search_economic_data",
			Description: "Search for economic data series in the FRED database by text in titles and descriptions.",
		},
		GetEconomicSeries: ToolConfig{
			Enabled:     true,
			Name:        "get_economic_series",
			Description: "Get observations for a specific economic data series (e.g. 'GDP', 'UNRATE', 'CPIAUCSL'), optionally bounded by a date range.",
		},
		GetSeriesInfo: ToolConfig{
			Enabled:     true,
			Name:        "get_series_info",
			Description: "Get detailed information about an economic data series: title, units, frequency, seasonal adjustment and notes.",
		},
	}
}

// BuildToolName builds tool name based on configuration
func (m *Module) BuildToolName(baseName string) string {
	toolName := baseName
	if m.config.Tools.Prefix != "" {
		toolName = m.config.Tools.Prefix + toolName
	}
	if m.config.Tools.Suffix != "" {
		toolName = toolName + m.config.Tools.Suffix
	}
	return toolName
}

// BuildTools builds tool list based on configuration
func (m *Module) BuildTools(toolsConfig SeriesToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	// Search Tool
	if toolsConfig.SearchEconomicData.Enabled {
		toolName := m.BuildToolName(toolsConfig.SearchEconomicData.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildSearchEconomicDataToolDefinition(toolsConfig.SearchEconomicData),
			Handler: metrics.WrapToolHandler(m.handleSearchEconomicData, toolName, "series"),
		})
	}

	// Observations Tool
	if toolsConfig.GetEconomicSeries.Enabled {
		toolName := m.BuildToolName(toolsConfig.GetEconomicSeries.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildGetEconomicSeriesToolDefinition(toolsConfig.GetEconomicSeries),
			Handler: metrics.WrapToolHandler(m.handleGetEconomicSeries, toolName, "series"),
		})
	}

	// Series Info Tool
	if toolsConfig.GetSeriesInfo.Enabled {
		toolName := m.BuildToolName(toolsConfig.GetSeriesInfo.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildGetSeriesInfoToolDefinition(toolsConfig.GetSeriesInfo),
			Handler: metrics.WrapToolHandler(m.handleGetSeriesInfo, toolName, "series"),
		})
	}

	return tools
}

// Tool definition builder methods

func (m *Module) buildSearchEconomicDataToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("search_text", mcp.Required(), mcp.Description("Text to search for in series titles and descriptions")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results to return (default: 10)")),
	)
}

func (m *Module) buildGetEconomicSeriesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("series_id", mcp.Required(), mcp.Description("FRED series ID (e.g. 'GDP', 'UNRATE', 'CPIAUCSL')")),
		mcp.WithString("start_date", mcp.Description("Start date in YYYY-MM-DD format (optional)")),
		mcp.WithString("end_date", mcp.Description("End date in YYYY-MM-DD format (optional)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of observations to return (default: 100)")),
	)
}

func (m *Module) buildGetSeriesInfoToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("series_id", mcp.Required(), mcp.Description("FRED series ID")),
	)
}
