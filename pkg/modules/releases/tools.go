package releases

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

// ReleasesToolsConfig defines configuration for all tools
type ReleasesToolsConfig struct {
	GetReleases      ToolConfig
	GetReleaseSeries ToolConfig
	GetReleaseDates  ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() ReleasesToolsConfig {
	return ReleasesToolsConfig{
		GetReleases: ToolConfig{
			Enabled:     true,
			Name:        "get_releases",
			Description: "Get all FRED data releases, or detailed information about a specific release when release_id is given.",
		},
		GetReleaseSeries: ToolConfig{
			Enabled:     true,
			Name:        "get_release_series",
			Description: "Get all series belonging to a specific FRED release.",
		},
		GetReleaseDates: ToolConfig{
			Enabled:     true,
			Name:        "get_release_dates",
			Description: "Get publication dates for a specific FRED release, optionally bounded by a date range.",
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
func (m *Module) BuildTools(toolsConfig ReleasesToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	// Releases Tool
	if toolsConfig.GetReleases.Enabled {
		toolName := m.BuildToolName(toolsConfig.GetReleases.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildGetReleasesToolDefinition(toolsConfig.GetReleases),
			Handler: metrics.WrapToolHandler(m.handleGetReleases, toolName, "releases"),
		})
	}

	// Release Series Tool
	if toolsConfig.GetReleaseSeries.Enabled {
		toolName := m.BuildToolName(toolsConfig.GetReleaseSeries.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildGetReleaseSeriesToolDefinition(toolsConfig.GetReleaseSeries),
			Handler: metrics.WrapToolHandler(m.handleGetReleaseSeries, toolName, "releases"),
		})
	}

	// Release Dates Tool
	if toolsConfig.GetReleaseDates.Enabled {
		toolName := m.BuildToolName(toolsConfig.GetReleaseDates.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildGetReleaseDatesToolDefinition(toolsConfig.GetReleaseDates),
			Handler: metrics.WrapToolHandler(m.handleGetReleaseDates, toolName, "releases"),
		})
	}

	return tools
}

// Tool definition builder methods

func (m *Module) buildGetReleasesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithNumber("release_id", mcp.Description("Specific release ID to get detailed information for (optional)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of releases to return (default: 100)")),
	)
}

func (m *Module) buildGetReleaseSeriesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithNumber("release_id", mcp.Required(), mcp.Description("Release ID to get series for")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of series to return (default: 100)")),
	)
}

func (m *Module) buildGetReleaseDatesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithNumber("release_id", mcp.Required(), mcp.Description("Release ID to get dates for")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of dates to return (default: 100)")),
		mcp.WithString("start_date", mcp.Description("Start date for release dates in YYYY-MM-DD format (optional)")),
		mcp.WithString("end_date", mcp.Description("End date for release dates in YYYY-MM-DD format (optional)")),
	)
}
