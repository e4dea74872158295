package categories

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

// CategoriesToolsConfig defines configuration for all tools
type CategoriesToolsConfig struct {
	GetCategories ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() CategoriesToolsConfig {
	return CategoriesToolsConfig{
		GetCategories: ToolConfig{
			Enabled:     true,
			Name:        "get_categories",
			Description: "Get FRED data categories. Returns the root category when no category_id is given, otherwise the children of the given category.",
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
func (m *Module) BuildTools(toolsConfig CategoriesToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	if toolsConfig.GetCategories.Enabled {
		toolName := m.BuildToolName(toolsConfig.GetCategories.Name)
		tools = append(tools, server.ServerTool{
			Tool:    m.buildGetCategoriesToolDefinition(toolsConfig.GetCategories),
			Handler: metrics.WrapToolHandler(m.handleGetCategories, toolName, "categories"),
		})
	}

	return tools
}

func (m *Module) buildGetCategoriesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithNumber("category_id", mcp.Description("Category ID (optional, returns the root category if not specified)")),
	)
}
