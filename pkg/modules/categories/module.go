package categories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/fred"
)

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Config contains categories module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// Module represents the categories module
type Module struct {
	config *Config
	client *fred.Client
	logger *zap.Logger
}

// New creates a new categories module
func New(config *Config, client *fred.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("categories config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fred client is required")
	}

	m := &Module{
		config: config,
		client: client,
		logger: logger.Named("categories"),
	}

	return m, nil
}

// GetTools returns all MCP tools for the categories module
func (m *Module) GetTools() []server.ServerTool {
	toolsConfig := GetDefaultToolsConfig()
	return m.BuildTools(toolsConfig)
}

// handleGetCategories routes on the presence of category_id: without it the
// root category is fetched, with it the children of the given category.
func (m *Module) handleGetCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var result map[string]interface{}
	var err error
	if _, ok := args["category_id"]; ok {
		categoryID := request.GetInt("category_id", 0)
		result, err = m.client.CategoryChildren(ctx, categoryID)
	} else {
		result, err = m.client.RootCategory(ctx)
	}
	if err != nil {
		m.logger.Warn("Categories fetch failed", zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("get_categories failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
