package releases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/fred"
)

// defaultLimit is applied when the caller omits the limit argument
const defaultLimit = 100

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Config contains releases module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// Module represents the releases module
type Module struct {
	config *Config
	client *fred.Client
	logger *zap.Logger
}

// New creates a new releases module
func New(config *Config, client *fred.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("releases config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fred client is required")
	}

	m := &Module{
		config: config,
		client: client,
		logger: logger.Named("releases"),
	}

	return m, nil
}

// GetTools returns all MCP tools for the releases module
func (m *Module) GetTools() []server.ServerTool {
	toolsConfig := GetDefaultToolsConfig()
	return m.BuildTools(toolsConfig)
}

// Tool handlers

// handleGetReleases routes on the presence of release_id: without it all
// releases are listed, with it a single release is fetched.
func (m *Module) handleGetReleases(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var result map[string]interface{}
	var err error
	if _, ok := args["release_id"]; ok {
		releaseID := request.GetInt("release_id", 0)
		result, err = m.client.Release(ctx, releaseID)
	} else {
		limit := request.GetInt("limit", defaultLimit)
		result, err = m.client.Releases(ctx, limit)
	}
	if err != nil {
		m.logger.Warn("Releases fetch failed", zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("get_releases failed: %v", err)), nil
	}

	return marshalResult(result)
}

func (m *Module) handleGetReleaseSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	releaseID, err := request.RequireInt("release_id")
	if err != nil {
		return mcp.NewToolResultError("release_id is required"), nil
	}
	limit := request.GetInt("limit", defaultLimit)

	result, err := m.client.ReleaseSeries(ctx, releaseID, limit)
	if err != nil {
		m.logger.Warn("Release series fetch failed", zap.Int("release_id", releaseID), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("get_release_series failed: %v", err)), nil
	}

	return marshalResult(result)
}

func (m *Module) handleGetReleaseDates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	releaseID, err := request.RequireInt("release_id")
	if err != nil {
		return mcp.NewToolResultError("release_id is required"), nil
	}

	opts := fred.ReleaseDateOptions{
		StartDate: request.GetString("start_date", ""),
		EndDate:   request.GetString("end_date", ""),
		Limit:     request.GetInt("limit", defaultLimit),
	}

	result, err := m.client.ReleaseDates(ctx, releaseID, opts)
	if err != nil {
		m.logger.Warn("Release dates fetch failed", zap.Int("release_id", releaseID), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("get_release_dates failed: %v", err)), nil
	}

	return marshalResult(result)
}

// marshalResult renders the upstream payload as indented JSON text content
func marshalResult(payload map[string]interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
