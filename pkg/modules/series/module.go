package series

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/fred"
)

// Default limits applied when the caller omits the limit argument
const (
	defaultSearchLimit       = 10
	defaultObservationsLimit = 100
)

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Config contains series module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// Module represents the series module
type Module struct {
	config *Config
	client *fred.Client
	logger *zap.Logger
}

// New creates a new series module
func New(config *Config, client *fred.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("series config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fred client is required")
	}

	m := &Module{
		config: config,
		client: client,
		logger: logger.Named("series"),
	}

	return m, nil
}

// GetTools returns all MCP tools for the series module
func (m *Module) GetTools() []server.ServerTool {
	toolsConfig := GetDefaultToolsConfig()
	return m.BuildTools(toolsConfig)
}

// Tool handlers

func (m *Module) handleSearchEconomicData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	searchText, err := request.RequireString("search_text")
	if err != nil {
		return mcp.NewToolResultError("search_text is required"), nil
	}
	limit := request.GetInt("limit", defaultSearchLimit)

	result, err := m.client.SearchSeries(ctx, searchText, limit)
	if err != nil {
		m.logger.Warn("Series search failed", zap.String("search_text", searchText), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("search_economic_data failed: %v", err)), nil
	}

	return marshalResult(result)
}

func (m *Module) handleGetEconomicSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID, err := request.RequireString("series_id")
	if err != nil {
		return mcp.NewToolResultError("series_id is required"), nil
	}

	opts := fred.ObservationOptions{
		StartDate: request.GetString("start_date", ""),
		EndDate:   request.GetString("end_date", ""),
		Limit:     request.GetInt("limit", defaultObservationsLimit),
	}

	result, err := m.client.SeriesObservations(ctx, seriesID, opts)
	if err != nil {
		m.logger.Warn("Series observations fetch failed", zap.String("series_id", seriesID), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("get_economic_series failed: %v", err)), nil
	}

	return marshalResult(result)
}

func (m *Module) handleGetSeriesInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID, err := request.RequireString("series_id")
	if err != nil {
		return mcp.NewToolResultError("series_id is required"), nil
	}

	result, err := m.client.SeriesInfo(ctx, seriesID)
	if err != nil {
		m.logger.Warn("Series info fetch failed", zap.String("series_id", seriesID), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("get_series_info failed: %v", err)), nil
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
