package docs

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/cmd/version"
	"github.com/econtools/fred-mcp-server/pkg/config"
	"github.com/econtools/fred-mcp-server/pkg/fred"
	categoriesModule "github.com/econtools/fred-mcp-server/pkg/modules/categories"
	releasesModule "github.com/econtools/fred-mcp-server/pkg/modules/releases"
	seriesModule "github.com/econtools/fred-mcp-server/pkg/modules/series"
	"github.com/econtools/fred-mcp-server/pkg/resources"
)

// Collector collects tool information from all enabled modules
type Collector struct {
	config *config.Config
	client *fred.Client
	logger *zap.Logger
}

// NewCollector creates a new docs collector
func NewCollector(cfg *config.Config, client *fred.Client, logger *zap.Logger) *Collector {
	return &Collector{
		config: cfg,
		client: client,
		logger: logger,
	}
}

// CollectToolsInfo collects tool information from all enabled modules
func (c *Collector) CollectToolsInfo() ToolsInfoResponse {
	var tools []ToolInfo
	var enabledModules []string

	versionInfo := version.Get()

	if c.config.Series.Enabled {
		enabledModules = append(enabledModules, "series")
		tools = append(tools, c.collectSeriesTools()...)
	}

	if c.config.Categories.Enabled {
		enabledModules = append(enabledModules, "categories")
		tools = append(tools, c.collectCategoriesTools()...)
	}

	if c.config.Releases.Enabled {
		enabledModules = append(enabledModules, "releases")
		tools = append(tools, c.collectReleasesTools()...)
	}

	return ToolsInfoResponse{
		Service:    "fred-mcp-server",
		Version:    versionInfo.Version,
		TotalTools: len(tools),
		Modules:    enabledModules,
		Tools:      tools,
		Resources:  collectResources(),
	}
}

func (c *Collector) collectSeriesTools() []ToolInfo {
	seriesConfig := &seriesModule.Config{
		Tools: seriesModule.ToolsConfig{
			Prefix: c.config.Series.Tools.Prefix,
			Suffix: c.config.Series.Tools.Suffix,
		},
	}

	m, err := seriesModule.New(seriesConfig, c.client, c.logger)
	if err != nil {
		c.logger.Error("Failed to create series module for docs", zap.Error(err))
		return nil
	}

	return convertServerTools(m.GetTools(), "series")
}

func (c *Collector) collectCategoriesTools() []ToolInfo {
	categoriesConfig := &categoriesModule.Config{
		Tools: categoriesModule.ToolsConfig{
			Prefix: c.config.Categories.Tools.Prefix,
			Suffix: c.config.Categories.Tools.Suffix,
		},
	}

	m, err := categoriesModule.New(categoriesConfig, c.client, c.logger)
	if err != nil {
		c.logger.Error("Failed to create categories module for docs", zap.Error(err))
		return nil
	}

	return convertServerTools(m.GetTools(), "categories")
}

func (c *Collector) collectReleasesTools() []ToolInfo {
	releasesConfig := &releasesModule.Config{
		Tools: releasesModule.ToolsConfig{
			Prefix: c.config.Releases.Tools.Prefix,
			Suffix: c.config.Releases.Tools.Suffix,
		},
	}

	m, err := releasesModule.New(releasesConfig, c.client, c.logger)
	if err != nil {
		c.logger.Error("Failed to create releases module for docs", zap.Error(err))
		return nil
	}

	return convertServerTools(m.GetTools(), "releases")
}

func collectResources() []ResourceInfo {
	var infos []ResourceInfo
	for _, serverResource := range resources.GetResources() {
		infos = append(infos, ResourceInfo{
			URI:         serverResource.Resource.URI,
			Name:        serverResource.Resource.Name,
			Description: serverResource.Resource.Description,
		})
	}
	return infos
}

func convertServerTools(serverTools []server.ServerTool, module string) []ToolInfo {
	var tools []ToolInfo
	for _, serverTool := range serverTools {
		tools = append(tools, ToolInfo{
			Name:        serverTool.Tool.Name,
			Description: serverTool.Tool.Description,
			Parameters:  convertToolParameters(serverTool.Tool.InputSchema),
			Module:      module,
		})
	}
	return tools
}

// convertToolParameters converts MCP tool input schema to a more readable format
func convertToolParameters(inputSchema interface{}) map[string]interface{} {
	params := make(map[string]interface{})

	// Convert the inputSchema to JSON first, then parse it as a map
	schemaBytes, err := json.Marshal(inputSchema)
	if err != nil {
		return params
	}

	var schemaMap map[string]interface{}
	if err := json.Unmarshal(schemaBytes, &schemaMap); err != nil {
		return params
	}

	if properties, exists := schemaMap["properties"]; exists {
		if propsMap, ok := properties.(map[string]interface{}); ok {
			for paramName, paramDef := range propsMap {
				if paramDefMap, ok := paramDef.(map[string]interface{}); ok {
					paramInfo := map[string]interface{}{
						"type": paramDefMap["type"],
					}

					if description, exists := paramDefMap["description"]; exists {
						paramInfo["description"] = description
					}

					// Check if parameter is required
					if required, exists := schemaMap["required"]; exists {
						if requiredList, ok := required.([]interface{}); ok {
							for _, req := range requiredList {
								if reqStr, ok := req.(string); ok && reqStr == paramName {
									paramInfo["required"] = true
									break
								}
							}
						}
					}

					params[paramName] = paramInfo
				}
			}
		}
	}

	return params
}
