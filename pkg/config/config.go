package config

// Config represents the complete server configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" json:"log" yaml:"log"`
	Server     ServerConfig     `mapstructure:"server" json:"server" yaml:"server"`
	Admin      AdminConfig      `mapstructure:"admin" json:"admin" yaml:"admin"`
	Fred       FredConfig       `mapstructure:"fred" json:"fred" yaml:"fred"`
	Series     SeriesConfig     `mapstructure:"series" json:"series" yaml:"series"`
	Categories CategoriesConfig `mapstructure:"categories" json:"categories" yaml:"categories"`
	Releases   ReleasesConfig   `mapstructure:"releases" json:"releases" yaml:"releases"`
}

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level"`
}

// ServerConfig contains MCP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host" json:"host" yaml:"host"`
	Port int    `mapstructure:"port" json:"port" yaml:"port"`
	Mode string `mapstructure:"mode" json:"mode" yaml:"mode"`
}

// AdminConfig contains the admin HTTP server configuration (/healthz, /metrics, /mcp/docs)
type AdminConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Host    string `mapstructure:"host" json:"host" yaml:"host"`
	Port    int    `mapstructure:"port" json:"port" yaml:"port"`
}

// FredConfig contains the upstream FRED API configuration.
// APIKey is read from the FRED_API_KEY environment variable and is required.
type FredConfig struct {
	APIKey  string `mapstructure:"api_key" json:"api_key" yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	Timeout int    `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
}

// SeriesConfig contains series module configuration
type SeriesConfig struct {
	Enabled bool        `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Tools   ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// CategoriesConfig contains categories module configuration
type CategoriesConfig struct {
	Enabled bool        `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Tools   ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// ReleasesConfig contains releases module configuration
type ReleasesConfig struct {
	Enabled bool        `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Tools   ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}
