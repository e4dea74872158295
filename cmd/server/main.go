package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/server"

	"github.com/econtools/fred-mcp-server/cmd/version"
	"github.com/econtools/fred-mcp-server/pkg/config"
	"github.com/econtools/fred-mcp-server/pkg/docs"
	"github.com/econtools/fred-mcp-server/pkg/fred"
	"github.com/econtools/fred-mcp-server/pkg/metrics"
	categoriesModule "github.com/econtools/fred-mcp-server/pkg/modules/categories"
	releasesModule "github.com/econtools/fred-mcp-server/pkg/modules/releases"
	seriesModule "github.com/econtools/fred-mcp-server/pkg/modules/series"
	"github.com/econtools/fred-mcp-server/pkg/resources"
)

var (
	cfgFile string
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fred-mcp-server",
	Short: "FRED MCP Server - economic data tools for agent clients",
	Long:  `An MCP server exposing the Federal Reserve Economic Data (FRED) API as tools for querying series, categories and releases.`,
	Run:   runServer,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Configuration flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("host", "0.0.0.0", "Server host")
	rootCmd.PersistentFlags().Int("port", 3000, "Server port")
	rootCmd.PersistentFlags().String("mode", "stdio", "Server mode: stdio or http")
	rootCmd.PersistentFlags().Bool("admin", false, "Enable admin HTTP server (/healthz, /metrics, /mcp/docs)")
	rootCmd.PersistentFlags().Int("admin-port", 9090, "Admin HTTP server port")

	// Module flags with different names to avoid conflicts
	rootCmd.PersistentFlags().Bool("enable-series", true, "Enable series module")
	rootCmd.PersistentFlags().Bool("enable-categories", true, "Enable categories module")
	rootCmd.PersistentFlags().Bool("enable-releases", true, "Enable releases module")

	// Bind flags to viper with unique keys
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("server.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("server.mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("admin.enabled", rootCmd.PersistentFlags().Lookup("admin"))
	viper.BindPFlag("admin.port", rootCmd.PersistentFlags().Lookup("admin-port"))
	viper.BindPFlag("cli.series.enabled", rootCmd.PersistentFlags().Lookup("enable-series"))
	viper.BindPFlag("cli.categories.enabled", rootCmd.PersistentFlags().Lookup("enable-categories"))
	viper.BindPFlag("cli.releases.enabled", rootCmd.PersistentFlags().Lookup("enable-releases"))
}

func initConfig() {
	// A .env file is honored when present
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("series.enabled", true)
	viper.SetDefault("categories.enabled", true)
	viper.SetDefault("releases.enabled", true)
	viper.SetDefault("admin.host", "0.0.0.0")
	viper.SetDefault("admin.port", 9090)

	viper.AutomaticEnv()
	viper.BindEnv("fred.api_key", "FRED_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	// Initialize logger
	var err error
	logLevel := viper.GetString("log.level")
	switch logLevel {
	case "debug":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	defer logger.Sync()

	// Load configuration
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Fatal("Failed to unmarshal config", zap.Error(err))
	}

	// Override module enablement with CLI flags if provided
	if viper.IsSet("cli.series.enabled") {
		cfg.Series.Enabled = viper.GetBool("cli.series.enabled")
	}
	if viper.IsSet("cli.categories.enabled") {
		cfg.Categories.Enabled = viper.GetBool("cli.categories.enabled")
	}
	if viper.IsSet("cli.releases.enabled") {
		cfg.Releases.Enabled = viper.GetBool("cli.releases.enabled")
	}

	serverMode := cfg.Server.Mode
	if serverMode == "" {
		serverMode = "stdio"
	}

	logger.Info("Starting FRED MCP Server",
		zap.String("version", version.Short()),
		zap.String("mode", serverMode),
		zap.Bool("series_enabled", cfg.Series.Enabled),
		zap.Bool("categories_enabled", cfg.Categories.Enabled),
		zap.Bool("releases_enabled", cfg.Releases.Enabled),
	)

	// Initialize metrics
	appMetrics := metrics.Init(logger)
	metrics.SetBuildInfo(version.BuildVersion, version.GitCommitID, version.BuildDate)
	metrics.StartSystemMetricsCollector(logger)

	// A missing API key is a configuration error and fatal at startup
	fredClient, err := fred.NewClient(&fred.Config{
		APIKey:  cfg.Fred.APIKey,
		BaseURL: cfg.Fred.BaseURL,
		Timeout: cfg.Fred.Timeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create FRED client", zap.Error(err))
	}

	// Create MCP server
	mcpServer := server.NewMCPServer("fred-mcp-server", version.BuildVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	// Register modules based on configuration
	var toolCount int

	if cfg.Series.Enabled {
		module, err := seriesModule.New(&seriesModule.Config{
			Tools: seriesModule.ToolsConfig{
				Prefix: cfg.Series.Tools.Prefix,
				Suffix: cfg.Series.Tools.Suffix,
			},
		}, fredClient, logger)
		if err != nil {
			logger.Fatal("Failed to create series module", zap.Error(err))
		}
		seriesTools := module.GetTools()
		for _, serverTool := range seriesTools {
			mcpServer.AddTool(serverTool.Tool, serverTool.Handler)
			toolCount++
		}
		logger.Info("Series module enabled", zap.Int("tools", len(seriesTools)))
	}
	appMetrics.SetModuleEnabled("series", cfg.Series.Enabled)

	if cfg.Categories.Enabled {
		module, err := categoriesModule.New(&categoriesModule.Config{
			Tools: categoriesModule.ToolsConfig{
				Prefix: cfg.Categories.Tools.Prefix,
				Suffix: cfg.Categories.Tools.Suffix,
			},
		}, fredClient, logger)
		if err != nil {
			logger.Fatal("Failed to create categories module", zap.Error(err))
		}
		categoriesTools := module.GetTools()
		for _, serverTool := range categoriesTools {
			mcpServer.AddTool(serverTool.Tool, serverTool.Handler)
			toolCount++
		}
		logger.Info("Categories module enabled", zap.Int("tools", len(categoriesTools)))
	}
	appMetrics.SetModuleEnabled("categories", cfg.Categories.Enabled)

	if cfg.Releases.Enabled {
		module, err := releasesModule.New(&releasesModule.Config{
			Tools: releasesModule.ToolsConfig{
				Prefix: cfg.Releases.Tools.Prefix,
				Suffix: cfg.Releases.Tools.Suffix,
			},
		}, fredClient, logger)
		if err != nil {
			logger.Fatal("Failed to create releases module", zap.Error(err))
		}
		releasesTools := module.GetTools()
		for _, serverTool := range releasesTools {
			mcpServer.AddTool(serverTool.Tool, serverTool.Handler)
			toolCount++
		}
		logger.Info("Releases module enabled", zap.Int("tools", len(releasesTools)))
	}
	appMetrics.SetModuleEnabled("releases", cfg.Releases.Enabled)

	// Register static resources
	serverResources := resources.GetResources()
	for _, serverResource := range serverResources {
		mcpServer.AddResource(serverResource.Resource, serverResource.Handler)
	}
	logger.Info("Resources registered", zap.Int("resources", len(serverResources)))

	if toolCount == 0 {
		logger.Warn("No modules enabled, server will have no tools available")
	} else {
		logger.Info("Server initialized", zap.Int("total_tools", toolCount))
	}

	// Start admin HTTP server if enabled
	if cfg.Admin.Enabled {
		startAdminServer(&cfg, fredClient)
	}

	// Start server based on mode
	switch serverMode {
	case "stdio":
		logger.Info("Starting server in stdio mode")
		if err := server.ServeStdio(mcpServer); err != nil {
			logger.Fatal("Stdio server failed", zap.Error(err))
		}
	case "http":
		streamableServer := server.NewStreamableHTTPServer(mcpServer)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting server in HTTP mode", zap.String("address", addr))

		if err := streamableServer.Start(addr); err != nil {
			logger.Fatal("HTTP server failed to start", zap.Error(err))
		}
	default:
		logger.Fatal("Invalid server mode", zap.String("mode", serverMode), zap.Strings("valid_modes", []string{"stdio", "http"}))
	}
}

// startAdminServer serves /healthz, /metrics and /mcp/docs on a side port
func startAdminServer(cfg *config.Config, fredClient *fred.Client) {
	router := chi.NewRouter()
	router.Use(metrics.HTTPMetricsMiddleware)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", metrics.Handler())
	router.Get("/mcp/docs", docs.NewHandler(cfg, fredClient, logger).HandleDocs)

	addr := fmt.Sprintf("%s:%d", cfg.Admin.Host, cfg.Admin.Port)
	logger.Info("Starting admin server", zap.String("address", addr))

	go func() {
		if err := http.ListenAndServe(addr, router); err != nil {
			logger.Error("Admin server failed", zap.Error(err))
		}
	}()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
