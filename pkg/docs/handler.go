package docs

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/econtools/fred-mcp-server/pkg/config"
	"github.com/econtools/fred-mcp-server/pkg/fred"
)

// Handler handles documentation requests
type Handler struct {
	collector *Collector
	logger    *zap.Logger
}

// NewHandler creates a new docs handler
func NewHandler(cfg *config.Config, client *fred.Client, logger *zap.Logger) *Handler {
	return &Handler{
		collector: NewCollector(cfg, client, logger),
		logger:    logger,
	}
}

// HandleDocs handles the /mcp/docs endpoint
func (h *Handler) HandleDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	toolsInfo := h.collector.CollectToolsInfo()

	if err := json.NewEncoder(w).Encode(toolsInfo); err != nil {
		h.logger.Error("Failed to encode tools info", zap.Error(err))
	}
}
