package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"originbot/orchestrator"
)

// RegisterHealthRoutes registers health check endpoints.
func RegisterHealthRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	r.GET("/api/health", handleHealth(orch))
}

// handleHealth reports liveness plus whether the web search backend is
// configured and how many pair slots are waiting on a second document
func handleHealth(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"search_enabled": orch.SearchEnabled(),
			"pending_pairs":  orch.PendingPairs(),
		})
	}
}
