package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"originbot/orchestrator"
)

// RegisterStatsRoutes registers the administrative counters endpoint.
func RegisterStatsRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	r.GET("/api/stats", handleStats(orch))
}

func handleStats(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orch.Stats())
	}
}
