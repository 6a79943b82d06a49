package api

import (
	"github.com/gin-gonic/gin"

	"originbot/orchestrator"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(orch *orchestrator.Orchestrator) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterCheckRoutes(r, orch)
	RegisterStatsRoutes(r, orch)
	RegisterHealthRoutes(r, orch)
	return r
}
