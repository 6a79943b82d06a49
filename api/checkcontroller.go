package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"originbot/extract"
	"originbot/orchestrator"
	"originbot/types"
)

// RegisterCheckRoutes registers originality check endpoints.
func RegisterCheckRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	g := r.Group("/api/check")
	g.POST("/text", handleCheckText(orch))
	g.POST("/pair", handleCheckPair(orch))
	g.POST("/document", handleCheckDocument(orch))
	g.POST("/url", handleCheckURL(orch))
}

// CheckTextRequest represents a free-form chat message submission
type CheckTextRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// CheckPairRequest represents an explicit two-part comparison
type CheckPairRequest struct {
	UserID string `json:"user_id" binding:"required"`
	TextA  string `json:"text_a" binding:"required"`
	TextB  string `json:"text_b" binding:"required"`
}

// CheckDocumentRequest represents already-extracted document text
type CheckDocumentRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text"`
}

// CheckURLRequest represents a web page submitted for checking by URL
type CheckURLRequest struct {
	UserID string `json:"user_id" binding:"required"`
	URL    string `json:"url" binding:"required"`
}

// CheckResponse carries the formatted report string; the transport layer
// renders it unmodified.
type CheckResponse struct {
	Reply string `json:"reply"`
}

// handleCheckText routes a plain text submission: "A VS B" comparison or a
// web originality check.
func handleCheckText(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sub := types.NewSubmission(req.UserID, req.Text, types.ChannelText)
		reply := orch.Handle(c.Request.Context(), sub)
		c.JSON(http.StatusOK, CheckResponse{Reply: reply})
	}
}

// handleCheckPair compares two explicit texts directly
func handleCheckPair(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckPairRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		reply := orch.Compare(req.UserID, req.TextA, req.TextB)
		c.JSON(http.StatusOK, CheckResponse{Reply: reply})
	}
}

// handleCheckDocument feeds extracted document text into the pair session
func handleCheckDocument(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sub := types.NewSubmission(req.UserID, req.Text, types.ChannelDocument)
		reply := orch.Handle(c.Request.Context(), sub)
		c.JSON(http.StatusOK, CheckResponse{Reply: reply})
	}
}

// handleCheckURL extracts readable text from a web page, then treats it as
// a document submission.
func handleCheckURL(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckURLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		text, err := extract.FromURL(req.URL)
		if err != nil {
			c.JSON(http.StatusOK, CheckResponse{Reply: "could not read that page: " + err.Error()})
			return
		}
		sub := types.NewSubmission(req.UserID, text, types.ChannelDocument)
		reply := orch.Handle(c.Request.Context(), sub)
		c.JSON(http.StatusOK, CheckResponse{Reply: reply})
	}
}
