package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogsummarizer/internal/application/summary/dto"
	"blogsummarizer/internal/shared/utils"
	"blogsummarizer/internal/shared/version"
)

// HealthHandler reports liveness. Stores are not contacted.
type HealthHandler struct {
	lexicon lexiconSizer
}

func NewHealthHandler(lexicon lexiconSizer) *HealthHandler {
	return &HealthHandler{lexicon: lexicon}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, dto.HealthResponse{
		Status:         "ok",
		LexiconEntries: h.lexicon.Len(),
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, version.Get())
}
