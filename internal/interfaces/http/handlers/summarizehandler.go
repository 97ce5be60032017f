package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogsummarizer/internal/application/summary/dto"
	"blogsummarizer/internal/application/summary/usecases"
	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/errors"
	"blogsummarizer/internal/shared/logger"
	"blogsummarizer/internal/shared/utils"
	"blogsummarizer/internal/shared/utils/logutil"
)

// SummarizeHandler serves the summarize operation and saved-summary lookups.
type SummarizeHandler struct {
	summarizeUC  summarizeUseCase
	getSummaryUC getSummaryUseCase
	logger       logger.Interface
}

func NewSummarizeHandler(
	summarizeUC summarizeUseCase,
	getSummaryUC getSummaryUseCase,
	logger logger.Interface,
) *SummarizeHandler {
	return &SummarizeHandler{
		summarizeUC:  summarizeUC,
		getSummaryUC: getSummaryUC,
		logger:       logger,
	}
}

// Summarize handles POST /api/summarize
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req dto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid summarize request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInputError("Invalid request body."))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("summarize request received",
		"url", logutil.TruncateForLog(req.URL, constants.LogPreviewLength),
		"text_length", len(req.Text),
		"request_id", c.GetString(constants.ContextKeyRequestID),
	)

	result, err := h.summarizeUC.Execute(c.Request.Context(), usecases.SummarizeCommand{
		URL:  req.URL,
		Text: req.Text,
	})
	if err != nil {
		_ = c.Error(err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.SummarizeResponse{
		Success:           true,
		Summary:           result.Summary,
		SummaryTranslated: result.SummaryTranslated,
		RecordID:          result.RecordID,
		Warnings:          result.Warnings,
	})
}

// GetSummary handles GET /api/summaries/:id
func (h *SummarizeHandler) GetSummary(c *gin.Context) {
	result, err := h.getSummaryUC.Execute(c.Request.Context(), usecases.GetSummaryQuery{
		RecordID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.SummaryRecordResponse{
		Success:           true,
		RecordID:          result.RecordID,
		URL:               result.SourceURL,
		OriginalText:      result.OriginalText,
		Summary:           result.Summary,
		SummaryTranslated: result.SummaryTranslated,
		CreatedAt:         result.CreatedAt,
		Store:             result.Store,
	})
}
