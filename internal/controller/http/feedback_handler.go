package http

import (
	"net/http"

	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUseCase usecase.FeedbackUseCase
	logger          *logger.Logger
}

func NewFeedbackHandler(feedbackUseCase usecase.FeedbackUseCase, logger *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUseCase: feedbackUseCase,
		logger:          logger,
	}
}

type CreateFeedbackRequest struct {
	Comment        string `json:"comment" binding:"required"`
	AuthorName     string `json:"authorName"`
	RequiresAction bool   `json:"requiresAction"`
}

type UpdateFeedbackRequest struct {
	Comment        *string `json:"comment"`
	RequiresAction *bool   `json:"requiresAction"`
	IsRead         *bool   `json:"isRead"`
}

// CreateFeedback godoc
// @Summary      Leave feedback on a submission
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Param        request body CreateFeedbackRequest true "Feedback"
// @Success      201  {object}  entity.Feedback
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/submissions/{id}/feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	fb, err := h.feedbackUseCase.CreateFeedback(c.Param("id"), userID, req.AuthorName, usecase.CreateFeedbackInput{
		Comment:        req.Comment,
		RequiresAction: req.RequiresAction,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create feedback on %s: %v", c.Param("id"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

// ListFeedback godoc
// @Summary      List feedback for a submission
// @Tags         feedback
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /submissions/{id}/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	items, err := h.feedbackUseCase.ListFeedback(c.Param("id"))
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to list feedback for %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": items, "count": len(items)})
}

// UpdateFeedback godoc
// @Summary      Update a feedback entry
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Feedback ID"
// @Param        request body UpdateFeedbackRequest true "Fields to update"
// @Success      200  {object}  entity.Feedback
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/feedback/{id} [patch]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := h.feedbackUseCase.UpdateFeedback(c.Param("id"), usecase.UpdateFeedbackInput{
		Comment:        req.Comment,
		RequiresAction: req.RequiresAction,
		IsRead:         req.IsRead,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update feedback %s: %v", c.Param("id"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, fb)
}

// DeleteFeedback godoc
// @Summary      Delete a feedback entry
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Feedback ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	if err := h.feedbackUseCase.DeleteFeedback(c.Param("id")); err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to delete feedback %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
