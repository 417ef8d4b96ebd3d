package http

import (
	"net/http"

	"bountyboard/internal/entity"
	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUseCase usecase.SubmissionUseCase
	logger            *logger.Logger
}

func NewSubmissionHandler(submissionUseCase usecase.SubmissionUseCase, logger *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
		logger:            logger,
	}
}

type CreateSubmissionRequest struct {
	BriefID        string `json:"briefId" binding:"required"`
	CreatorName    string `json:"creatorName" binding:"required"`
	CreatorEmail   string `json:"creatorEmail" binding:"required,email"`
	CreatorPhone   string `json:"creatorPhone"`
	CreatorHandle  string `json:"creatorHandle"`
	BettingAccount string `json:"bettingAccount"`
	VideoURL       string `json:"videoUrl" binding:"required"`
	VideoKey       string `json:"videoKey"`
	VideoFileName  string `json:"videoFileName"`
	VideoMimeType  string `json:"videoMimeType"`
	VideoSizeBytes int64  `json:"videoSizeBytes"`
}

type ResubmitRequest struct {
	VideoURL       string `json:"videoUrl" binding:"required"`
	VideoKey       string `json:"videoKey"`
	VideoFileName  string `json:"videoFileName"`
	VideoMimeType  string `json:"videoMimeType"`
	VideoSizeBytes int64  `json:"videoSizeBytes"`
}

type UpdateStatusRequest struct {
	Status             entity.SubmissionStatus `json:"status" binding:"required"`
	AllowsResubmission *bool                   `json:"allowsResubmission"`
	ReviewNotes        string                  `json:"reviewNotes"`
}

type UpdatePayoutRequest struct {
	PayoutStatus entity.PayoutStatus `json:"payoutStatus" binding:"required"`
	Notes        string              `json:"notes"`
}

func (input CreateSubmissionRequest) toInput() usecase.CreateSubmissionInput {
	return usecase.CreateSubmissionInput{
		BriefID:        input.BriefID,
		CreatorName:    input.CreatorName,
		CreatorEmail:   input.CreatorEmail,
		CreatorPhone:   input.CreatorPhone,
		CreatorHandle:  input.CreatorHandle,
		BettingAccount: input.BettingAccount,
		VideoURL:       input.VideoURL,
		VideoKey:       input.VideoKey,
		VideoFileName:  input.VideoFileName,
		VideoMimeType:  input.VideoMimeType,
		VideoSizeBytes: input.VideoSizeBytes,
	}
}

// CreateSubmission godoc
// @Summary      Submit a video for a brief
// @Description  Public submission endpoint. The per-creator cap for the brief is enforced atomically.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        request body CreateSubmissionRequest true "Submission data"
// @Success      201  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.submissionUseCase.CreateSubmission(req.toInput())
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create submission: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// Resubmit godoc
// @Summary      Resubmit a rejected video
// @Description  Creates a new version of a NOT_SELECTED submission that was rejected with resubmission allowed.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path string true "Parent submission ID"
// @Param        request body ResubmitRequest true "New video data"
// @Success      201  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /submissions/{id}/resubmit [post]
func (h *SubmissionHandler) Resubmit(c *gin.Context) {
	var req ResubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.submissionUseCase.Resubmit(c.Param("id"), usecase.CreateSubmissionInput{
		VideoURL:       req.VideoURL,
		VideoKey:       req.VideoKey,
		VideoFileName:  req.VideoFileName,
		VideoMimeType:  req.VideoMimeType,
		VideoSizeBytes: req.VideoSizeBytes,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to resubmit %s: %v", c.Param("id"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// GetSubmission godoc
// @Summary      Get a submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Success      200  {object}  entity.Submission
// @Failure      404  {object}  map[string]string
// @Router       /admin/submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	sub, err := h.submissionUseCase.GetSubmission(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListByBrief godoc
// @Summary      List submissions for a brief
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Brief ID"
// @Param        limit query int false "Number of submissions to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/briefs/{id}/submissions [get]
func (h *SubmissionHandler) ListByBrief(c *gin.Context) {
	limit, offset := pagination(c)

	subs, err := h.submissionUseCase.ListByBrief(c.Param("id"), limit, offset)
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to list submissions for brief %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs, "count": len(subs), "offset": offset})
}

// UpdateStatus godoc
// @Summary      Move a submission through review
// @Description  Applies a review transition. Selecting a submission stamps selectedAt and moves payout to PENDING.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/submissions/{id}/status [patch]
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.submissionUseCase.UpdateStatus(c.Param("id"), usecase.ReviewInput{
		Status:             req.Status,
		AllowsResubmission: req.AllowsResubmission,
		ReviewNotes:        req.ReviewNotes,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update submission %s status: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// UpdatePayout godoc
// @Summary      Move a submission through payout
// @Description  Payout transitions only apply to SELECTED submissions and only move forward.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Param        request body UpdatePayoutRequest true "New payout status"
// @Success      200  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/submissions/{id}/payout [patch]
func (h *SubmissionHandler) UpdatePayout(c *gin.Context) {
	var req UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.submissionUseCase.UpdatePayout(c.Param("id"), usecase.PayoutInput{
		PayoutStatus: req.PayoutStatus,
		Notes:        req.Notes,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update submission %s payout: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payout"})
		return
	}

	c.JSON(http.StatusOK, sub)
}
