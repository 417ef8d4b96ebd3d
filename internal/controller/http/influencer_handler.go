package http

import (
	"net/http"

	"bountyboard/internal/entity"
	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InfluencerHandler struct {
	influencerUseCase usecase.InfluencerUseCase
	logger            *logger.Logger
}

func NewInfluencerHandler(influencerUseCase usecase.InfluencerUseCase, logger *logger.Logger) *InfluencerHandler {
	return &InfluencerHandler{
		influencerUseCase: influencerUseCase,
		logger:            logger,
	}
}

type ApplyRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	InstagramHandle string `json:"instagramHandle"`
	TikTokHandle    string `json:"tiktokHandle"`
	YouTubeChannel  string `json:"youtubeChannel"`
	InviteCode      string `json:"inviteCode"`
}

type UpdateInfluencerRequest struct {
	Status       *entity.InfluencerStatus `json:"status"`
	IDVerified   *bool                    `json:"idVerified"`
	BankVerified *bool                    `json:"bankVerified"`
	Notes        *string                  `json:"notes"`
}

// Apply godoc
// @Summary      Apply as an influencer
// @Description  Public application endpoint. An invite code, when supplied, must be pending and unexpired.
// @Tags         influencers
// @Accept       json
// @Produce      json
// @Param        request body ApplyRequest true "Application data"
// @Success      201  {object}  entity.Influencer
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /influencers/apply [post]
func (h *InfluencerHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inf, err := h.influencerUseCase.Apply(usecase.ApplyInfluencerInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		InstagramHandle: req.InstagramHandle,
		TikTokHandle:    req.TikTokHandle,
		YouTubeChannel:  req.YouTubeChannel,
		InviteCode:      req.InviteCode,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to process influencer application: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, inf)
}

// GetInfluencer godoc
// @Summary      Get an influencer
// @Tags         influencers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Influencer ID"
// @Success      200  {object}  entity.Influencer
// @Failure      404  {object}  map[string]string
// @Router       /admin/influencers/{id} [get]
func (h *InfluencerHandler) GetInfluencer(c *gin.Context) {
	inf, err := h.influencerUseCase.GetInfluencer(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Influencer not found"})
		return
	}
	c.JSON(http.StatusOK, inf)
}

// ListInfluencers godoc
// @Summary      List influencers
// @Tags         influencers
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status" Enums(pending, approved, rejected, suspended)
// @Param        limit query int false "Number of influencers to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/influencers [get]
func (h *InfluencerHandler) ListInfluencers(c *gin.Context) {
	limit, offset := pagination(c)
	status := entity.InfluencerStatus(c.Query("status"))

	items, err := h.influencerUseCase.ListInfluencers(status, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list influencers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch influencers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"influencers": items, "count": len(items), "offset": offset})
}

// UpdateInfluencer godoc
// @Summary      Update an influencer
// @Description  Vetting transitions: pending -> approved/rejected, approved <-> suspended. Rejected is terminal.
// @Tags         influencers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Influencer ID"
// @Param        request body UpdateInfluencerRequest true "Fields to update"
// @Success      200  {object}  entity.Influencer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/influencers/{id} [patch]
func (h *InfluencerHandler) UpdateInfluencer(c *gin.Context) {
	var req UpdateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inf, err := h.influencerUseCase.UpdateInfluencer(c.Param("id"), usecase.UpdateInfluencerInput{
		Status:       req.Status,
		IDVerified:   req.IDVerified,
		BankVerified: req.BankVerified,
		Notes:        req.Notes,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update influencer %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update influencer"})
		return
	}

	c.JSON(http.StatusOK, inf)
}
