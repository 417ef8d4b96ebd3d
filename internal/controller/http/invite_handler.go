package http

import (
	"net/http"
	"time"

	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	inviteUseCase usecase.InviteUseCase
	logger        *logger.Logger
}

func NewInviteHandler(inviteUseCase usecase.InviteUseCase, logger *logger.Logger) *InviteHandler {
	return &InviteHandler{
		inviteUseCase: inviteUseCase,
		logger:        logger,
	}
}

type CreateInviteRequest struct {
	Email        string `json:"email" binding:"required,email"`
	ExpiresInHrs int    `json:"expiresInHours"`
	SendEmail    bool   `json:"sendEmail"`
}

// CreateInvite godoc
// @Summary      Invite an influencer
// @Description  Generates a unique invite code for the email. Optionally queues an invite email.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateInviteRequest true "Invite data"
// @Success      201  {object}  entity.InfluencerInvite
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := h.inviteUseCase.CreateInvite(c.GetString("user_id"), usecase.CreateInviteInput{
		Email:     req.Email,
		ExpiresIn: time.Duration(req.ExpiresInHrs) * time.Hour,
		SendEmail: req.SendEmail,
	})
	if err != nil {
		h.logger.Error("Failed to create invite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invite"})
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// ListInvites godoc
// @Summary      List invites
// @Tags         invites
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of invites to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/invites [get]
func (h *InviteHandler) ListInvites(c *gin.Context) {
	limit, offset := pagination(c)

	invites, err := h.inviteUseCase.ListInvites(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list invites: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invites": invites, "count": len(invites), "offset": offset})
}
