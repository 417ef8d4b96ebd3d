package http

import (
	"net/http"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BriefHandler struct {
	briefUseCase usecase.BriefUseCase
	logger       *logger.Logger
}

func NewBriefHandler(briefUseCase usecase.BriefUseCase, logger *logger.Logger) *BriefHandler {
	return &BriefHandler{
		briefUseCase: briefUseCase,
		logger:       logger,
	}
}

type CreateBriefRequest struct {
	Title                    string             `json:"title" binding:"required"`
	OrgName                  string             `json:"orgName" binding:"required"`
	Description              string             `json:"description"`
	Requirements             []string           `json:"requirements"`
	Deliverable              entity.Deliverable `json:"deliverable"`
	Reward                   entity.Reward      `json:"reward" binding:"required"`
	Deadline                 *time.Time         `json:"deadline"`
	MaxWinners               int                `json:"maxWinners"`
	MaxSubmissionsPerCreator int                `json:"maxSubmissionsPerCreator"`
}

type UpdateBriefRequest struct {
	Title                    *string             `json:"title"`
	Description              *string             `json:"description"`
	Requirements             []string            `json:"requirements"`
	Deliverable              *entity.Deliverable `json:"deliverable"`
	Reward                   *entity.Reward      `json:"reward"`
	Deadline                 *time.Time          `json:"deadline"`
	Status                   *entity.BriefStatus `json:"status"`
	MaxWinners               *int                `json:"maxWinners"`
	MaxSubmissionsPerCreator *int                `json:"maxSubmissionsPerCreator"`
}

// CreateBrief godoc
// @Summary      Create a new brief
// @Description  Create a brief in DRAFT status. The slug is generated from the title.
// @Tags         briefs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBriefRequest true "Brief data"
// @Success      201  {object}  entity.Brief
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/briefs [post]
func (h *BriefHandler) CreateBrief(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brief, err := h.briefUseCase.CreateBrief(userID, usecase.CreateBriefInput{
		Title:                    req.Title,
		OrgName:                  req.OrgName,
		Description:              req.Description,
		Requirements:             req.Requirements,
		Deliverable:              req.Deliverable,
		Reward:                   req.Reward,
		Deadline:                 req.Deadline,
		MaxWinners:               req.MaxWinners,
		MaxSubmissionsPerCreator: req.MaxSubmissionsPerCreator,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create brief: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, brief)
}

// GetBriefBySlug godoc
// @Summary      Get a published brief
// @Description  Public brief page lookup by slug
// @Tags         briefs
// @Produce      json
// @Param        slug path string true "Brief slug"
// @Success      200  {object}  entity.Brief
// @Failure      404  {object}  map[string]string
// @Router       /briefs/{slug} [get]
func (h *BriefHandler) GetBriefBySlug(c *gin.Context) {
	brief, err := h.briefUseCase.GetBriefBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brief not found"})
		return
	}

	// Unpublished briefs are invisible on the public surface.
	if brief.Status != entity.BriefStatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brief not found"})
		return
	}

	c.JSON(http.StatusOK, brief)
}

// ListBriefs godoc
// @Summary      List published briefs
// @Tags         briefs
// @Produce      json
// @Param        limit query int false "Number of briefs to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /briefs [get]
func (h *BriefHandler) ListBriefs(c *gin.Context) {
	limit, offset := pagination(c)

	briefs, err := h.briefUseCase.ListPublished(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list briefs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch briefs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"briefs": briefs, "count": len(briefs), "offset": offset})
}

// ListAllBriefs godoc
// @Summary      List all briefs
// @Description  Admin listing including drafts and archived briefs
// @Tags         briefs
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of briefs to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/briefs [get]
func (h *BriefHandler) ListAllBriefs(c *gin.Context) {
	limit, offset := pagination(c)

	briefs, err := h.briefUseCase.ListAll(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list all briefs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch briefs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"briefs": briefs, "count": len(briefs), "offset": offset})
}

// GetBrief godoc
// @Summary      Get a brief by ID
// @Tags         briefs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Brief ID"
// @Success      200  {object}  entity.Brief
// @Failure      404  {object}  map[string]string
// @Router       /admin/briefs/{id} [get]
func (h *BriefHandler) GetBrief(c *gin.Context) {
	brief, err := h.briefUseCase.GetBrief(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brief not found"})
		return
	}
	c.JSON(http.StatusOK, brief)
}

// UpdateBrief godoc
// @Summary      Update a brief
// @Description  Update brief fields. Status changes follow the DRAFT -> PUBLISHED -> ARCHIVED lifecycle.
// @Tags         briefs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Brief ID"
// @Param        request body UpdateBriefRequest true "Fields to update"
// @Success      200  {object}  entity.Brief
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/briefs/{id} [patch]
func (h *BriefHandler) UpdateBrief(c *gin.Context) {
	var req UpdateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brief, err := h.briefUseCase.UpdateBrief(c.Param("id"), usecase.UpdateBriefInput{
		Title:                    req.Title,
		Description:              req.Description,
		Requirements:             req.Requirements,
		Deliverable:              req.Deliverable,
		Reward:                   req.Reward,
		Deadline:                 req.Deadline,
		Status:                   req.Status,
		MaxWinners:               req.MaxWinners,
		MaxSubmissionsPerCreator: req.MaxSubmissionsPerCreator,
	})
	if err != nil {
		if status, ok := errorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update brief %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brief"})
		return
	}

	c.JSON(http.StatusOK, brief)
}
