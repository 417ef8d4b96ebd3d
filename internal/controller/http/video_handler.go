package http

import (
	"net/http"

	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	SizeBytes   int64  `json:"sizeBytes"`
}

// GetUploadURL godoc
// @Summary      Get a presigned video upload URL
// @Description  Returns a time-limited PUT URL so creators upload videos directly to object storage.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body UploadURLRequest true "File metadata"
// @Success      200  {object}  usecase.UploadURLResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/upload-url [post]
func (h *VideoHandler) GetUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.videoUseCase.GetUploadURL(req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		h.logger.Error("Failed to presign upload URL: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
