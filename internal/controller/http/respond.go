package http

import (
	"errors"
	"net/http"
	"strconv"

	"bountyboard/internal/entity"

	"github.com/gin-gonic/gin"
)

// errorStatus maps domain sentinel errors onto HTTP status codes. Anything
// unmapped is the caller's responsibility (usually a 500).
func errorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, entity.ErrSubmissionLimitReached),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrBriefNotOpen),
		errors.Is(err, entity.ErrResubmissionNotAllowed),
		errors.Is(err, entity.ErrPayoutNotSelected),
		errors.Is(err, entity.ErrInviteNotUsable),
		errors.Is(err, entity.ErrInviteExpired):
		return http.StatusBadRequest, true
	case errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrSlugTaken):
		return http.StatusConflict, true
	}
	return 0, false
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	offset = 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}
