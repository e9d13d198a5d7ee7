package controller

import (
	"strconv"

	"quiz_arena_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id route parameter. On failure it has already
// written the 422 response.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.ValidationError(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}
