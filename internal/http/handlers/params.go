package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/companyinfo-backend/internal/http/response"
	"github.com/yungbote/companyinfo-backend/internal/platform/apierr"
)

// intParam parses an integer path parameter. On failure it writes the 400
// and returns false.
func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid_id", fmt.Errorf("%s must be an integer, got %q", name, raw)))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", err))
		return false
	}
	return true
}

func idMismatch(c *gin.Context, pathID, bodyID int) bool {
	if pathID == bodyID {
		return false
	}
	response.RespondAPIError(c, apierr.BadRequest("id_mismatch", fmt.Errorf("path id %d does not match body id %d", pathID, bodyID)))
	return true
}

func notFound(c *gin.Context, what string, id int) {
	response.RespondAPIError(c, apierr.NotFound("not_found", fmt.Errorf("%s %d not found", what, id)))
}
