package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/companyinfo-backend/internal/platform/apierr"
	"github.com/yungbote/companyinfo-backend/internal/validation"
)

const InternalErrorMessage = "An unexpected error occurred. Please try again later."

type APIError struct {
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes err using its status and code. Anything that is not
// an *apierr.Error, and every 5xx, is answered with the generic message so
// store details never reach the client.
func RespondAPIError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil || ae.Status >= http.StatusInternalServerError {
		RespondInternal(c)
		return
	}
	RespondError(c, ae.Status, ae.Code, ae.Err)
}

func RespondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{
		Error: APIError{
			Message: InternalErrorMessage,
			Code:    "internal_error",
		},
	})
}

func RespondValidation(c *gin.Context, v validation.Violations) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{
			Message:    "One or more validation errors occurred.",
			Code:       "validation_failed",
			Violations: v,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, location string, payload any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
