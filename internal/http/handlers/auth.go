package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/companyinfo-backend/internal/http/response"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/platform/throttle"
	"github.com/yungbote/companyinfo-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	attempts    throttle.Limiter
}

// NewAuthHandler builds the login handler. attempts may be nil to disable
// per-client login throttling.
func NewAuthHandler(log *logger.Logger, authService services.AuthService, attempts throttle.Limiter) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService, attempts: attempts}
}

// POST /login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	client := c.ClientIP()
	if ah.attempts != nil {
		allowed, err := ah.attempts.Hit(ctx, client)
		if err != nil {
			// fail open: the limiter store being down must not lock everyone out
			ah.log.Warn("Login throttle unavailable", "client", client, "error", err)
		} else if !allowed {
			response.RespondError(c, http.StatusTooManyRequests, "too_many_attempts",
				fmt.Errorf("too many login attempts, try again later"))
			return
		}
	}

	token, err := ah.authService.Login(ctx, req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	if err != nil {
		ah.log.Error("Login failed", "error", err)
		response.RespondInternal(c)
		return
	}
	if ah.attempts != nil {
		if err := ah.attempts.Reset(ctx, client); err != nil {
			ah.log.Warn("Login throttle reset failed", "client", client, "error", err)
		}
	}
	response.RespondOK(c, gin.H{
		"token":      token,
		"expires_in": int(ah.authService.GetAccessTTL().Seconds()),
	})
}
