package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	passwordsvc "github.com/avelar/taskhub/internal/service/password"
)

// RegisterReset mounts the unauthenticated password reset flow.
func RegisterReset(rg *gin.RouterGroup, svc *passwordsvc.Service) {
	rg.POST("/forgot-password", forgotPassword(svc))
	rg.POST("/reset-password", resetPassword(svc))
}

type forgotReq struct {
	Email string `json:"email" binding:"required,email"`
}

func forgotPassword(svc *passwordsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req forgotReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Forgot(c.Request.Context(), req.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Same response whether or not the email exists.
		c.JSON(http.StatusOK, gin.H{"message": "if the email is registered, a reset link has been sent"})
	}
}

type resetReq struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func resetPassword(svc *passwordsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := uuid.Parse(req.Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
			return
		}

		if err := svc.Reset(c.Request.Context(), token, req.Password); err != nil {
			if errors.Is(err, passwordsvc.ErrInvalidToken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password updated"})
	}
}
