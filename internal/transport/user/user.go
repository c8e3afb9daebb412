package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	passwordsvc "github.com/avelar/taskhub/internal/service/password"
	usersvc "github.com/avelar/taskhub/internal/service/user"
	"github.com/avelar/taskhub/internal/transport/auth"
)

// Register mounts the authenticated profile endpoints.
func Register(rg *gin.RouterGroup, svc *usersvc.Service, passwords *passwordsvc.Service) {
	rg.GET("/me", getProfile(svc))
	rg.PATCH("/me", updateProfile(svc))
	rg.POST("/me/change-password", changePassword(passwords))
}

func getProfile(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.Profile(c.Request.Context(), auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type updateProfileReq struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Avatar       *string `json:"avatar"`
	DeleteAvatar bool    `json:"delete_avatar"`
}

func updateProfile(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		upd := usersvc.ProfileUpdate{
			Name:         req.Name,
			Email:        req.Email,
			Avatar:       req.Avatar,
			DeleteAvatar: req.DeleteAvatar,
		}
		if upd.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		if err := svc.UpdateProfile(c.Request.Context(), auth.UserID(c), upd); err != nil {
			if errors.Is(err, usersvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
	}
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func changePassword(svc *passwordsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req changePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Change(c.Request.Context(), auth.UserID(c), req.CurrentPassword, req.NewPassword); err != nil {
			if errors.Is(err, passwordsvc.ErrWrongPassword) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password updated"})
	}
}
