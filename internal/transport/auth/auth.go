package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	porttoken "github.com/avelar/taskhub/internal/port/token"
	authsvc "github.com/avelar/taskhub/internal/service/auth"
)

// identityKey is where Required stores the authenticated user ID on the gin context.
const identityKey = "auth.user_id"

// Required rejects requests without a valid Bearer token and stores the
// token's user ID on the context for handlers downstream.
func Required(tokens porttoken.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(identityKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by Required.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(identityKey).(uuid.UUID)
}

func Register(rg *gin.RouterGroup, svc *authsvc.Service) {
	rg.POST("/signup", signUp(svc))
	rg.POST("/login", logIn(svc))
}

type signUpReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func signUp(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		u, token, err := svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
	}
}

type logInReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func logIn(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req logInReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
