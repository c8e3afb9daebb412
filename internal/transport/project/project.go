package project

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainproject "github.com/avelar/taskhub/internal/domain/project"
	domainuser "github.com/avelar/taskhub/internal/domain/user"
	projectsvc "github.com/avelar/taskhub/internal/service/project"
	"github.com/avelar/taskhub/internal/transport/auth"
)

// projectKey is where the membership middleware stores the parsed project ID.
const projectKey = "project.id"

func Register(rg *gin.RouterGroup, svc *projectsvc.Service) {
	rg.POST("/", createProject(svc))

	member := rg.Group("/:id", requireMember(svc))
	member.GET("", getProject(svc))
	member.DELETE("", deleteOrQuit(svc))
	member.GET("/members", listMembers(svc))
	member.POST("/favorite", toggleFavorite(svc))
	member.POST("/archive", toggleArchive(svc))

	owner := rg.Group("/:id", requireOwner(svc))
	owner.PATCH("", renameProject(svc))
	owner.POST("/members", addMember(svc))
	owner.DELETE("/members/:userId", removeMember(svc))
}

// requireMember aborts unless the authenticated user belongs to the project.
func requireMember(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
			return
		}

		member, err := svc.IsMember(c.Request.Context(), id, auth.UserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !member {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a project member"})
			return
		}

		c.Set(projectKey, id)
		c.Next()
	}
}

// requireOwner aborts unless the authenticated user owns the project.
func requireOwner(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
			return
		}

		owner, err := svc.IsOwner(c.Request.Context(), id, auth.UserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !owner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not the project owner"})
			return
		}

		c.Set(projectKey, id)
		c.Next()
	}
}

func projectID(c *gin.Context) uuid.UUID {
	return c.MustGet(projectKey).(uuid.UUID)
}

type createProjectReq struct {
	Name string `json:"name" binding:"required"`
	Team bool   `json:"is_team_project"`
}

func createProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), auth.UserID(c), req.Name, req.Team)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func getProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Detail(c.Request.Context(), projectID(c), auth.UserID(c))
		if err != nil {
			if errors.Is(err, domainproject.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

type renameReq struct {
	Name string `json:"name" binding:"required"`
}

func renameProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req renameReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Rename(c.Request.Context(), projectID(c), auth.UserID(c), req.Name); err != nil {
			if errors.Is(err, domainproject.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "project renamed"})
	}
}

// deleteOrQuit deletes the project for its owner, or drops the caller's
// membership for everyone else.
func deleteOrQuit(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, name, err := svc.DeleteOrQuit(c.Request.Context(), projectID(c), auth.UserID(c))
		if err != nil {
			if errors.Is(err, domainproject.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if deleted {
			c.JSON(http.StatusOK, gin.H{"message": "project deleted", "name": name})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "left project", "name": name})
	}
}

func listMembers(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Page  int `form:"page,default=1"`
			Limit int `form:"limit,default=10"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		members, total, err := svc.Members(c.Request.Context(), projectID(c), q.Page, q.Limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if members == nil {
			members = []domainproject.MemberProfile{}
		}
		c.JSON(http.StatusOK, gin.H{"members": members, "total": total})
	}
}

type addMemberReq struct {
	Email string `json:"email" binding:"required,email"`
}

func addMember(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addMemberReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := svc.AddMember(c.Request.Context(), projectID(c), req.Email)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "member added"})
		case errors.Is(err, projectsvc.ErrAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domainuser.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no user with that email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func removeMember(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		if err := svc.RemoveMember(c.Request.Context(), projectID(c), userID); err != nil {
			if errors.Is(err, domainproject.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not a project member"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "member removed"})
	}
}

func toggleFavorite(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		favorite, err := svc.ToggleFavorite(c.Request.Context(), projectID(c), auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_favorite": favorite})
	}
}

func toggleArchive(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		archived, err := svc.ToggleArchive(c.Request.Context(), projectID(c), auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_archived": archived})
	}
}
