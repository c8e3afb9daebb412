package task

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domaintask "github.com/avelar/taskhub/internal/domain/task"
	projectsvc "github.com/avelar/taskhub/internal/service/project"
	tasksvc "github.com/avelar/taskhub/internal/service/task"
	"github.com/avelar/taskhub/internal/transport/auth"
)

const taskKey = "task.id"

func Register(rg *gin.RouterGroup, svc *tasksvc.Service, projects *projectsvc.Service) {
	rg.POST("/", createTask(svc, projects))

	viewer := rg.Group("/:id", requireProjectMember(svc, projects))
	viewer.GET("", getTask(svc))
	viewer.GET("/assignees", listAssignees(svc))

	editor := rg.Group("/:id", requireOwnerOrAssignee(svc))
	editor.PATCH("", updateTask(svc))
	editor.DELETE("", deleteTask(svc))
	editor.POST("/assignees", addAssignee(svc))
	editor.DELETE("/assignees/:userId", removeAssignee(svc))
}

// requireProjectMember aborts unless the caller belongs to the task's project.
func requireProjectMember(svc *tasksvc.Service, projects *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
			return
		}

		t, _, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domaintask.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		member, err := projects.IsMember(c.Request.Context(), t.ProjectID, auth.UserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !member {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a project member"})
			return
		}

		c.Set(taskKey, id)
		c.Next()
	}
}

// requireOwnerOrAssignee aborts unless the caller is assigned to the task or
// owns its project.
func requireOwnerOrAssignee(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
			return
		}

		allowed, err := svc.IsOwnerOrAssignee(c.Request.Context(), id, auth.UserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not an assignee or project owner"})
			return
		}

		c.Set(taskKey, id)
		c.Next()
	}
}

func taskID(c *gin.Context) uuid.UUID {
	return c.MustGet(taskKey).(uuid.UUID)
}

type createTaskReq struct {
	ProjectID   string     `json:"project_id" binding:"required,uuid"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

func createTask(svc *tasksvc.Service, projects *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTaskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		projectID := uuid.MustParse(req.ProjectID)

		member, err := projects.IsMember(c.Request.Context(), projectID, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !member {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a project member"})
			return
		}

		t, err := svc.Create(c.Request.Context(), projectID, auth.UserID(c), req.Title, req.Description, req.DueDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

func getTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, assignees, err := svc.Get(c.Request.Context(), taskID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if assignees == nil {
			assignees = []domaintask.Assignee{}
		}
		c.JSON(http.StatusOK, gin.H{"task": t, "assignees": assignees})
	}
}

type updateTaskReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

func updateTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateTaskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		upd := domaintask.Update{
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
		}
		if req.Status != nil {
			status := domaintask.Status(*req.Status)
			upd.Status = &status
		}

		t, err := svc.Update(c.Request.Context(), taskID(c), auth.UserID(c), upd)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, t)
		case errors.Is(err, tasksvc.ErrNothingToUpdate), errors.Is(err, tasksvc.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domaintask.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func deleteTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		title, err := svc.Delete(c.Request.Context(), taskID(c), auth.UserID(c))
		if err != nil {
			if errors.Is(err, domaintask.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "task deleted", "title": title})
	}
}

func listAssignees(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		assigned, available, err := svc.Assignees(c.Request.Context(), taskID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if assigned == nil {
			assigned = []domaintask.Assignee{}
		}
		if available == nil {
			available = []domaintask.Assignee{}
		}
		c.JSON(http.StatusOK, gin.H{"assigned": assigned, "available": available})
	}
}

type addAssigneeReq struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

func addAssignee(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addAssigneeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := svc.AddAssignee(c.Request.Context(), taskID(c), auth.UserID(c), uuid.MustParse(req.UserID))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "assignee added"})
		case errors.Is(err, tasksvc.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, tasksvc.ErrNotMember):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domaintask.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func removeAssignee(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		err = svc.RemoveAssignee(c.Request.Context(), taskID(c), userID)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "assignee removed"})
		case errors.Is(err, tasksvc.ErrNotAssigned):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}
