package notification

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelar/taskhub/internal/metrics"
	notifsvc "github.com/avelar/taskhub/internal/service/notification"
	"github.com/avelar/taskhub/internal/sse"
	"github.com/avelar/taskhub/internal/transport/auth"
)

func Register(rg *gin.RouterGroup, svc *notifsvc.Service, registry *sse.Registry) {
	rg.GET("/stream", stream(svc, registry))
	rg.POST("/mark-all-read", markAllRead(svc))
}

// stream serves the long-lived notification feed. The first frame carries the
// user's backlog as a JSON array; every later frame is a single live push
// written by the dispatcher. The connection stays open until the client goes
// away.
func stream(svc *notifsvc.Service, registry *sse.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)

		// The backlog loads before registration so a failure here can never
		// leak a registry entry.
		backlog, err := svc.Backlog(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		payload, err := json.Marshal(backlog)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		s, err := sse.NewStream(c.Writer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// The backlog frame goes out before the stream is registered, so a
		// dispatch can never slip a live frame ahead of it. Anything sent in
		// the gap is persisted and shows up in the next backlog.
		if err := s.Send(payload); err != nil {
			return
		}

		registry.Register(userID, s)
		metrics.SSEConnections.Inc()
		defer func() {
			// Unconditional: harmless when this request lost the
			// one-stream-per-user race and was never the tracked entry.
			registry.Deregister(userID)
			metrics.SSEConnections.Dec()
		}()

		<-c.Request.Context().Done()
	}
}

func markAllRead(svc *notifsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkAllSeen(c.Request.Context(), auth.UserID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notifications marked as read"})
	}
}
