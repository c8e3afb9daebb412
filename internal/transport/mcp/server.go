package mcp

import (
	"crypto/subtle"
	"net/http"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	projectsvc "github.com/avelar/taskhub/internal/service/project"
	tasksvc "github.com/avelar/taskhub/internal/service/task"
	usersvc "github.com/avelar/taskhub/internal/service/user"
)

// Server exposes a read-only MCP surface for automation clients: they can
// inspect projects and tasks but never mutate them. Tools are registered in
// tools.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
	secret  string
}

func New(secret string, projects *projectsvc.Service, tasks *tasksvc.Service, users *usersvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"taskhub",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	RegisterTools(mcpSrv, projects, tasks, users)

	return &Server{
		httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv),
		secret:  secret,
	}
}

// Handler returns the MCP endpoint guarded by the shared-secret bearer check.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(raw), []byte(s.secret)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		s.httpSrv.ServeHTTP(w, r)
	})
}
