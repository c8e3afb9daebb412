package transport

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	porttoken "github.com/avelar/taskhub/internal/port/token"
	authsvc "github.com/avelar/taskhub/internal/service/auth"
	notifsvc "github.com/avelar/taskhub/internal/service/notification"
	passwordsvc "github.com/avelar/taskhub/internal/service/password"
	projectsvc "github.com/avelar/taskhub/internal/service/project"
	tasksvc "github.com/avelar/taskhub/internal/service/task"
	usersvc "github.com/avelar/taskhub/internal/service/user"
	"github.com/avelar/taskhub/internal/sse"

	authhandler "github.com/avelar/taskhub/internal/transport/auth"
	mcptransport "github.com/avelar/taskhub/internal/transport/mcp"
	notifhandler "github.com/avelar/taskhub/internal/transport/notification"
	projecthandler "github.com/avelar/taskhub/internal/transport/project"
	taskhandler "github.com/avelar/taskhub/internal/transport/task"
	userhandler "github.com/avelar/taskhub/internal/transport/user"
)

// Deps carries everything the router mounts.
type Deps struct {
	Tokens      porttoken.Manager
	AuthSvc     *authsvc.Service
	PasswordSvc *passwordsvc.Service
	UserSvc     *usersvc.Service
	ProjectSvc  *projectsvc.Service
	TaskSvc     *tasksvc.Service
	NotifSvc    *notifsvc.Service
	Registry    *sse.Registry
	MCPServer   *mcptransport.Server
	RateLimit   float64
	RateBurst   int
}

func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Only the credential endpoints are rate limited; everything else sits
	// behind a bearer token already.
	authRoutes := api.Group("/auth", RateLimit(deps.RateLimit, deps.RateBurst))
	authhandler.Register(authRoutes, deps.AuthSvc)
	authhandler.RegisterReset(authRoutes, deps.PasswordSvc)

	authed := api.Group("", authhandler.Required(deps.Tokens))
	userhandler.Register(authed.Group("/users"), deps.UserSvc, deps.PasswordSvc)
	projecthandler.Register(authed.Group("/projects"), deps.ProjectSvc)
	taskhandler.Register(authed.Group("/tasks"), deps.TaskSvc, deps.ProjectSvc)
	notifhandler.Register(authed.Group("/notifications"), deps.NotifSvc, deps.Registry)

	if deps.MCPServer != nil {
		api.Any("/mcp", gin.WrapH(deps.MCPServer.Handler()))
	}

	return r
}
