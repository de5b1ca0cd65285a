// Package web provides the staff-ui web server: HTTP serving, routing,
// session handling and the embedded HTML templates.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"strconv"

	"staff-ui/config"
	"staff-ui/logger"
	"staff-ui/util/common"
	"staff-ui/util/random"
	"staff-ui/web/controller"
	"staff-ui/web/middleware"
	"staff-ui/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//go:embed html/*
var htmlFS embed.FS

const sessionName = "staff-ui"

// Server is the staff-ui web server. It owns the database handle and
// injects it into the services at construction.
type Server struct {
	db *gorm.DB

	httpServer *http.Server
	listener   net.Listener

	index    *controller.IndexController
	employee *controller.EmployeeController

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance around an opened database
// handle, with a cancellable context.
func NewServer(db *gorm.DB) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{db: db, ctx: ctx, cancel: cancel}
}

// getHtmlTemplate parses the embedded HTML templates.
func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

// initRouter initializes Gin, registers middleware, templates and
// controllers and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	// Cookie-backed sessions. Without a configured secret each process
	// gets a fresh one, which invalidates sessions across restarts.
	secret := config.GetSessionSecret()
	if secret == "" {
		secret = random.Seq(32)
	}
	store := cookie.NewStore([]byte(secret))
	engine.Use(sessions.Sessions(sessionName, store))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	open := engine.Group("/")
	guarded := engine.Group("/")
	guarded.Use(middleware.RequireLogin())

	s.index = controller.NewIndexController(open, guarded, service.NewUserService(s.db))
	s.employee = controller.NewEmployeeController(guarded, service.NewEmployeeService(s.db))

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
