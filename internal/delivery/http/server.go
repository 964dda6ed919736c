package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/delivery/http/middleware"
	"blogging-service/internal/logger"
	"blogging-service/internal/metrics"
	auth_service "blogging-service/internal/service/auth"
)

type Server struct {
	router       *Router
	authService  auth_service.Service
	metrics      metrics.MetricsProvider
	templatesDir string
	cookieName   string
	address      string
	port         int
	log          *logger.Logger
	server       *http.Server
}

func NewServer(
	router *Router,
	authService auth_service.Service,
	metricsProvider metrics.MetricsProvider,
	templatesDir string,
	cookieName string,
	address string,
	port int,
	log *logger.Logger,
) *Server {
	return &Server{
		router:       router,
		authService:  authService,
		metrics:      metricsProvider,
		templatesDir: templatesDir,
		cookieName:   cookieName,
		address:      address,
		port:         port,
		log:          log,
	}
}

func (s *Server) Run() error {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Metrics(s.metrics))
	engine.Use(middleware.Viewer(s.authService, s.cookieName, s.log))

	engine.LoadHTMLGlob(filepath.Join(s.templatesDir, "*.html"))

	s.router.Register(engine)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
