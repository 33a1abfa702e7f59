// Package server exposes the engine over an authenticated HTTP API. It is a
// thin transport: handlers invoke engine operations and serialize the result,
// nothing more.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dockwatch/agent/internal/engine"
	"github.com/dockwatch/agent/internal/version"
)

// Server holds the engine availability handed over at startup and the agent
// authentication token.
type Server struct {
	avail engine.Availability
	token string
	log   *zap.Logger
}

// New constructs the transport around an engine availability value.
func New(avail engine.Availability, token string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{avail: avail, token: token, log: log}
}

// Router builds the gin handler tree. The banner and health endpoints are
// open; every engine-backed route sits behind bearer-token authentication.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	api.GET("/", s.handleRoot)
	api.GET("/health", s.handleHealth)

	authed := api.Group("", s.requireToken())
	authed.GET("/containers", s.handleContainers)
	authed.GET("/containers/:id/metrics", s.handleContainerMetrics)
	authed.GET("/containers/:id/logs", s.handleContainerLogs)
	authed.POST("/containers/:id/action", s.handleContainerAction)
	authed.GET("/metrics", s.handleHostMetrics)
	authed.GET("/info", s.handleInfo)
	authed.GET("/monitored-containers", s.handleMonitoredContainers)
	authed.GET("/monitored-containers/metrics", s.handleMonitoredMetrics)

	return router
}

// engine resolves the availability variant, answering 503 with the recorded
// reason when no engine could be initialized at startup.
func (s *Server) engine(c *gin.Context) (*engine.Engine, bool) {
	eng, ok := s.avail.Engine()
	if !ok {
		reason := s.avail.Reason()
		if reason == "" {
			reason = "Docker client not available"
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": reason})
		return nil, false
	}
	return eng, true
}

func (s *Server) handleRoot(c *gin.Context) {
	_, available := s.avail.Engine()
	c.JSON(http.StatusOK, gin.H{
		"message":          "Dockwatch Agent",
		"version":          version.GetVersion(),
		"status":           "running",
		"docker_available": available,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	eng, ok := s.avail.Engine()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"status":  "unhealthy",
			"docker":  "not_available",
			"message": "Docker client not initialized",
		})
		return
	}

	if err := eng.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "unhealthy",
			"docker":  "connection_failed",
			"message": "Docker connection failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"docker":  "connected",
		"message": "Agent is healthy and Docker is connected",
	})
}
