package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dockwatch/agent/internal/engine"
)

// defaultLogTail is the tail-line count used when the caller does not supply one.
const defaultLogTail = 100

func (s *Server) handleContainers(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	outcome := eng.Containers(c.Request.Context(), c.Query("name_filter"))
	c.JSON(http.StatusOK, gin.H{"containers": outcome.Value})
}

func (s *Server) handleContainerMetrics(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	outcome := eng.ContainerMetrics(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, outcome.Value)
}

func (s *Server) handleHostMetrics(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	outcome := eng.HostMetrics(c.Request.Context())
	c.JSON(http.StatusOK, outcome.Value)
}

func (s *Server) handleContainerAction(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	var body struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required"})
		return
	}

	result := eng.PerformAction(c.Request.Context(), c.Param("id"), body.Action)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleContainerLogs(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	tail := defaultLogTail
	if raw := c.Query("tail"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tail parameter"})
			return
		}
		tail = parsed
	}

	logs := eng.Logs(c.Request.Context(), c.Param("id"), tail)
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (s *Server) handleInfo(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	info, err := eng.RuntimeInfo(c.Request.Context())
	if err != nil {
		// info reports failure in-band at 200 rather than degrading to a
		// zero-value payload like the metrics operations
		c.JSON(http.StatusOK, gin.H{"error": fmt.Sprintf("Failed to get Docker info: %v", err)})
		return
	}

	c.JSON(http.StatusOK, info)
}

func (s *Server) handleMonitoredContainers(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	names := c.Query("names")
	if names == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "names query parameter is required"})
		return
	}

	result := eng.MonitoredContainers(c.Request.Context(), engine.ParsePatterns(names))
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleMonitoredMetrics(c *gin.Context) {
	eng, ok := s.engine(c)
	if !ok {
		return
	}

	names := c.Query("names")
	if names == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "names query parameter is required"})
		return
	}

	result := eng.MonitoredMetrics(c.Request.Context(), engine.ParsePatterns(names))
	c.JSON(http.StatusOK, result)
}
