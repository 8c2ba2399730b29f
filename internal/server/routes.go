package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/bitcalc/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps POST /decode request bodies.
const maxBodyBytes = 1 << 20

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": serviceName,
			"version": version,
		})
	})

	if s.cfg.Server.Metrics {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	s.router.POST("/decode", s.handleDecode)
}

func (s *Server) handleDecode(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in pipeline.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	report, err := s.runner.Decode(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
