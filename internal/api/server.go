// Package api exposes the engine's operations over HTTP. It is a thin
// facade: handlers validate input, call the engine, and append audit
// events; no adaptive logic lives here.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mpetrov/caliber/internal/engine"
	"github.com/mpetrov/caliber/internal/store"
)

// Server wires the engine and the event log to HTTP handlers.
type Server struct {
	engine *engine.Engine
	events store.EventRepo // nil disables audit logging
	log    *zap.Logger
}

// NewServer builds a server around an engine. events may be nil.
func NewServer(eng *engine.Engine, events store.EventRepo, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{engine: eng, events: events, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthcheck", s.health)

	api := router.Group("/api")
	{
		api.POST("/attempts", s.processAttempt)
		api.GET("/stats", s.stats)

		api.PUT("/items/:id", s.calibrateItem)
		api.GET("/items/:id", s.getItem)

		users := api.Group("/users/:id")
		{
			users.GET("", s.getUser)
			users.POST("/next-item", s.nextItem)
			users.GET("/analytics", s.analytics)
			users.GET("/gaps", s.skillGaps)
			users.GET("/assessments", s.assessments)
			users.GET("/improvement-path", s.improvementPath)
			users.POST("/difficulty/adapt", s.adaptDifficulty)
			users.GET("/difficulty", s.difficultyState)
			users.GET("/difficulty/insights", s.difficultyInsights)
			users.GET("/difficulty/optimal", s.optimalDifficulty)
		}
	}

	return router
}

// requestLogger logs one line per request with latency and status.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// appendAttemptEvent writes the audit record for a processed attempt.
// Audit failures are logged, never surfaced to the caller.
func (s *Server) appendAttemptEvent(ctx context.Context, rec engine.Attempt, res engine.AttemptResult) {
	if s.events == nil {
		return
	}
	err := s.events.AppendAttempt(ctx, store.AttemptEventData{
		UserID:      rec.UserID,
		ItemID:      rec.ItemID,
		Score:       rec.Score,
		BinaryScore: rec.BinaryScore,
		TimeTakenMs: rec.TimeTakenMs,
		HintsUsed:   rec.HintsUsed,
		Ability:     res.Ability,
		Rating:      res.Rating,
	})
	if err != nil {
		s.log.Warn("append attempt event", zap.Error(err))
	}
}
