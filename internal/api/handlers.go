package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mpetrov/caliber/internal/engine"
	"github.com/mpetrov/caliber/internal/store"
)

// POST /api/attempts
func (s *Server) processAttempt(c *gin.Context) {
	var rec engine.Attempt
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rec.UserID == "" || rec.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and item_id are required"})
		return
	}
	if rec.Score < 0 || rec.Score > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be in [0,1]"})
		return
	}
	if rec.BinaryScore != 0 && rec.BinaryScore != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "binary_score must be 0 or 1"})
		return
	}

	res := s.engine.ProcessAttempt(rec)
	s.appendAttemptEvent(c.Request.Context(), rec, res)
	c.JSON(http.StatusOK, res)
}

// POST /api/users/:id/next-item
func (s *Server) nextItem(c *gin.Context) {
	var req engine.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = c.Param("id")

	itemID, ok := s.engine.SelectNextItem(req)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"selected": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": true, "item_id": itemID})
}

// GET /api/users/:id
func (s *Server) getUser(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.GetOrCreateUser(c.Param("id")))
}

// GET /api/users/:id/analytics
func (s *Server) analytics(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.GetUserAnalytics(c.Param("id")))
}

// GET /api/users/:id/gaps
func (s *Server) skillGaps(c *gin.Context) {
	gaps := s.engine.IdentifySkillGaps(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}

// GET /api/users/:id/assessments
func (s *Server) assessments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assessments": s.engine.AssessSkills(c.Param("id"))})
}

// GET /api/users/:id/improvement-path?target=concept
func (s *Server) improvementPath(c *gin.Context) {
	target := c.Query("target")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, s.engine.ImprovementPath(c.Param("id"), target))
}

// POST /api/users/:id/difficulty/adapt
func (s *Server) adaptDifficulty(c *gin.Context) {
	userID := c.Param("id")
	event := s.engine.AdaptDifficulty(userID)

	if s.events != nil {
		err := s.events.AppendAdaptation(c.Request.Context(), store.AdaptationEventData{
			UserID:        userID,
			Adapted:       event.Adapted,
			OldDifficulty: event.OldDifficulty,
			NewDifficulty: event.NewDifficulty,
			Adjustment:    event.Adjustment,
			Trigger:       event.Trigger.String(),
			Reason:        event.Reason,
			Confidence:    event.Confidence,
		})
		if err != nil {
			s.log.Warn("append adaptation event", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, event)
}

// GET /api/users/:id/difficulty
func (s *Server) difficultyState(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.DifficultyState(c.Param("id")))
}

// GET /api/users/:id/difficulty/insights
func (s *Server) difficultyInsights(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.DifficultyInsights(c.Param("id")))
}

// GET /api/users/:id/difficulty/optimal?concept=loops
func (s *Server) optimalDifficulty(c *gin.Context) {
	concept := c.Query("concept")
	if concept == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "concept query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"concept":    concept,
		"difficulty": s.engine.OptimalConceptDifficulty(c.Param("id"), concept),
	})
}

type calibrateRequest struct {
	Difficulty     float64  `json:"difficulty"`
	Discrimination float64  `json:"discrimination"`
	Concepts       []string `json:"concepts"`
}

// PUT /api/items/:id
func (s *Server) calibrateItem(c *gin.Context) {
	var req calibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := s.engine.CalibrateItem(c.Param("id"), req.Difficulty, req.Discrimination, req.Concepts)
	c.JSON(http.StatusOK, item)
}

// GET /api/items/:id
func (s *Server) getItem(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.GetOrCreateItem(c.Param("id"), nil))
}

// GET /api/stats
func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.Stats())
}
