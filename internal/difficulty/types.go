// Package difficulty implements the closed-loop controller that
// retunes a per-user target difficulty from rolling performance
// metrics.
package difficulty

import "time"

const (
	// DifficultyMin and DifficultyMax bound the target difficulty.
	DifficultyMin = 0.05
	DifficultyMax = 0.95

	// RateMin and RateMax bound the adaptation rate.
	RateMin = 0.05
	RateMax = 0.2

	// BufferCap is the capacity of the composite-score ring buffer.
	BufferCap = 10
	// AdjustmentCap is how many applied deltas are retained.
	AdjustmentCap = 5

	// DefaultDifficulty is the starting target for a new user.
	DefaultDifficulty = 0.3
	// DefaultSuccessTarget is the success rate the controller steers toward.
	DefaultSuccessTarget = 0.7
)

// Trigger identifies why an adaptation fired. Branching on triggers is
// always done against these values, never against the human-readable
// reason text.
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerIncreaseOverperformance
	TriggerDecreaseUnderperformance
	TriggerDecreaseFrustration
	TriggerIncreaseUnderChallenged
	TriggerDecreaseNegativeVelocity
)

// String returns the human-readable reason for a trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerNone:
		return "no adaptation needed"
	case TriggerIncreaseOverperformance:
		return "success rate above target - increase difficulty"
	case TriggerDecreaseUnderperformance:
		return "success rate below target - decrease difficulty"
	case TriggerDecreaseFrustration:
		return "high frustration detected - decrease difficulty"
	case TriggerIncreaseUnderChallenged:
		return "under-challenged - increase difficulty"
	case TriggerDecreaseNegativeVelocity:
		return "negative learning velocity - decrease difficulty"
	default:
		return "unknown"
	}
}

// Increases reports whether the trigger raises difficulty.
func (t Trigger) Increases() bool {
	return t == TriggerIncreaseOverperformance || t == TriggerIncreaseUnderChallenged
}

// State is the per-user controller state.
type State struct {
	UserID            string    `json:"user_id"`
	CurrentDifficulty float64   `json:"current_difficulty"` // [0.05, 0.95]
	ConfidenceLevel   float64   `json:"confidence_level"`   // [0, 1]
	AdaptationRate    float64   `json:"adaptation_rate"`    // [0.05, 0.2]
	PerformanceBuffer []float64 `json:"performance_buffer"` // ring, cap 10
	LastAdjustments   []float64 `json:"last_adjustments"`   // applied deltas, cap 5
	SuccessTarget     float64   `json:"success_target"`
	LastUpdated       time.Time `json:"last_updated"`
}

// NewState returns controller state for a user with no history.
func NewState(userID string) *State {
	return &State{
		UserID:            userID,
		CurrentDifficulty: DefaultDifficulty,
		ConfidenceLevel:   0.5,
		AdaptationRate:    0.1,
		SuccessTarget:     DefaultSuccessTarget,
		LastUpdated:       time.Now(),
	}
}

// Sample is one attempt summary fed into metric computation. The item
// difficulty is on the engine's [0,1] presentation scale.
type Sample struct {
	ItemID         string
	Correct        bool
	Score          float64 // partial credit in [0,1]
	TimeTakenMs    int64
	ItemDifficulty float64
}

// Metrics aggregates rolling-window performance.
type Metrics struct {
	SuccessRate           float64 `json:"success_rate"`
	AverageAttempts       float64 `json:"average_attempts"`
	TimeEfficiency        float64 `json:"time_efficiency"`
	ErrorRate             float64 `json:"error_rate"`
	LearningVelocity      float64 `json:"learning_velocity"`
	ConsistencyScore      float64 `json:"consistency_score"`
	ChallengeEngagement   float64 `json:"challenge_engagement"`
	FrustrationIndicators float64 `json:"frustration_indicators"`
}

// Event records one adaptation cycle. It is returned even when no
// adaptation occurred, flagged via Adapted.
type Event struct {
	UserID        string    `json:"user_id"`
	Timestamp     time.Time `json:"timestamp"`
	Adapted       bool      `json:"adapted"`
	OldDifficulty float64   `json:"old_difficulty"`
	NewDifficulty float64   `json:"new_difficulty"`
	Adjustment    float64   `json:"adjustment"`
	Trigger       Trigger   `json:"trigger"`
	Reason        string    `json:"reason"`
	Metrics       Metrics   `json:"metrics"`
	Confidence    float64   `json:"confidence"`
}
