package difficulty

import (
	"math"
	"time"
)

// Config holds the controller tuning constants.
type Config struct {
	MinSamples          int     `yaml:"min_samples"`           // buffered samples required before adapting
	MaxDifficultyChange float64 `yaml:"max_difficulty_change"` // cap on a single base delta
	SuccessTolerance    float64 `yaml:"success_tolerance"`     // dead band around the success target
	WindowSize          int     `yaml:"window_size"`           // attempts per metrics window
}

// DefaultConfig returns the standard controller tuning.
func DefaultConfig() Config {
	return Config{
		MinSamples:          5,
		MaxDifficultyChange: 0.2,
		SuccessTolerance:    0.1,
		WindowSize:          10,
	}
}

// Controller runs adaptation cycles against per-user state.
type Controller struct {
	cfg Config
	now func() time.Time
}

// NewController creates a controller. The clock is fixed to time.Now;
// tests override it via NewControllerAt.
func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, now: time.Now}
}

// NewControllerAt creates a controller with an injected clock.
func NewControllerAt(cfg Config, now func() time.Time) *Controller {
	return &Controller{cfg: cfg, now: now}
}

// Adapt runs one adaptation cycle: compute metrics over the window,
// buffer the composite score, decide whether to adapt, and apply a
// bounded adjustment. An Event is always returned; Adapted is false
// when the controller held steady.
func (c *Controller) Adapt(state *State, window []Sample) Event {
	metrics := ComputeMetrics(window)

	state.PerformanceBuffer = append(state.PerformanceBuffer, CompositeScore(metrics))
	if len(state.PerformanceBuffer) > BufferCap {
		state.PerformanceBuffer = state.PerformanceBuffer[len(state.PerformanceBuffer)-BufferCap:]
	}

	trigger := c.decide(state, metrics)

	event := Event{
		UserID:        state.UserID,
		Timestamp:     c.now(),
		OldDifficulty: state.CurrentDifficulty,
		NewDifficulty: state.CurrentDifficulty,
		Trigger:       trigger,
		Reason:        trigger.String(),
		Metrics:       metrics,
		Confidence:    state.ConfidenceLevel,
	}

	if trigger == TriggerNone {
		return event
	}

	adjustment := c.adjustment(state, metrics, trigger)
	state.CurrentDifficulty = clamp(state.CurrentDifficulty+adjustment, DifficultyMin, DifficultyMax)

	state.LastAdjustments = append(state.LastAdjustments, adjustment)
	if len(state.LastAdjustments) > AdjustmentCap {
		state.LastAdjustments = state.LastAdjustments[len(state.LastAdjustments)-AdjustmentCap:]
	}

	// Confidence rises when recent adjustments agree in magnitude.
	if len(state.LastAdjustments) >= 3 {
		recent := state.LastAdjustments[len(state.LastAdjustments)-3:]
		magnitudes := make([]float64, len(recent))
		for i, a := range recent {
			magnitudes[i] = math.Abs(a)
		}
		consistency := clamp(1.0-stdev(magnitudes), 0, 1)
		state.ConfidenceLevel = math.Min(1.0, state.ConfidenceLevel+consistency*0.1)
	}

	// Positive velocity speeds up adaptation; otherwise decay it.
	if metrics.LearningVelocity > 0 {
		state.AdaptationRate = math.Min(RateMax, state.AdaptationRate*1.05)
	} else {
		state.AdaptationRate = math.Max(RateMin, state.AdaptationRate*0.95)
	}

	state.LastUpdated = c.now()

	event.Adapted = true
	event.NewDifficulty = state.CurrentDifficulty
	event.Adjustment = adjustment
	event.Confidence = state.ConfidenceLevel
	return event
}

// decide picks the adaptation trigger, or TriggerNone. Fewer than
// MinSamples buffered composite scores always holds steady.
func (c *Controller) decide(state *State, m Metrics) Trigger {
	if len(state.PerformanceBuffer) < c.cfg.MinSamples {
		return TriggerNone
	}

	deviation := m.SuccessRate - state.SuccessTarget
	if math.Abs(deviation) > c.cfg.SuccessTolerance {
		if deviation > 0 {
			return TriggerIncreaseOverperformance
		}
		return TriggerDecreaseUnderperformance
	}

	if m.FrustrationIndicators > 0.7 {
		return TriggerDecreaseFrustration
	}

	if m.SuccessRate > 0.85 && m.ChallengeEngagement < 0.5 && m.AverageAttempts < 1.5 {
		return TriggerIncreaseUnderChallenged
	}

	if m.LearningVelocity < -0.2 {
		return TriggerDecreaseNegativeVelocity
	}

	return TriggerNone
}

// adjustment computes the signed delta for a trigger: proportional to
// the deviation that fired it, capped, then scaled by the adaptation
// rate and a confidence modifier.
func (c *Controller) adjustment(state *State, m Metrics, trigger Trigger) float64 {
	base := 0.0
	switch trigger {
	case TriggerIncreaseOverperformance, TriggerIncreaseUnderChallenged:
		excess := m.SuccessRate - state.SuccessTarget
		base = math.Min(excess*0.5, c.cfg.MaxDifficultyChange)
		if m.ChallengeEngagement > 0.7 && m.ConsistencyScore > 0.7 {
			base *= 1.2
		}
	case TriggerDecreaseFrustration:
		base = -math.Min(0.15, m.FrustrationIndicators*0.2)
	case TriggerDecreaseUnderperformance, TriggerDecreaseNegativeVelocity:
		deficit := state.SuccessTarget - m.SuccessRate
		base = -math.Min(math.Max(deficit, 0)*0.7, c.cfg.MaxDifficultyChange)
	}

	base *= state.AdaptationRate
	base *= 0.5 + 0.5*state.ConfidenceLevel

	// Bound the applied delta by the remaining headroom.
	next := clamp(state.CurrentDifficulty+base, DifficultyMin, DifficultyMax)
	return next - state.CurrentDifficulty
}

// OptimalDifficulty returns the presentation difficulty to aim for,
// nudged by concept mastery when a concept is supplied.
func OptimalDifficulty(state *State, conceptMastery float64, hasConcept bool) float64 {
	d := state.CurrentDifficulty
	if !hasConcept {
		return d
	}
	if conceptMastery > 0.8 {
		d = math.Min(0.9, d+0.1)
	} else if conceptMastery < 0.4 {
		d = math.Max(0.1, d-0.1)
	}
	return d
}
