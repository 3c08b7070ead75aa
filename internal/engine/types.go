// Package engine orchestrates the adaptive-practice pipeline: it owns
// the user and item state, runs the full attempt-processing sequence
// (counters, ability, ratings, mastery, exposure), and exposes item
// selection, difficulty adaptation, skill-gap analysis, and analytics
// to the transport layer.
package engine

import (
	"sync/atomic"
	"time"
)

// Profile defaults for lazily created records.
const (
	DefaultStdErr         = 1.0
	DefaultDiscrimination = 1.0

	// StopTesting fires when the ability estimate is precise enough
	// or the user has answered enough items.
	StopStdErr   = 0.3
	StopAttempts = 20

	// Ability re-estimation window and gate.
	abilityWindow     = 10
	minAbilitySamples = 3
)

// UserProfile is the per-user skill state. Created lazily on first
// reference and mutated only by ProcessAttempt.
type UserProfile struct {
	UserID          string             `json:"user_id"`
	Ability         float64            `json:"ability"`        // θ, nominal [-4,4]
	AbilityStdErr   float64            `json:"ability_stderr"` // ≥ 0
	Rating          float64            `json:"rating"`         // Elo, [800,2400]
	ConceptMastery  map[string]float64 `json:"concept_mastery"`
	AttemptsTotal   int                `json:"attempts_total"`
	AttemptsCorrect int                `json:"attempts_correct"`
	LastUpdated     time.Time          `json:"last_updated"`
}

func (p *UserProfile) clone() *UserProfile {
	cp := *p
	cp.ConceptMastery = make(map[string]float64, len(p.ConceptMastery))
	for k, v := range p.ConceptMastery {
		cp.ConceptMastery[k] = v
	}
	return &cp
}

// Item holds the calibration parameters for one practice item.
// Difficulty and discrimination are on the IRT θ scale; ExposureCount
// is incremented once per processed attempt and only ever grows.
type Item struct {
	ItemID         string   `json:"item_id"`
	Difficulty     float64  `json:"difficulty"`
	Discrimination float64  `json:"discrimination"` // > 0
	Rating         float64  `json:"rating"`
	Concepts       []string `json:"concepts"`
	ExposureCount  int64    `json:"exposure_count"`
}

// clone copies field by field: ExposureCount is written atomically by
// concurrent attempt processing, so a wholesale struct copy would race.
func (it *Item) clone() *Item {
	return &Item{
		ItemID:         it.ItemID,
		Difficulty:     it.Difficulty,
		Discrimination: it.Discrimination,
		Rating:         it.Rating,
		Concepts:       append([]string(nil), it.Concepts...),
		ExposureCount:  atomic.LoadInt64(&it.ExposureCount),
	}
}

// Attempt is one graded submission. Append-only; never mutated.
type Attempt struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	ItemID      string             `json:"item_id"`
	Score       float64            `json:"score"`        // partial credit [0,1]
	BinaryScore int                `json:"binary_score"` // 0 or 1
	TimeTakenMs int64              `json:"time_taken"`
	Timestamp   time.Time          `json:"timestamp"`
	HintsUsed   int                `json:"hints_used"`
	Signals     map[string]float64 `json:"signals,omitempty"`
}

// Correct reports whether the attempt passed outright.
func (a *Attempt) Correct() bool { return a.BinaryScore == 1 }

// AttemptResult is the consistent state snapshot returned after an
// attempt has been processed.
type AttemptResult struct {
	Ability        float64            `json:"ability"`
	AbilityStdErr  float64            `json:"ability_stderr"`
	Rating         float64            `json:"rating"`
	ConceptMastery map[string]float64 `json:"concept_mastery"`
	StopTesting    bool               `json:"stop_testing"`
	Accuracy       float64            `json:"accuracy"`
}

// ConceptScore pairs a concept with its current mastery, for
// strengths/weaknesses reporting.
type ConceptScore struct {
	Concept string  `json:"concept"`
	Mastery float64 `json:"mastery"`
}

// Analytics is the per-user summary exposed to dashboards.
type Analytics struct {
	UserID            string         `json:"user_id"`
	Ability           float64        `json:"ability"`
	AbilityStdErr     float64        `json:"ability_stderr"`
	Rating            float64        `json:"rating"`
	PercentileRank    float64        `json:"percentile_rank"` // among all known users, 0..100
	OverallMastery    float64        `json:"overall_mastery"`
	Accuracy          float64        `json:"accuracy"`
	AttemptsTotal     int            `json:"attempts_total"`
	CurrentDifficulty float64        `json:"current_difficulty"`
	Strengths         []ConceptScore `json:"strengths"`  // mastery > 0.8, top 5
	Weaknesses        []ConceptScore `json:"weaknesses"` // mastery < 0.5, bottom 5
}

// Stats counts the engine's state, for the stats command.
type Stats struct {
	Users         int   `json:"users"`
	Items         int   `json:"items"`
	TotalAttempts int64 `json:"total_attempts"`
}
