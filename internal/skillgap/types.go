// Package skillgap identifies weak concepts and prioritizes them by
// how much they block progress through the concept hierarchy.
package skillgap

import "time"

// Observation is one graded attempt attributed to a concept.
type Observation struct {
	Concept   string
	Score     float64 // partial credit in [0,1]
	Correct   bool
	Timestamp time.Time
}

// Assessment is the derived skill level for one concept.
type Assessment struct {
	Concept         string    `json:"concept"`
	Mastery         float64   `json:"mastery"` // recency-weighted
	ConfidenceLow   float64   `json:"confidence_low"`
	ConfidenceHigh  float64   `json:"confidence_high"`
	SampleSize      int       `json:"sample_size"`
	ProgressionRate float64   `json:"progression_rate"`
	StabilityScore  float64   `json:"stability_score"`
	LastAssessed    time.Time `json:"last_assessed"`
}

// Gap is a prioritized weak or missing concept. Derived, never
// persisted.
type Gap struct {
	Concept              string   `json:"concept"`
	GapSeverity          float64  `json:"gap_severity"` // [0,1], 1 = critical
	CurrentLevel         float64  `json:"current_level"`
	TargetLevel          float64  `json:"target_level"`
	BlockingDependencies []string `json:"blocking_dependencies"` // concepts that build on this one
	PrerequisiteGaps     []string `json:"prerequisite_gaps"`
	ImpactScore          float64  `json:"impact_score"`
	TimeInvestmentHours  int      `json:"time_investment_hours"`
}

// Path is a prerequisite-ordered learning sequence toward a target
// concept.
type Path struct {
	TargetConcept string   `json:"target_concept"`
	Sequence      []string `json:"sequence"`
	TotalHours    int      `json:"total_hours"`
}

// Config holds the assessment thresholds.
type Config struct {
	MinSamples        int     `yaml:"min_samples"`        // attempts required per concept
	MasteryThreshold  float64 `yaml:"mastery_threshold"`  // target mastery level
	SeverityThreshold float64 `yaml:"severity_threshold"` // minimum severity to report a gap
	RecencyWeightDays float64 `yaml:"recency_weight_days"`
}

// DefaultConfig returns the standard assessment thresholds.
func DefaultConfig() Config {
	return Config{
		MinSamples:        3,
		MasteryThreshold:  0.7,
		SeverityThreshold: 0.6,
		RecencyWeightDays: 30,
	}
}
