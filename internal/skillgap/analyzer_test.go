package skillgap

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzerAt(DefaultConfig(), func() time.Time { return testNow })
}

// obs builds n observations for a concept at uniform score, spaced one
// day apart ending yesterday, ordered oldest first.
func obs(concept string, scores ...float64) []Observation {
	out := make([]Observation, len(scores))
	for i, s := range scores {
		out[i] = Observation{
			Concept:   concept,
			Score:     s,
			Correct:   s >= 0.5,
			Timestamp: testNow.Add(-time.Duration(len(scores)-i) * 24 * time.Hour),
		}
	}
	return out
}

func TestAssess_RequiresMinSamples(t *testing.T) {
	a := newTestAnalyzer()
	assessments := a.Assess(obs("loops", 0.5, 0.5))
	if _, ok := assessments["loops"]; ok {
		t.Error("two attempts should not produce an assessment")
	}

	assessments = a.Assess(obs("loops", 0.5, 0.5, 0.5))
	if _, ok := assessments["loops"]; !ok {
		t.Error("three attempts should produce an assessment")
	}
}

func TestAssess_RecencyWeighting(t *testing.T) {
	a := newTestAnalyzer()

	// Old failures, recent successes: weighted mastery should exceed
	// the unweighted mean of 0.5.
	observations := []Observation{
		{Concept: "arrays", Score: 0, Timestamp: testNow.Add(-90 * 24 * time.Hour)},
		{Concept: "arrays", Score: 0, Timestamp: testNow.Add(-80 * 24 * time.Hour)},
		{Concept: "arrays", Score: 1, Correct: true, Timestamp: testNow.Add(-2 * 24 * time.Hour)},
		{Concept: "arrays", Score: 1, Correct: true, Timestamp: testNow.Add(-1 * 24 * time.Hour)},
	}
	assessment := a.Assess(observations)["arrays"]
	if assessment.Mastery <= 0.5 {
		t.Errorf("recency-weighted mastery = %f, want > 0.5", assessment.Mastery)
	}
	if assessment.ConfidenceLow > assessment.Mastery || assessment.ConfidenceHigh < assessment.Mastery {
		t.Errorf("confidence interval [%f, %f] does not bracket mastery %f",
			assessment.ConfidenceLow, assessment.ConfidenceHigh, assessment.Mastery)
	}
}

func TestAssess_ProgressionRate(t *testing.T) {
	a := newTestAnalyzer()
	assessment := a.Assess(obs("loops", 0, 0, 1, 1))["loops"]
	if assessment.ProgressionRate <= 0 {
		t.Errorf("improving scores should give positive progression, got %f", assessment.ProgressionRate)
	}

	assessment = a.Assess(obs("loops", 1, 1, 0, 0))["loops"]
	if assessment.ProgressionRate >= 0 {
		t.Errorf("declining scores should give negative progression, got %f", assessment.ProgressionRate)
	}
}

func TestIdentifyGaps_WeakConceptReported(t *testing.T) {
	a := newTestAnalyzer()
	gaps := a.IdentifyGaps(obs("recursion", 0.1, 0.2, 0.1, 0.2))

	var found *Gap
	for i := range gaps {
		if gaps[i].Concept == "recursion" {
			found = &gaps[i]
		}
	}
	if found == nil {
		t.Fatalf("recursion should be a gap, got %v", gaps)
	}
	if found.GapSeverity < 0.6 {
		t.Errorf("severity = %f, want >= 0.6", found.GapSeverity)
	}
	if found.TargetLevel != 0.7 {
		t.Errorf("target level = %f, want 0.7", found.TargetLevel)
	}
	if found.TimeInvestmentHours <= 0 {
		t.Error("gap should carry a time estimate")
	}
}

func TestIdentifyGaps_MasteredConceptNotReported(t *testing.T) {
	a := newTestAnalyzer()
	gaps := a.IdentifyGaps(obs("loops", 1, 1, 1, 1, 1))
	for _, g := range gaps {
		if g.Concept == "loops" {
			t.Errorf("mastered concept reported as gap: %+v", g)
		}
	}
}

func TestIdentifyGaps_ModerateWeaknessBelowSeverityIgnored(t *testing.T) {
	// Mastery ~0.55: below threshold but severity 0.45 < 0.6.
	a := newTestAnalyzer()
	gaps := a.IdentifyGaps(obs("loops", 0.55, 0.55, 0.55, 0.55))
	for _, g := range gaps {
		if g.Concept == "loops" {
			t.Errorf("moderate weakness should not be a gap: %+v", g)
		}
	}
}

func TestIdentifyGaps_MissingPrerequisite(t *testing.T) {
	a := newTestAnalyzer()
	// Attempts only on a control_flow concept; the basics were never
	// touched, so they surface as severity-1 gaps.
	gaps := a.IdentifyGaps(obs("loops", 0.1, 0.1, 0.1))

	var missing *Gap
	for i := range gaps {
		if gaps[i].Concept == "variables" {
			missing = &gaps[i]
		}
	}
	if missing == nil {
		t.Fatalf("variables should surface as a missing prerequisite, got %v", gaps)
	}
	if missing.GapSeverity != 1.0 {
		t.Errorf("missing prerequisite severity = %f, want 1.0", missing.GapSeverity)
	}
	if missing.CurrentLevel != 0 {
		t.Errorf("missing prerequisite current level = %f, want 0", missing.CurrentLevel)
	}
	if len(missing.BlockingDependencies) == 0 {
		t.Error("missing prerequisite should block the attempted category concepts")
	}
}

func TestIdentifyGaps_SortedByImpact(t *testing.T) {
	a := newTestAnalyzer()
	observations := append(obs("variables", 0.1, 0.1, 0.1), obs("system_design", 0.1, 0.1, 0.1)...)
	gaps := a.IdentifyGaps(observations)
	if len(gaps) < 2 {
		t.Fatalf("expected at least two gaps, got %d", len(gaps))
	}
	for i := 1; i < len(gaps); i++ {
		if gaps[i].ImpactScore > gaps[i-1].ImpactScore {
			t.Errorf("gaps not sorted by impact: %f before %f", gaps[i-1].ImpactScore, gaps[i].ImpactScore)
		}
	}
	// The foundational gap must outrank the specialized one.
	if gaps[0].Concept == "system_design" {
		t.Error("foundational gap should outrank specialized gap")
	}
}

func TestImprovementPath(t *testing.T) {
	a := newTestAnalyzer()
	assessments := a.Assess(obs("variables", 1, 1, 1, 1))

	path := a.ImprovementPath("loops", assessments)
	if path.TargetConcept != "loops" {
		t.Errorf("target = %s", path.TargetConcept)
	}
	if path.Sequence[len(path.Sequence)-1] != "loops" {
		t.Errorf("sequence should end with the target, got %v", path.Sequence)
	}
	for _, c := range path.Sequence {
		if c == "variables" {
			t.Error("mastered prerequisite should be skipped")
		}
	}
	if path.TotalHours <= 0 {
		t.Error("path should carry a time estimate")
	}
}

func TestImpactScore_FavorsFoundational(t *testing.T) {
	low := impactScore("system_design", 0.8, 0)
	high := impactScore("variables", 0.8, 0)
	if high <= low {
		t.Errorf("foundational impact (%f) should exceed specialized (%f)", high, low)
	}
}
