package difficulty

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

// window builds n samples with uniform outcome, score, and difficulty,
// one per distinct item.
func window(n int, correct bool, score, itemDifficulty float64) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{
			ItemID:         fmt.Sprintf("item-%d", i),
			Correct:        correct,
			Score:          score,
			TimeTakenMs:    45000,
			ItemDifficulty: itemDifficulty,
		}
	}
	return samples
}

func TestAdapt_InsufficientSamplesHoldsSteady(t *testing.T) {
	c := NewControllerAt(DefaultConfig(), fixedClock())
	state := NewState("u1")

	event := c.Adapt(state, window(10, true, 1.0, 0.9))
	if event.Adapted {
		t.Error("first cycle should not adapt (buffer below MinSamples)")
	}
	if event.Trigger != TriggerNone {
		t.Errorf("trigger = %v, want none", event.Trigger)
	}
	if state.CurrentDifficulty != DefaultDifficulty {
		t.Errorf("difficulty moved to %f without adaptation", state.CurrentDifficulty)
	}
}

func TestAdapt_OverperformanceIncreases(t *testing.T) {
	c := NewControllerAt(DefaultConfig(), fixedClock())
	state := NewState("u1")

	var event Event
	for i := 0; i < 6; i++ {
		event = c.Adapt(state, window(10, true, 1.0, 0.9))
	}
	if !event.Adapted {
		t.Fatal("expected adaptation after buffer filled")
	}
	if event.Trigger != TriggerIncreaseOverperformance {
		t.Errorf("trigger = %v, want overperformance increase", event.Trigger)
	}
	if event.NewDifficulty <= event.OldDifficulty {
		t.Errorf("difficulty should rise: %f -> %f", event.OldDifficulty, event.NewDifficulty)
	}
}

func TestAdapt_UnderperformanceDecreases(t *testing.T) {
	c := NewControllerAt(DefaultConfig(), fixedClock())
	state := NewState("u1")

	var event Event
	for i := 0; i < 6; i++ {
		event = c.Adapt(state, window(10, false, 0.1, 0.5))
	}
	if !event.Adapted {
		t.Fatal("expected adaptation")
	}
	if event.Trigger != TriggerDecreaseUnderperformance {
		t.Errorf("trigger = %v, want underperformance decrease", event.Trigger)
	}
	if event.NewDifficulty >= event.OldDifficulty {
		t.Errorf("difficulty should fall: %f -> %f", event.OldDifficulty, event.NewDifficulty)
	}
}

func TestAdapt_BoundsHoldUnderExtremes(t *testing.T) {
	c := NewControllerAt(DefaultConfig(), fixedClock())

	state := NewState("hot")
	for i := 0; i < 50; i++ {
		samples := window(10, true, 1.0, 0.9)
		for j := range samples {
			samples[j].TimeTakenMs = 500 // very fast
		}
		c.Adapt(state, samples)
		if state.CurrentDifficulty > DifficultyMax || state.CurrentDifficulty < DifficultyMin {
			t.Fatalf("difficulty %f escaped bounds at cycle %d", state.CurrentDifficulty, i)
		}
		if state.ConfidenceLevel < 0 || state.ConfidenceLevel > 1 {
			t.Fatalf("confidence %f escaped bounds", state.ConfidenceLevel)
		}
		if state.AdaptationRate < RateMin || state.AdaptationRate > RateMax {
			t.Fatalf("adaptation rate %f escaped bounds", state.AdaptationRate)
		}
	}

	state = NewState("cold")
	for i := 0; i < 50; i++ {
		c.Adapt(state, window(10, false, 0.0, 0.9))
		if state.CurrentDifficulty < DifficultyMin {
			t.Fatalf("difficulty %f fell through floor at cycle %d", state.CurrentDifficulty, i)
		}
	}
}

func TestAdapt_BufferAndAdjustmentCaps(t *testing.T) {
	c := NewControllerAt(DefaultConfig(), fixedClock())
	state := NewState("u1")
	for i := 0; i < 30; i++ {
		c.Adapt(state, window(10, true, 1.0, 0.9))
	}
	if len(state.PerformanceBuffer) > BufferCap {
		t.Errorf("performance buffer grew to %d, cap is %d", len(state.PerformanceBuffer), BufferCap)
	}
	if len(state.LastAdjustments) > AdjustmentCap {
		t.Errorf("adjustments grew to %d, cap is %d", len(state.LastAdjustments), AdjustmentCap)
	}
}

func TestAdapt_EventAlwaysReturned(t *testing.T) {
	c := NewControllerAt(DefaultConfig(), fixedClock())
	state := NewState("u1")

	// Target-band performance: ~70% success, no triggers.
	samples := window(10, true, 1.0, 0.65)
	for i := 7; i < 10; i++ {
		samples[i].Correct = false
		samples[i].Score = 0.2
	}
	for i := 0; i < 8; i++ {
		event := c.Adapt(state, samples)
		if event.Reason == "" {
			t.Error("event must carry a reason even without adaptation")
		}
		if event.OldDifficulty != event.NewDifficulty && !event.Adapted {
			t.Error("difficulty changed but event not flagged as adapted")
		}
	}
}

func TestComputeMetrics_EmptyWindowNeutral(t *testing.T) {
	m := ComputeMetrics(nil)
	if m.SuccessRate != 0.5 || m.AverageAttempts != 1.0 {
		t.Errorf("empty window metrics = %+v, want neutral defaults", m)
	}
}

func TestComputeMetrics_Frustration(t *testing.T) {
	// All failures on the same item: avg attempts > 3, success < 0.3,
	// error rate > 0.7 — every frustration component fires.
	samples := make([]Sample, 8)
	for i := range samples {
		samples[i] = Sample{ItemID: "same", Correct: false, Score: 0, TimeTakenMs: 120000, ItemDifficulty: 0.8}
	}
	m := ComputeMetrics(samples)
	if m.FrustrationIndicators != 1.0 {
		t.Errorf("frustration = %f, want 1.0 (capped)", m.FrustrationIndicators)
	}
}

func TestComputeMetrics_LearningVelocity(t *testing.T) {
	// Most recent 5 all correct, earliest 5 all wrong → velocity 1.
	var samples []Sample
	for i := 0; i < 5; i++ {
		samples = append(samples, Sample{ItemID: fmt.Sprintf("r%d", i), Correct: true, Score: 1, TimeTakenMs: 30000, ItemDifficulty: 0.5})
	}
	for i := 0; i < 5; i++ {
		samples = append(samples, Sample{ItemID: fmt.Sprintf("e%d", i), Correct: false, Score: 0, TimeTakenMs: 30000, ItemDifficulty: 0.5})
	}
	m := ComputeMetrics(samples)
	if math.Abs(m.LearningVelocity-1.0) > 1e-9 {
		t.Errorf("learning velocity = %f, want 1.0", m.LearningVelocity)
	}
}

func TestCompositeScore_Bounds(t *testing.T) {
	high := CompositeScore(Metrics{SuccessRate: 1, TimeEfficiency: 1, LearningVelocity: 1, ConsistencyScore: 1, ChallengeEngagement: 1})
	low := CompositeScore(Metrics{LearningVelocity: -1, FrustrationIndicators: 1})
	if high < 0 || high > 1 || low < 0 || low > 1 {
		t.Errorf("composite scores out of bounds: %f, %f", high, low)
	}
	if high <= low {
		t.Errorf("high composite (%f) should exceed low (%f)", high, low)
	}
}

func TestOptimalDifficulty(t *testing.T) {
	state := NewState("u1")
	state.CurrentDifficulty = 0.5

	if got := OptimalDifficulty(state, 0, false); got != 0.5 {
		t.Errorf("no concept: %f, want base difficulty", got)
	}
	if got := OptimalDifficulty(state, 0.9, true); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("strong concept: %f, want 0.6", got)
	}
	if got := OptimalDifficulty(state, 0.2, true); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("weak concept: %f, want 0.4", got)
	}
}

func TestAnalyzeHistory(t *testing.T) {
	if got := AnalyzeHistory(nil); got.TotalAdaptations != 0 {
		t.Errorf("empty history adaptations = %d", got.TotalAdaptations)
	}

	events := []Event{
		{Adapted: true, NewDifficulty: 0.3, Confidence: 0.5, Trigger: TriggerIncreaseOverperformance},
		{Adapted: false, NewDifficulty: 0.3, Confidence: 0.5, Trigger: TriggerNone},
		{Adapted: true, NewDifficulty: 0.4, Confidence: 0.55, Trigger: TriggerIncreaseOverperformance},
		{Adapted: true, NewDifficulty: 0.5, Confidence: 0.6, Trigger: TriggerDecreaseFrustration},
	}
	insights := AnalyzeHistory(events)
	if insights.TotalAdaptations != 3 {
		t.Errorf("adaptations = %d, want 3 (skipped the held cycle)", insights.TotalAdaptations)
	}
	if insights.DifficultyTrend <= 0 {
		t.Errorf("rising difficulty should yield positive trend, got %f", insights.DifficultyTrend)
	}
	if insights.TriggerCounts[TriggerIncreaseOverperformance] != 2 {
		t.Errorf("trigger counts = %v", insights.TriggerCounts)
	}
	if insights.Confidence.Current != 0.6 {
		t.Errorf("current confidence = %f, want 0.6", insights.Confidence.Current)
	}
}
