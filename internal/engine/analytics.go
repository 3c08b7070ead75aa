package engine

import (
	"math"
	"sort"

	"github.com/mpetrov/caliber/internal/difficulty"
	"github.com/mpetrov/caliber/internal/skillgap"
)

// GetUserAnalytics summarizes a user's state: ability, rating,
// percentile rank among all known users, overall mastery, and the top
// strengths and weaknesses by concept.
func (e *Engine) GetUserAnalytics(userID string) Analytics {
	profile := e.GetOrCreateUser(userID)

	e.mu.RLock()
	below, others := 0, 0
	for id, u := range e.users {
		if id == userID {
			continue
		}
		others++
		if u.Ability < profile.Ability {
			below++
		}
	}
	diffState, hasDiff := e.diffState[userID]
	currentDifficulty := difficulty.DefaultDifficulty
	if hasDiff {
		currentDifficulty = diffState.CurrentDifficulty
	}
	e.mu.RUnlock()

	percentile := 50.0
	if others > 0 {
		percentile = 100 * float64(below) / float64(others)
	}

	var masterySum float64
	var strengths, weaknesses []ConceptScore
	for c, m := range profile.ConceptMastery {
		masterySum += m
		switch {
		case m > 0.8:
			strengths = append(strengths, ConceptScore{Concept: c, Mastery: m})
		case m < 0.5:
			weaknesses = append(weaknesses, ConceptScore{Concept: c, Mastery: m})
		}
	}
	overall := 0.0
	if len(profile.ConceptMastery) > 0 {
		overall = masterySum / float64(len(profile.ConceptMastery))
	}
	sort.Slice(strengths, func(i, j int) bool {
		if strengths[i].Mastery != strengths[j].Mastery {
			return strengths[i].Mastery > strengths[j].Mastery
		}
		return strengths[i].Concept < strengths[j].Concept
	})
	sort.Slice(weaknesses, func(i, j int) bool {
		if weaknesses[i].Mastery != weaknesses[j].Mastery {
			return weaknesses[i].Mastery < weaknesses[j].Mastery
		}
		return weaknesses[i].Concept < weaknesses[j].Concept
	})
	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	if len(weaknesses) > 5 {
		weaknesses = weaknesses[:5]
	}

	accuracy := 0.0
	if profile.AttemptsTotal > 0 {
		accuracy = float64(profile.AttemptsCorrect) / float64(profile.AttemptsTotal)
	}

	return Analytics{
		UserID:            userID,
		Ability:           profile.Ability,
		AbilityStdErr:     profile.AbilityStdErr,
		Rating:            profile.Rating,
		PercentileRank:    percentile,
		OverallMastery:    overall,
		Accuracy:          accuracy,
		AttemptsTotal:     profile.AttemptsTotal,
		CurrentDifficulty: currentDifficulty,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
	}
}

// AdaptDifficulty runs one controller cycle for a user over their
// most recent attempts. The returned event is recorded for insights
// and is produced even when no adjustment was made.
func (e *Engine) AdaptDifficulty(userID string) difficulty.Event {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	e.mu.Lock()
	state, ok := e.diffState[userID]
	if !ok {
		state = difficulty.NewState(userID)
		e.diffState[userID] = state
	}
	window := e.recentSamples(userID, e.cfg.Difficulty.WindowSize)
	event := e.controller.Adapt(state, window)
	log := append(e.adaptLog[userID], event)
	if len(log) > maxAdaptLog {
		log = log[len(log)-maxAdaptLog:]
	}
	e.adaptLog[userID] = log
	e.mu.Unlock()

	return event
}

// DifficultyState returns a copy of the user's controller state,
// creating defaults on first reference.
func (e *Engine) DifficultyState(userID string) difficulty.State {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	e.mu.Lock()
	state, ok := e.diffState[userID]
	if !ok {
		state = difficulty.NewState(userID)
		e.diffState[userID] = state
	}
	cp := *state
	cp.PerformanceBuffer = append([]float64(nil), state.PerformanceBuffer...)
	cp.LastAdjustments = append([]float64(nil), state.LastAdjustments...)
	e.mu.Unlock()
	return cp
}

// DifficultyInsights analyzes the user's recorded adaptation events.
func (e *Engine) DifficultyInsights(userID string) difficulty.Insights {
	e.mu.RLock()
	events := append([]difficulty.Event(nil), e.adaptLog[userID]...)
	e.mu.RUnlock()
	return difficulty.AnalyzeHistory(events)
}

// OptimalConceptDifficulty suggests a presentation-scale difficulty
// for the user's next item on a concept, nudging the controller
// target by current mastery.
func (e *Engine) OptimalConceptDifficulty(userID, concept string) float64 {
	profile := e.GetOrCreateUser(userID)
	state := e.DifficultyState(userID)
	mastery, ok := profile.ConceptMastery[concept]
	return difficulty.OptimalDifficulty(&state, mastery, ok)
}

// IdentifySkillGaps assesses the user's attempt history per concept
// and returns prioritized gaps, sorted by impact descending.
func (e *Engine) IdentifySkillGaps(userID string) []skillgap.Gap {
	return e.analyzer.IdentifyGaps(e.observations(userID))
}

// AssessSkills returns the per-concept assessments underlying gap
// analysis.
func (e *Engine) AssessSkills(userID string) map[string]skillgap.Assessment {
	return e.analyzer.Assess(e.observations(userID))
}

// ImprovementPath builds a prerequisite-ordered learning sequence
// toward a target concept for the user.
func (e *Engine) ImprovementPath(userID, target string) skillgap.Path {
	return e.analyzer.ImprovementPath(target, e.AssessSkills(userID))
}

// observations flattens the user's history into per-concept graded
// observations, oldest first.
func (e *Engine) observations(userID string) []skillgap.Observation {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []skillgap.Observation
	for _, a := range e.history[userID] {
		it, ok := e.items[a.ItemID]
		if !ok {
			continue
		}
		for _, c := range it.Concepts {
			out = append(out, skillgap.Observation{
				Concept:   c,
				Score:     a.Score,
				Correct:   a.Correct(),
				Timestamp: a.Timestamp,
			})
		}
	}
	return out
}

// recentSamples converts the user's latest attempts into controller
// samples, most recent first. Caller must hold e.mu.
func (e *Engine) recentSamples(userID string, n int) []difficulty.Sample {
	attempts := e.history[userID]
	start := len(attempts) - n
	if start < 0 {
		start = 0
	}
	window := attempts[start:]
	samples := make([]difficulty.Sample, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		a := window[i]
		sample := difficulty.Sample{
			ItemID:      a.ItemID,
			Correct:     a.Correct(),
			Score:       a.Score,
			TimeTakenMs: a.TimeTakenMs,
		}
		if it, ok := e.items[a.ItemID]; ok {
			sample.ItemDifficulty = presentationDifficulty(it.Difficulty)
		}
		samples = append(samples, sample)
	}
	return samples
}

// presentationDifficulty maps an IRT difficulty (θ scale, roughly
// [-4,4]) onto the controller's [0,1] scale.
func presentationDifficulty(b float64) float64 {
	return 1 / (1 + math.Exp(-b))
}
