package engine

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/mpetrov/caliber/internal/bkt"
	"github.com/mpetrov/caliber/internal/elo"
	"github.com/mpetrov/caliber/internal/irt"
)

// ProcessAttempt runs the full update pipeline for one graded attempt:
// append to history, bump counters, re-estimate ability from the
// most-recent window when enough data exists, exchange Elo ratings,
// trace mastery for every concept on the item, and record exposure.
// It returns the post-update state snapshot.
//
// The user's lock serializes the whole pipeline per user; a missing
// user or item is created with defaults rather than rejected.
func (e *Engine) ProcessAttempt(rec Attempt) AttemptResult {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = e.now()
	}
	if rec.Score < 0 {
		rec.Score = 0
	} else if rec.Score > 1 {
		rec.Score = 1
	}

	l := e.userLock(rec.UserID)
	l.Lock()
	defer l.Unlock()

	e.mu.Lock()
	user := e.getOrCreateUser(rec.UserID)
	item := e.getOrCreateItem(rec.ItemID, nil)
	e.history[rec.UserID] = append(e.history[rec.UserID], &rec)
	window := e.recentResponses(rec.UserID)
	e.mu.Unlock()

	e.totalAttempts.Add(1)

	// Ability: EAP over the last ≤10 attempts, only once ≥3 exist.
	// The grid scan is the expensive part of the pipeline, so it runs
	// on the copied window outside the lock.
	var est *irt.Estimate
	if len(window) >= minAbilitySamples {
		v := irt.EstimateEAP(window)
		est = &v
	}

	e.mu.Lock()
	user.AttemptsTotal++
	if rec.Correct() {
		user.AttemptsCorrect++
	}
	if est != nil {
		user.Ability = est.Theta
		user.AbilityStdErr = est.StdErr
	}

	// Rating exchange on partial credit.
	user.Rating, item.Rating = elo.Exchange(user.Rating, item.Rating, rec.Score, e.cfg.EloK)

	for _, c := range item.Concepts {
		m, ok := user.ConceptMastery[c]
		if !ok {
			m = bkt.PriorMastery
		}
		user.ConceptMastery[c] = e.cfg.BKT.Update(m, rec.Correct())
	}

	user.LastUpdated = e.now()

	result := AttemptResult{
		Ability:        user.Ability,
		AbilityStdErr:  user.AbilityStdErr,
		Rating:         user.Rating,
		ConceptMastery: copyMastery(user.ConceptMastery),
		StopTesting:    user.AbilityStdErr < StopStdErr || user.AttemptsTotal >= StopAttempts,
		Accuracy:       float64(user.AttemptsCorrect) / float64(user.AttemptsTotal),
	}
	e.mu.Unlock()

	atomic.AddInt64(&item.ExposureCount, 1)
	return result
}

// recentResponses gathers the last ≤10 attempts by the user joined
// with their items' IRT parameters. Caller must hold e.mu.
func (e *Engine) recentResponses(userID string) []irt.Response {
	attempts := e.history[userID]
	start := len(attempts) - abilityWindow
	if start < 0 {
		start = 0
	}
	window := attempts[start:]
	responses := make([]irt.Response, 0, len(window))
	for _, a := range window {
		it, ok := e.items[a.ItemID]
		if !ok {
			continue
		}
		responses = append(responses, irt.Response{
			Discrimination: it.Discrimination,
			Difficulty:     it.Difficulty,
			Correct:        a.Correct(),
		})
	}
	return responses
}

func copyMastery(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
