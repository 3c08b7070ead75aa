package engine

import (
	"sort"
	"sync/atomic"

	"github.com/mpetrov/caliber/internal/bkt"
	"github.com/mpetrov/caliber/internal/irt"
)

// Mastery below this level earns an item a selection bonus for
// covering the concept.
const conceptBonusThreshold = 0.7

// SelectionRequest asks for the next best item for a user.
type SelectionRequest struct {
	UserID     string   `json:"user_id"`
	Candidates []string `json:"candidates"`
	Concepts   []string `json:"concepts,omitempty"` // if set, item must cover at least one
	Exclude    []string `json:"exclude,omitempty"`
	// MaxExposure overrides the engine's exposure-rate ceiling when
	// positive.
	MaxExposure float64 `json:"max_exposure,omitempty"`
}

// SelectNextItem picks the next practice item: candidates are scored
// by item information at the user's ability plus a bonus for covering
// weak concepts, and the winner is drawn uniformly from the top three
// to avoid deterministic overexposure.
//
// Items whose exposure rate exceeds the ceiling are skipped while an
// alternative exists. The exposure-rate denominator is the total
// number of attempts processed across all users. An empty candidate
// set returns ok=false; unknown item ids are created with defaults.
func (e *Engine) SelectNextItem(req SelectionRequest) (itemID string, ok bool) {
	if len(req.Candidates) == 0 {
		return "", false
	}
	maxExposure := req.MaxExposure
	if maxExposure <= 0 {
		maxExposure = e.cfg.MaxExposure
	}

	profile := e.GetOrCreateUser(req.UserID)
	total := e.totalAttempts.Load()
	if total < 1 {
		total = 1
	}

	excluded := make(map[string]bool, len(req.Exclude))
	for _, id := range req.Exclude {
		excluded[id] = true
	}

	type scored struct {
		id    string
		score float64
	}
	var eligible []scored
	var fallback []string

	e.mu.Lock()
	for _, id := range req.Candidates {
		if excluded[id] {
			continue
		}
		it := e.getOrCreateItem(id, nil)
		if len(req.Concepts) > 0 && !coversAny(it.Concepts, req.Concepts) {
			continue
		}
		fallback = append(fallback, id)

		exposure := atomic.LoadInt64(&it.ExposureCount)
		if float64(exposure)/float64(total) > maxExposure {
			continue
		}

		score := irt.ItemInformation(profile.Ability, it.Discrimination, it.Difficulty)
		for _, c := range it.Concepts {
			m, seen := profile.ConceptMastery[c]
			if !seen {
				m = bkt.PriorMastery
			}
			if m < conceptBonusThreshold {
				score += 0.1 * (conceptBonusThreshold - m)
			}
		}
		eligible = append(eligible, scored{id: id, score: score})
	}
	e.mu.Unlock()

	if len(eligible) == 0 {
		// Everything passing the content filter is overexposed; serve
		// one of those rather than nothing.
		if len(fallback) == 0 {
			return "", false
		}
		return fallback[e.intn(len(fallback))], true
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].score != eligible[j].score {
			return eligible[i].score > eligible[j].score
		}
		return eligible[i].id < eligible[j].id
	})

	k := len(eligible)
	if k > 3 {
		k = 3
	}
	return eligible[e.intn(k)].id, true
}

func coversAny(itemConcepts, wanted []string) bool {
	for _, w := range wanted {
		for _, c := range itemConcepts {
			if c == w {
				return true
			}
		}
	}
	return false
}
