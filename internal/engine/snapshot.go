package engine

import (
	"time"

	"github.com/mpetrov/caliber/internal/bkt"
	"github.com/mpetrov/caliber/internal/difficulty"
)

// Snapshot is the full serializable engine state: profiles, items,
// attempt history, controller state, and the global tuning that
// affects computation (BKT parameters, Elo K). Restoring a snapshot
// and replaying the same inputs yields the same outputs.
type Snapshot struct {
	SavedAt       time.Time                     `json:"saved_at"`
	BKTParams     bkt.Params                    `json:"bkt_params"`
	EloK          float64                       `json:"elo_k"`
	TotalAttempts int64                         `json:"total_attempts"`
	Users         map[string]*UserProfile       `json:"users"`
	Items         map[string]*Item              `json:"items"`
	History       map[string][]*Attempt         `json:"history"`
	Difficulty    map[string]*difficulty.State  `json:"difficulty"`
	Adaptations   map[string][]difficulty.Event `json:"adaptations,omitempty"`
}

// Snapshot exports a deep copy of the engine state.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := &Snapshot{
		SavedAt:       e.now(),
		BKTParams:     e.cfg.BKT,
		EloK:          e.cfg.EloK,
		TotalAttempts: e.totalAttempts.Load(),
		Users:         make(map[string]*UserProfile, len(e.users)),
		Items:         make(map[string]*Item, len(e.items)),
		History:       make(map[string][]*Attempt, len(e.history)),
		Difficulty:    make(map[string]*difficulty.State, len(e.diffState)),
		Adaptations:   make(map[string][]difficulty.Event, len(e.adaptLog)),
	}
	for id, u := range e.users {
		snap.Users[id] = u.clone()
	}
	for id, it := range e.items {
		snap.Items[id] = it.clone()
	}
	for id, attempts := range e.history {
		cp := make([]*Attempt, len(attempts))
		for i, a := range attempts {
			ac := *a
			cp[i] = &ac
		}
		snap.History[id] = cp
	}
	for id, st := range e.diffState {
		sc := *st
		sc.PerformanceBuffer = append([]float64(nil), st.PerformanceBuffer...)
		sc.LastAdjustments = append([]float64(nil), st.LastAdjustments...)
		snap.Difficulty[id] = &sc
	}
	for id, events := range e.adaptLog {
		snap.Adaptations[id] = append([]difficulty.Event(nil), events...)
	}
	return snap
}

// Restore replaces the engine state with a snapshot. The snapshot's
// BKT parameters and Elo K override the configured values so that
// computation resumes exactly where it stopped. A nil snapshot leaves
// the engine empty.
func (e *Engine) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg.BKT = snap.BKTParams
	if snap.EloK > 0 {
		e.cfg.EloK = snap.EloK
	}
	e.totalAttempts.Store(snap.TotalAttempts)

	e.users = make(map[string]*UserProfile, len(snap.Users))
	for id, u := range snap.Users {
		cp := u.clone()
		if cp.ConceptMastery == nil {
			cp.ConceptMastery = make(map[string]float64)
		}
		e.users[id] = cp
	}
	e.items = make(map[string]*Item, len(snap.Items))
	for id, it := range snap.Items {
		cp := it.clone()
		if cp.Discrimination <= 0 {
			cp.Discrimination = DefaultDiscrimination
		}
		e.items[id] = cp
	}
	e.history = make(map[string][]*Attempt, len(snap.History))
	for id, attempts := range snap.History {
		cp := make([]*Attempt, len(attempts))
		for i, a := range attempts {
			ac := *a
			cp[i] = &ac
		}
		e.history[id] = cp
	}
	e.diffState = make(map[string]*difficulty.State, len(snap.Difficulty))
	for id, st := range snap.Difficulty {
		sc := *st
		sc.PerformanceBuffer = append([]float64(nil), st.PerformanceBuffer...)
		sc.LastAdjustments = append([]float64(nil), st.LastAdjustments...)
		e.diffState[id] = &sc
	}
	e.adaptLog = make(map[string][]difficulty.Event, len(snap.Adaptations))
	for id, events := range snap.Adaptations {
		e.adaptLog[id] = append([]difficulty.Event(nil), events...)
	}
}
