package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/mpetrov/caliber/internal/bkt"
	"github.com/mpetrov/caliber/internal/difficulty"
	"github.com/mpetrov/caliber/internal/elo"
	"github.com/mpetrov/caliber/internal/skillgap"
)

// Config collects the tunable engine parameters.
type Config struct {
	BKT         bkt.Params        `yaml:"bkt"`
	EloK        float64           `yaml:"elo_k"`
	MaxExposure float64           `yaml:"max_exposure"` // selection exposure-rate ceiling
	Difficulty  difficulty.Config `yaml:"difficulty"`
	SkillGap    skillgap.Config   `yaml:"skill_gap"`
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		BKT:         bkt.DefaultParams(),
		EloK:        elo.DefaultK,
		MaxExposure: 0.3,
		Difficulty:  difficulty.DefaultConfig(),
		SkillGap:    skillgap.DefaultConfig(),
	}
}

// Engine owns all adaptive state: user profiles, item parameters, the
// attempt history, and per-user difficulty controller state. It is
// constructed once and passed by reference to all callers.
//
// Concurrency: each user's profile, history, and difficulty state is
// written only while holding that user's lock (single writer per
// user); mu guards map membership and item mutation; the global
// attempt counter and item exposure counts are atomic so concurrent
// selections never block each other.
type Engine struct {
	cfg Config
	log *zap.Logger

	mu        sync.RWMutex
	users     map[string]*UserProfile
	items     map[string]*Item
	history   map[string][]*Attempt
	diffState map[string]*difficulty.State
	adaptLog  map[string][]difficulty.Event
	userLocks map[string]*sync.Mutex

	totalAttempts atomic.Int64

	controller *difficulty.Controller
	analyzer   *skillgap.Analyzer

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// maxAdaptLog bounds the per-user adaptation history kept for
// insights.
const maxAdaptLog = 100

// New constructs an empty engine.
func New(cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		cfg:       cfg,
		log:       log,
		users:     make(map[string]*UserProfile),
		items:     make(map[string]*Item),
		history:   make(map[string][]*Attempt),
		diffState: make(map[string]*difficulty.State),
		adaptLog:  make(map[string][]difficulty.Event),
		userLocks: make(map[string]*sync.Mutex),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
	e.controller = difficulty.NewControllerAt(cfg.Difficulty, func() time.Time { return e.now() })
	e.analyzer = skillgap.NewAnalyzerAt(cfg.SkillGap, func() time.Time { return e.now() })
	return e
}

// userLock returns the mutex serializing all writes for one user,
// creating it on first reference.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userID] = l
	}
	return l
}

// getOrCreateUser returns the live profile for a user, creating a
// default one on first reference. Caller must hold e.mu.
func (e *Engine) getOrCreateUser(userID string) *UserProfile {
	if u, ok := e.users[userID]; ok {
		return u
	}
	u := &UserProfile{
		UserID:         userID,
		AbilityStdErr:  DefaultStdErr,
		Rating:         elo.DefaultRating,
		ConceptMastery: make(map[string]float64),
		LastUpdated:    e.now(),
	}
	e.users[userID] = u
	return u
}

// getOrCreateItem returns the live parameters for an item, creating
// defaults on first reference. Caller must hold e.mu.
func (e *Engine) getOrCreateItem(itemID string, concepts []string) *Item {
	if it, ok := e.items[itemID]; ok {
		return it
	}
	it := &Item{
		ItemID:         itemID,
		Discrimination: DefaultDiscrimination,
		Rating:         elo.DefaultRating,
		Concepts:       append([]string(nil), concepts...),
	}
	e.items[itemID] = it
	return it
}

// GetOrCreateUser returns a copy of the user's profile, creating a
// default profile (stderr 1.0, rating 1500, no mastery) if the id has
// never been seen. Unknown ids are never an error.
func (e *Engine) GetOrCreateUser(userID string) *UserProfile {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	e.mu.Lock()
	u := e.getOrCreateUser(userID)
	e.mu.Unlock()
	return u.clone()
}

// GetOrCreateItem returns a copy of the item's parameters, creating
// defaults (discrimination 1.0, rating 1500, difficulty 0) if the id
// has never been seen. Concepts are only applied on creation.
func (e *Engine) GetOrCreateItem(itemID string, concepts []string) *Item {
	e.mu.Lock()
	it := e.getOrCreateItem(itemID, concepts)
	e.mu.Unlock()
	return it.clone()
}

// CalibrateItem sets an item's IRT parameters, creating the item if
// needed. Non-positive discrimination is ignored.
func (e *Engine) CalibrateItem(itemID string, diffic, discrimination float64, concepts []string) *Item {
	e.mu.Lock()
	it := e.getOrCreateItem(itemID, concepts)
	it.Difficulty = diffic
	if discrimination > 0 {
		it.Discrimination = discrimination
	}
	if len(concepts) > 0 {
		it.Concepts = append([]string(nil), concepts...)
	}
	cp := it.clone()
	e.mu.Unlock()
	return cp
}

// UserHistory returns a copy of the user's attempt log, oldest first.
func (e *Engine) UserHistory(userID string) []*Attempt {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	e.mu.RLock()
	defer e.mu.RUnlock()
	attempts := e.history[userID]
	out := make([]*Attempt, len(attempts))
	for i, a := range attempts {
		cp := *a
		out[i] = &cp
	}
	return out
}

// Stats reports the current engine population.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		Users:         len(e.users),
		Items:         len(e.items),
		TotalAttempts: e.totalAttempts.Load(),
	}
}

// intn draws from the engine's random source. The source is injectable
// so selection is reproducible in tests.
func (e *Engine) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}
