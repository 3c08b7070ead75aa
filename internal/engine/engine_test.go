package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mpetrov/caliber/internal/elo"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	e := New(DefaultConfig(), zap.NewNop())
	e.now = func() time.Time { return testClock }
	e.rng = rand.New(rand.NewSource(1))
	return e
}

func attempt(user, item string, correct bool) Attempt {
	score := 0.0
	binary := 0
	if correct {
		score = 1.0
		binary = 1
	}
	return Attempt{
		UserID:      user,
		ItemID:      item,
		Score:       score,
		BinaryScore: binary,
		TimeTakenMs: 30000,
		Timestamp:   testClock,
	}
}

func TestGetOrCreateUser_Defaults(t *testing.T) {
	e := newTestEngine()
	u := e.GetOrCreateUser("alice")
	if u.Ability != 0 {
		t.Errorf("ability = %f, want 0", u.Ability)
	}
	if u.AbilityStdErr != 1.0 {
		t.Errorf("stderr = %f, want 1.0", u.AbilityStdErr)
	}
	if u.Rating != elo.DefaultRating {
		t.Errorf("rating = %f, want %f", u.Rating, float64(elo.DefaultRating))
	}

	// Second call returns the existing profile, not a fresh default.
	e.ProcessAttempt(attempt("alice", "i1", true))
	if e.GetOrCreateUser("alice").AttemptsTotal != 1 {
		t.Error("existing profile should be returned on repeat access")
	}
}

func TestGetOrCreateItem_Defaults(t *testing.T) {
	e := newTestEngine()
	it := e.GetOrCreateItem("i1", []string{"loops"})
	if it.Discrimination != 1.0 {
		t.Errorf("discrimination = %f, want 1.0", it.Discrimination)
	}
	if it.Rating != elo.DefaultRating {
		t.Errorf("rating = %f, want %f", it.Rating, float64(elo.DefaultRating))
	}
	if it.ExposureCount != 0 {
		t.Errorf("exposure = %d, want 0", it.ExposureCount)
	}
	// Concepts bind on creation only.
	again := e.GetOrCreateItem("i1", []string{"recursion"})
	if len(again.Concepts) != 1 || again.Concepts[0] != "loops" {
		t.Errorf("concepts = %v, want [loops]", again.Concepts)
	}
}

func TestProcessAttempt_AbilityGate(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0, 1, nil)
	e.CalibrateItem("i2", 0.5, 1, nil)

	r1 := e.ProcessAttempt(attempt("alice", "i1", true))
	r2 := e.ProcessAttempt(attempt("alice", "i2", true))
	if r1.Ability != 0 || r2.Ability != 0 {
		t.Errorf("ability changed with <3 attempts: %f, %f", r1.Ability, r2.Ability)
	}
	if r1.AbilityStdErr != 1.0 {
		t.Errorf("stderr should stay at default before estimation, got %f", r1.AbilityStdErr)
	}

	e.CalibrateItem("i3", -0.5, 1, nil)
	r3 := e.ProcessAttempt(attempt("alice", "i3", true))
	if r3.Ability <= 0 {
		t.Errorf("three correct answers should raise ability, got %f", r3.Ability)
	}
	if r3.AbilityStdErr <= 0 || r3.AbilityStdErr >= 1.0 {
		t.Errorf("stderr after estimation = %f, want (0, 1)", r3.AbilityStdErr)
	}
}

func TestProcessAttempt_CountersAndAccuracy(t *testing.T) {
	e := newTestEngine()
	e.ProcessAttempt(attempt("alice", "i1", true))
	e.ProcessAttempt(attempt("alice", "i1", false))
	res := e.ProcessAttempt(attempt("alice", "i1", true))

	if got := e.GetOrCreateUser("alice").AttemptsTotal; got != 3 {
		t.Errorf("attempts_total = %d, want 3", got)
	}
	if res.Accuracy < 0.66 || res.Accuracy > 0.67 {
		t.Errorf("accuracy = %f, want 2/3", res.Accuracy)
	}
}

func TestProcessAttempt_MasteryTraced(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0, 1, []string{"loops", "conditionals"})

	res := e.ProcessAttempt(attempt("alice", "i1", true))
	m, ok := res.ConceptMastery["loops"]
	if !ok {
		t.Fatal("mastery for loops missing")
	}
	// Default BKT parameters on the 0.2 prior.
	if m < 0.599 || m > 0.601 {
		t.Errorf("mastery after first correct = %f, want ≈0.600", m)
	}
	if _, ok := res.ConceptMastery["conditionals"]; !ok {
		t.Error("every concept on the item should be traced")
	}
}

func TestProcessAttempt_RatingsExchange(t *testing.T) {
	e := newTestEngine()
	res := e.ProcessAttempt(attempt("alice", "i1", true))
	if res.Rating <= elo.DefaultRating {
		t.Errorf("user rating = %f, want > default after a win", res.Rating)
	}
	if got := e.GetOrCreateItem("i1", nil).Rating; got >= elo.DefaultRating {
		t.Errorf("item rating = %f, want < default after losing", got)
	}
}

func TestProcessAttempt_ExposureMonotonic(t *testing.T) {
	e := newTestEngine()
	prev := int64(0)
	for i := 0; i < 5; i++ {
		e.ProcessAttempt(attempt("alice", "i1", i%2 == 0))
		got := e.GetOrCreateItem("i1", nil).ExposureCount
		if got <= prev {
			t.Fatalf("exposure not increasing: %d after %d", got, prev)
		}
		prev = got
	}
}

func TestProcessAttempt_StopTesting(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0, 1, nil)
	var res AttemptResult
	for i := 0; i < StopAttempts; i++ {
		res = e.ProcessAttempt(attempt("alice", "i1", i%2 == 0))
	}
	if !res.StopTesting {
		t.Errorf("stop_testing should be set at %d attempts", StopAttempts)
	}
}

func TestProcessAttempt_InvariantsUnderMixedLoad(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 8; i++ {
		e.CalibrateItem(fmt.Sprintf("i%d", i), float64(i)-4, 1.2, []string{"loops"})
	}
	for i := 0; i < 100; i++ {
		res := e.ProcessAttempt(attempt("alice", fmt.Sprintf("i%d", i%8), i%3 != 0))
		if res.AbilityStdErr < 0 {
			t.Fatalf("stderr < 0 at attempt %d", i)
		}
		if res.Rating < elo.MinRating || res.Rating > elo.MaxRating {
			t.Fatalf("rating out of bounds at attempt %d: %f", i, res.Rating)
		}
		for c, m := range res.ConceptMastery {
			if m < 0.01 || m > 0.99 {
				t.Fatalf("mastery[%s] out of bounds at attempt %d: %f", c, i, m)
			}
		}
	}
}

func TestSelectNextItem_EmptyCandidates(t *testing.T) {
	e := newTestEngine()
	if _, ok := e.SelectNextItem(SelectionRequest{UserID: "alice"}); ok {
		t.Error("empty candidate set should return no selection")
	}
}

func TestSelectNextItem_ExposureControl(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("hot", 0, 1, nil)
	e.CalibrateItem("cold", 0, 1, nil)

	// All attempts so far hit the hot item: its exposure rate is 1.0.
	for i := 0; i < 10; i++ {
		e.ProcessAttempt(attempt("bob", "hot", true))
	}

	for i := 0; i < 50; i++ {
		id, ok := e.SelectNextItem(SelectionRequest{
			UserID:     "alice",
			Candidates: []string{"hot", "cold"},
		})
		if !ok {
			t.Fatal("selection should succeed")
		}
		if id == "hot" {
			t.Fatal("overexposed item selected while an alternative exists")
		}
	}
}

func TestSelectNextItem_FallbackWhenAllOverexposed(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 10; i++ {
		e.ProcessAttempt(attempt("bob", "hot", true))
	}
	id, ok := e.SelectNextItem(SelectionRequest{UserID: "alice", Candidates: []string{"hot"}})
	if !ok || id != "hot" {
		t.Errorf("fallback should serve the only candidate, got %q ok=%v", id, ok)
	}
}

func TestSelectNextItem_PrefersInformativeItems(t *testing.T) {
	e := newTestEngine()
	// alice's ability is 0; an item at b=0 is maximally informative,
	// one at b=4 nearly useless. With K=3 sampling over exactly 3
	// candidates every eligible item can surface, so stack the deck
	// with a fourth distant item that should never appear.
	e.CalibrateItem("near1", 0, 1, nil)
	e.CalibrateItem("near2", 0.2, 1, nil)
	e.CalibrateItem("near3", -0.2, 1, nil)
	e.CalibrateItem("far", 4, 1, nil)

	for i := 0; i < 50; i++ {
		id, ok := e.SelectNextItem(SelectionRequest{
			UserID:     "alice",
			Candidates: []string{"near1", "near2", "near3", "far"},
		})
		if !ok {
			t.Fatal("selection should succeed")
		}
		if id == "far" {
			t.Fatal("item outside the top-3 by information was selected")
		}
	}
}

func TestSelectNextItem_WeakConceptBonus(t *testing.T) {
	e := newTestEngine()
	// Identical IRT parameters; one item covers a concept the user is
	// weak on, which must win the information tie deterministically
	// within the top-K only via ordering, so check scores indirectly:
	// with two candidates both are in the top-K, so run the seeded RNG
	// and verify the weak-concept item is selected at least once and
	// ranked first by the tie-break.
	e.CalibrateItem("plain", 0, 1, nil)
	e.CalibrateItem("targeted", 0, 1, []string{"loops"})

	// Make alice weak on loops.
	e.CalibrateItem("warmup", 0, 1, []string{"loops"})
	e.ProcessAttempt(attempt("alice", "warmup", false))

	picks := map[string]int{}
	for i := 0; i < 100; i++ {
		id, ok := e.SelectNextItem(SelectionRequest{
			UserID:     "alice",
			Candidates: []string{"plain", "targeted"},
		})
		if !ok {
			t.Fatal("selection should succeed")
		}
		picks[id]++
	}
	if picks["targeted"] == 0 {
		t.Error("weak-concept item never selected")
	}
}

func TestSelectNextItem_ConceptFilter(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("a", 0, 1, []string{"loops"})
	e.CalibrateItem("b", 0, 1, []string{"recursion"})

	for i := 0; i < 20; i++ {
		id, ok := e.SelectNextItem(SelectionRequest{
			UserID:     "alice",
			Candidates: []string{"a", "b"},
			Concepts:   []string{"recursion"},
		})
		if !ok || id != "b" {
			t.Fatalf("concept filter ignored: got %q ok=%v", id, ok)
		}
	}
}

func TestSelectNextItem_Deterministic(t *testing.T) {
	run := func() []string {
		e := newTestEngine()
		e.CalibrateItem("a", 0, 1, nil)
		e.CalibrateItem("b", 0.1, 1, nil)
		e.CalibrateItem("c", -0.1, 1, nil)
		var picks []string
		for i := 0; i < 10; i++ {
			id, _ := e.SelectNextItem(SelectionRequest{
				UserID:     "alice",
				Candidates: []string{"a", "b", "c"},
			})
			picks = append(picks, id)
		}
		return picks
	}
	if !reflect.DeepEqual(run(), run()) {
		t.Error("selection with a fixed seed should be reproducible")
	}
}

func TestAdaptDifficulty_BoundsUnderExtremeLoad(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0, 1, nil)
	for cycle := 0; cycle < 50; cycle++ {
		for i := 0; i < 10; i++ {
			rec := attempt("alice", "i1", true)
			rec.TimeTakenMs = 1000
			e.ProcessAttempt(rec)
		}
		ev := e.AdaptDifficulty("alice")
		if ev.NewDifficulty < 0.05 || ev.NewDifficulty > 0.95 {
			t.Fatalf("difficulty out of bounds at cycle %d: %f", cycle, ev.NewDifficulty)
		}
	}
	st := e.DifficultyState("alice")
	if st.ConfidenceLevel < 0 || st.ConfidenceLevel > 1 {
		t.Errorf("confidence out of bounds: %f", st.ConfidenceLevel)
	}
	if st.AdaptationRate < 0.05 || st.AdaptationRate > 0.2 {
		t.Errorf("adaptation rate out of bounds: %f", st.AdaptationRate)
	}
}

func TestAdaptDifficulty_EventAlwaysRecorded(t *testing.T) {
	e := newTestEngine()
	ev := e.AdaptDifficulty("alice")
	if ev.Adapted {
		t.Error("no history should mean no adaptation")
	}
	insights := e.DifficultyInsights("alice")
	if insights.TotalAdaptations != 0 {
		t.Errorf("insights count only applied adaptations, got %d", insights.TotalAdaptations)
	}
}

func TestGetUserAnalytics(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("easy", -2, 1, []string{"variables"})
	e.CalibrateItem("hard", 2, 1, []string{"recursion"})

	for i := 0; i < 5; i++ {
		e.ProcessAttempt(attempt("alice", "easy", true))
		e.ProcessAttempt(attempt("bob", "hard", false))
	}

	a := e.GetUserAnalytics("alice")
	b := e.GetUserAnalytics("bob")
	if a.Ability <= b.Ability {
		t.Fatalf("alice should outrank bob: %f vs %f", a.Ability, b.Ability)
	}
	if a.PercentileRank != 100 {
		t.Errorf("alice percentile = %f, want 100", a.PercentileRank)
	}
	if b.PercentileRank != 0 {
		t.Errorf("bob percentile = %f, want 0", b.PercentileRank)
	}
	if len(b.Weaknesses) == 0 || b.Weaknesses[0].Concept != "recursion" {
		t.Errorf("bob weaknesses = %v, want recursion first", b.Weaknesses)
	}
	if a.Accuracy != 1.0 {
		t.Errorf("alice accuracy = %f, want 1.0", a.Accuracy)
	}
}

func TestGetUserAnalytics_SoloUser(t *testing.T) {
	e := newTestEngine()
	a := e.GetUserAnalytics("alice")
	if a.PercentileRank != 50 {
		t.Errorf("single-user percentile = %f, want 50", a.PercentileRank)
	}
}

func TestIdentifySkillGaps_FromHistory(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0, 1, []string{"recursion"})
	for i := 0; i < 4; i++ {
		e.ProcessAttempt(attempt("alice", "i1", false))
	}

	gaps := e.IdentifySkillGaps("alice")
	found := false
	for _, g := range gaps {
		if g.Concept == "recursion" {
			found = true
		}
	}
	if !found {
		t.Errorf("recursion should be a gap, got %v", gaps)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0.3, 1.1, []string{"loops"})
	e.CalibrateItem("i2", -0.4, 0.9, []string{"recursion"})
	for i := 0; i < 6; i++ {
		e.ProcessAttempt(attempt("alice", "i1", i%2 == 0))
		e.ProcessAttempt(attempt("bob", "i2", i%3 == 0))
	}
	e.AdaptDifficulty("alice")

	raw, err := json.Marshal(e.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	restored := newTestEngine()
	restored.Restore(&snap)

	next := attempt("alice", "i2", true)
	got := restored.ProcessAttempt(next)
	want := e.ProcessAttempt(next)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("post-restore computation diverged:\n got %+v\nwant %+v", got, want)
	}

	if restored.Stats() != e.Stats() {
		t.Errorf("stats diverged: %+v vs %+v", restored.Stats(), e.Stats())
	}
}

func TestRestore_NilAndEmpty(t *testing.T) {
	e := newTestEngine()
	e.Restore(nil)
	if s := e.Stats(); s.Users != 0 || s.Items != 0 {
		t.Errorf("nil restore should leave the engine empty, got %+v", s)
	}
	e.Restore(&Snapshot{})
	e.ProcessAttempt(attempt("alice", "i1", true))
	if e.Stats().TotalAttempts != 1 {
		t.Error("engine should operate normally after restoring an empty snapshot")
	}
}

func TestConcurrentAttempts(t *testing.T) {
	e := newTestEngine()
	e.CalibrateItem("i1", 0, 1, []string{"loops"})

	done := make(chan struct{})
	for w := 0; w < 8; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			user := fmt.Sprintf("user-%d", w)
			for i := 0; i < 50; i++ {
				e.ProcessAttempt(attempt(user, "i1", i%2 == 0))
				e.SelectNextItem(SelectionRequest{UserID: user, Candidates: []string{"i1"}})
			}
		}(w)
	}
	for w := 0; w < 8; w++ {
		<-done
	}

	if got := e.Stats().TotalAttempts; got != 400 {
		t.Errorf("total attempts = %d, want 400", got)
	}
	if got := e.GetOrCreateItem("i1", nil).ExposureCount; got != 400 {
		t.Errorf("exposure = %d, want 400", got)
	}
}
