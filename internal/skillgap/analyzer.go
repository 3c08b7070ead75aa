package skillgap

import (
	"math"
	"sort"
	"time"

	"github.com/mpetrov/caliber/internal/conceptgraph"
)

// Analyzer derives concept assessments and gaps from attempt
// observations.
type Analyzer struct {
	cfg Config
	now func() time.Time
}

// NewAnalyzer creates an analyzer with the given thresholds.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg, now: time.Now}
}

// NewAnalyzerAt creates an analyzer with an injected clock for tests.
func NewAnalyzerAt(cfg Config, now func() time.Time) *Analyzer {
	return &Analyzer{cfg: cfg, now: now}
}

// Assess groups observations by concept and assesses every concept
// with at least MinSamples attempts. Observations must be ordered
// oldest first.
func (a *Analyzer) Assess(observations []Observation) map[string]Assessment {
	byConcept := make(map[string][]Observation)
	for _, o := range observations {
		byConcept[o.Concept] = append(byConcept[o.Concept], o)
	}

	assessments := make(map[string]Assessment)
	for concept, obs := range byConcept {
		if len(obs) < a.cfg.MinSamples {
			continue
		}
		assessments[concept] = a.assessConcept(concept, obs)
	}
	return assessments
}

// assessConcept computes the recency-weighted mastery, a 95%
// confidence interval, the progression rate (recent half vs earliest
// half), and a stability score for one concept.
func (a *Analyzer) assessConcept(concept string, obs []Observation) Assessment {
	now := a.now()

	scores := make([]float64, len(obs))
	weightSum := 0.0
	weightedSum := 0.0
	for i, o := range obs {
		scores[i] = o.Score
		daysAgo := now.Sub(o.Timestamp).Hours() / 24
		if daysAgo < 0 {
			daysAgo = 0
		}
		w := math.Exp(-daysAgo / a.cfg.RecencyWeightDays)
		weightSum += w
		weightedSum += o.Score * w
	}

	mastery := 0.0
	if weightSum > 0 {
		mastery = weightedSum / weightSum
	}

	// 95% interval from the standard error of the sample.
	margin := 0.3
	if len(scores) >= 3 {
		margin = 1.96 * stdev(scores) / math.Sqrt(float64(len(scores)))
	}

	half := len(scores) / 2
	progression := mean(scores[half:]) - mean(scores[:half])

	recent := scores
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	stability := clamp(1.0-stdev(recent), 0, 1)

	return Assessment{
		Concept:         concept,
		Mastery:         mastery,
		ConfidenceLow:   math.Max(0, mastery-margin),
		ConfidenceHigh:  math.Min(1, mastery+margin),
		SampleSize:      len(obs),
		ProgressionRate: progression,
		StabilityScore:  stability,
		LastAssessed:    now,
	}
}

// IdentifyGaps returns all gaps sorted by impact, most impactful
// first. A concept is a gap when its mastery misses the threshold and
// the severity (1 − mastery) reaches SeverityThreshold. Prerequisite
// concepts that were never attempted while a dependent category was
// are reported with severity 1.
func (a *Analyzer) IdentifyGaps(observations []Observation) []Gap {
	assessments := a.Assess(observations)
	if len(assessments) == 0 {
		return nil
	}

	var gaps []Gap
	for concept, assessment := range assessments {
		if assessment.Mastery >= a.cfg.MasteryThreshold {
			continue
		}
		severity := 1.0 - assessment.Mastery
		if severity < a.cfg.SeverityThreshold {
			continue
		}
		gaps = append(gaps, a.analyzeGap(concept, assessment, assessments))
	}

	gaps = append(gaps, a.missingPrerequisites(assessments)...)

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].ImpactScore != gaps[j].ImpactScore {
			return gaps[i].ImpactScore > gaps[j].ImpactScore
		}
		return gaps[i].Concept < gaps[j].Concept
	})
	return gaps
}

func (a *Analyzer) analyzeGap(concept string, assessment Assessment, all map[string]Assessment) Gap {
	severity := 1.0 - assessment.Mastery

	// Concepts that build on this one and have been attempted.
	var blocking []string
	for _, edge := range conceptgraph.Dependents(concept) {
		if _, attempted := all[edge.Dependent]; attempted {
			blocking = append(blocking, edge.Dependent)
		}
	}
	sort.Strings(blocking)

	// Prerequisite-category concepts that are themselves weak.
	var prereqGaps []string
	for _, prereq := range conceptgraph.PrerequisiteConcepts(concept) {
		if pa, ok := all[prereq]; ok && pa.Mastery < a.cfg.MasteryThreshold {
			prereqGaps = append(prereqGaps, prereq)
		}
	}
	sort.Strings(prereqGaps)

	difficulty := learningDifficulty(concept, assessment.Mastery, assessment.StabilityScore)

	return Gap{
		Concept:              concept,
		GapSeverity:          severity,
		CurrentLevel:         assessment.Mastery,
		TargetLevel:          a.cfg.MasteryThreshold,
		BlockingDependencies: blocking,
		PrerequisiteGaps:     prereqGaps,
		ImpactScore:          impactScore(concept, severity, len(blocking)),
		TimeInvestmentHours:  timeInvestment(concept, severity, difficulty),
	}
}

// missingPrerequisites reports prerequisite concepts that were never
// attempted even though a dependent category was.
func (a *Analyzer) missingPrerequisites(assessments map[string]Assessment) []Gap {
	var gaps []Gap
	seen := make(map[string]bool)

	for _, category := range conceptgraph.Categories() {
		attempted := false
		for _, concept := range category.Concepts {
			if _, ok := assessments[concept]; ok {
				attempted = true
				break
			}
		}
		if !attempted {
			continue
		}

		for _, concept := range conceptgraph.PrerequisiteConcepts(category.Concepts[0]) {
			if _, ok := assessments[concept]; ok || seen[concept] {
				continue
			}
			seen[concept] = true
			blocking := append([]string(nil), category.Concepts...)
			gaps = append(gaps, Gap{
				Concept:              concept,
				GapSeverity:          1.0,
				CurrentLevel:         0.0,
				TargetLevel:          a.cfg.MasteryThreshold,
				BlockingDependencies: blocking,
				ImpactScore:          impactScore(concept, 1.0, len(blocking)),
				TimeInvestmentHours:  timeInvestment(concept, 1.0, 0.5),
			})
		}
	}
	return gaps
}

// ImprovementPath builds a prerequisite-ordered learning sequence for
// a target concept: every unmastered prerequisite-category concept,
// then the target itself.
func (a *Analyzer) ImprovementPath(target string, assessments map[string]Assessment) Path {
	var sequence []string
	seen := make(map[string]bool)

	for _, prereq := range conceptgraph.PrerequisiteConcepts(target) {
		if seen[prereq] {
			continue
		}
		if pa, ok := assessments[prereq]; ok && pa.Mastery >= a.cfg.MasteryThreshold {
			continue
		}
		seen[prereq] = true
		sequence = append(sequence, prereq)
	}
	if !seen[target] {
		sequence = append(sequence, target)
	}

	total := 0
	for _, concept := range sequence {
		total += timeInvestment(concept, 0.5, 0.5)
	}

	return Path{TargetConcept: target, Sequence: sequence, TotalHours: total}
}

// impactScore favors severe, foundational gaps that block many
// dependents.
func impactScore(concept string, severity float64, blockingCount int) float64 {
	level := conceptgraph.LevelOf(concept)
	impact := 0.4*severity +
		math.Min(0.4, 0.2*float64(blockingCount)) +
		0.2*float64(9-level)/8
	return math.Min(1.0, impact)
}

// learningDifficulty estimates how hard the gap is to close.
func learningDifficulty(concept string, mastery, stability float64) float64 {
	base := float64(conceptgraph.LevelOf(concept)) / 8
	return math.Min(1.0, base+(1.0-mastery)*0.3+(1.0-stability)*0.2)
}

// baseHours is the per-concept baseline effort estimate.
var baseHours = map[string]int{
	"variables": 2, "data_types": 3, "operators": 2, "input_output": 2,
	"conditionals": 4, "loops": 6, "boolean_logic": 3,
	"function_definition": 5, "parameters": 3, "return_values": 3, "scope": 4,
	"arrays": 8, "lists": 6, "strings": 5, "dictionaries": 6, "sets": 4,
	"sorting": 10, "searching": 8, "recursion": 12, "complexity_analysis": 8,
	"trees": 15, "graphs": 18, "heaps": 10, "hash_tables": 8,
	"dynamic_programming": 20, "graph_algorithms": 15, "greedy_algorithms": 12,
}

// timeInvestment estimates the hours needed to close a gap.
func timeInvestment(concept string, severity, difficulty float64) int {
	base, ok := baseHours[concept]
	if !ok {
		base = 10
	}
	multiplier := 0.5 + severity*0.5 + difficulty*0.5
	return int(float64(base) * multiplier)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
