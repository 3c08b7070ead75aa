// Package bkt implements single-concept Bayesian Knowledge Tracing.
package bkt

const (
	// MasteryFloor and MasteryCeil bound every mastery estimate so a
	// concept is never treated as impossible or certain.
	MasteryFloor = 0.01
	MasteryCeil  = 0.99

	// PriorMastery is assumed for a concept with no recorded attempts.
	PriorMastery = 0.2
)

// Params holds the global knowledge-tracing parameters. They apply to
// every concept; per-concept tuning is intentionally not supported.
type Params struct {
	Learn  float64 `json:"learn" yaml:"learn"`
	Slip   float64 `json:"slip" yaml:"slip"`
	Guess  float64 `json:"guess" yaml:"guess"`
	Forget float64 `json:"forget" yaml:"forget"`
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		Learn:  0.3,
		Slip:   0.1,
		Guess:  0.25,
		Forget: 0.05,
	}
}

// Update applies one observation to a mastery estimate: a Bayes step
// on the observed correctness, then the learning transition, then
// forgetting. The result is clipped to [MasteryFloor, MasteryCeil].
func (p Params) Update(mastery float64, correct bool) float64 {
	var posterior float64
	if correct {
		pCorrect := mastery*(1-p.Slip) + (1-mastery)*p.Guess
		if pCorrect <= 0 {
			posterior = mastery
		} else {
			posterior = mastery * (1 - p.Slip) / pCorrect
		}
	} else {
		pIncorrect := mastery*p.Slip + (1-mastery)*(1-p.Guess)
		if pIncorrect <= 0 {
			posterior = mastery
		} else {
			posterior = mastery * p.Slip / pIncorrect
		}
	}

	next := posterior + (1-posterior)*p.Learn
	next *= 1 - p.Forget

	return clip(next)
}

func clip(v float64) float64 {
	if v < MasteryFloor {
		return MasteryFloor
	}
	if v > MasteryCeil {
		return MasteryCeil
	}
	return v
}
