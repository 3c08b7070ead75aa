// Package irt implements the two-parameter-logistic item response
// model used to estimate learner ability from graded attempts.
package irt

import "math"

const (
	// GridMin and GridMax bound the ability scale.
	GridMin = -4.0
	GridMax = 4.0
	// GridPoints is the number of quadrature points for EAP estimation.
	GridPoints = 81

	// ConvergenceThreshold stops Newton-Raphson when the ability update
	// falls below it.
	ConvergenceThreshold = 0.01
	// MaxIterations caps Newton-Raphson regardless of convergence.
	MaxIterations = 50

	// maxExponent keeps the logistic out of overflow territory.
	maxExponent = 700.0
)

// Response is a single graded attempt against a calibrated item.
type Response struct {
	Discrimination float64
	Difficulty     float64
	Correct        bool
}

// Estimate is an ability point estimate with its standard error.
type Estimate struct {
	Theta  float64
	StdErr float64
}

// Probability returns P(correct | theta) under the 2PL model.
// The exponent is capped; at the cap the probability saturates to the
// limiting value instead of overflowing.
func Probability(theta, discrimination, difficulty float64) float64 {
	exponent := -discrimination * (theta - difficulty)
	if exponent > maxExponent {
		return 0.0
	}
	if exponent < -maxExponent {
		return 1.0
	}
	return 1.0 / (1.0 + math.Exp(exponent))
}

// ItemInformation returns the Fisher information a²·P·(1−P) an item
// carries about a learner at the given ability.
func ItemInformation(theta, discrimination, difficulty float64) float64 {
	p := Probability(theta, discrimination, difficulty)
	return discrimination * discrimination * p * (1 - p)
}

// EstimateMLE refines an ability estimate by Newton-Raphson iteration
// starting from start. Iteration stops on convergence, after
// MaxIterations, or immediately when the summed information is
// numerically zero (in which case start is returned unchanged).
func EstimateMLE(start float64, responses []Response) float64 {
	if len(responses) == 0 {
		return start
	}

	theta := start
	for i := 0; i < MaxIterations; i++ {
		score := 0.0
		information := 0.0
		for _, r := range responses {
			p := Probability(theta, r.Discrimination, r.Difficulty)
			observed := 0.0
			if r.Correct {
				observed = 1.0
			}
			score += observed - p
			information += p * (1 - p)
		}

		if math.Abs(information) < 1e-10 {
			break
		}

		delta := score / math.Abs(information)
		theta += delta
		if math.Abs(delta) < ConvergenceThreshold {
			break
		}
	}
	return theta
}

// EstimateEAP computes the expected-a-posteriori ability estimate over
// a fixed quadrature grid with a standard-normal prior. The standard
// error is the posterior standard deviation around the estimate.
func EstimateEAP(responses []Response) Estimate {
	grid := make([]float64, GridPoints)
	posterior := make([]float64, GridPoints)
	step := (GridMax - GridMin) / float64(GridPoints-1)

	total := 0.0
	for i := range grid {
		theta := GridMin + float64(i)*step
		grid[i] = theta

		// Standard-normal prior density.
		weight := math.Exp(-0.5*theta*theta) / math.Sqrt(2*math.Pi)

		// Likelihood of the response pattern at this grid point.
		for _, r := range responses {
			p := Probability(theta, r.Discrimination, r.Difficulty)
			if r.Correct {
				weight *= p
			} else {
				weight *= 1 - p
			}
		}

		posterior[i] = weight
		total += weight
	}

	if total <= 0 {
		// Degenerate likelihood; fall back to the prior mean.
		return Estimate{Theta: 0, StdErr: 1}
	}

	mean := 0.0
	for i := range grid {
		posterior[i] /= total
		mean += grid[i] * posterior[i]
	}

	variance := 0.0
	for i := range grid {
		d := grid[i] - mean
		variance += d * d * posterior[i]
	}

	return Estimate{Theta: mean, StdErr: math.Sqrt(variance)}
}
