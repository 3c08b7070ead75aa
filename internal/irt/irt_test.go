package irt

import (
	"math"
	"testing"
)

func TestProbability_Midpoint(t *testing.T) {
	p := Probability(0, 1.0, 0)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Probability(0,1,0) = %f, want 0.5", p)
	}
}

func TestProbability_Monotonic(t *testing.T) {
	prev := -1.0
	for theta := -4.0; theta <= 4.0; theta += 0.5 {
		p := Probability(theta, 1.2, 0.3)
		if p <= prev {
			t.Fatalf("probability not increasing at theta=%f: %f <= %f", theta, p, prev)
		}
		prev = p
	}
}

func TestProbability_OverflowSaturates(t *testing.T) {
	if p := Probability(-1e6, 1.0, 0); p != 0.0 {
		t.Errorf("extreme low ability: p = %f, want 0", p)
	}
	if p := Probability(1e6, 1.0, 0); p != 1.0 {
		t.Errorf("extreme high ability: p = %f, want 1", p)
	}
}

func TestItemInformation_PeaksAtDifficulty(t *testing.T) {
	atB := ItemInformation(0.5, 1.0, 0.5)
	offB := ItemInformation(2.5, 1.0, 0.5)
	if atB <= offB {
		t.Errorf("information at difficulty (%f) should exceed information far away (%f)", atB, offB)
	}
	// At theta == b, P = 0.5 so information = a²/4.
	want := 1.5 * 1.5 * 0.25
	got := ItemInformation(0.5, 1.5, 0.5)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ItemInformation = %f, want %f", got, want)
	}
}

func TestEstimateMLE_NoResponses(t *testing.T) {
	if got := EstimateMLE(0.7, nil); got != 0.7 {
		t.Errorf("EstimateMLE with no responses = %f, want start value", got)
	}
}

func TestEstimateMLE_MovesTowardPerformance(t *testing.T) {
	allCorrect := []Response{
		{1.0, -0.5, true},
		{1.0, 0.0, true},
		{1.0, 0.5, true},
	}
	if theta := EstimateMLE(0, allCorrect); theta <= 0 {
		t.Errorf("all-correct pattern should raise ability, got %f", theta)
	}

	allWrong := []Response{
		{1.0, -0.5, false},
		{1.0, 0.0, false},
		{1.0, 0.5, false},
	}
	if theta := EstimateMLE(0, allWrong); theta >= 0 {
		t.Errorf("all-incorrect pattern should lower ability, got %f", theta)
	}
}

func TestEstimateEAP_NoResponsesReturnsPrior(t *testing.T) {
	est := EstimateEAP(nil)
	if math.Abs(est.Theta) > 1e-9 {
		t.Errorf("prior mean should be 0, got %f", est.Theta)
	}
	// Posterior equals the (discretized) standard normal prior.
	if est.StdErr < 0.9 || est.StdErr > 1.1 {
		t.Errorf("prior stderr should be near 1, got %f", est.StdErr)
	}
}

func TestEstimateEAP_ShrinksStdErrWithData(t *testing.T) {
	var responses []Response
	est := EstimateEAP(responses)
	priorSE := est.StdErr

	for i := 0; i < 10; i++ {
		responses = append(responses, Response{1.0, 0.0, i%2 == 0})
	}
	est = EstimateEAP(responses)
	if est.StdErr >= priorSE {
		t.Errorf("stderr should shrink with data: %f >= %f", est.StdErr, priorSE)
	}
	if est.StdErr < 0 {
		t.Errorf("stderr must be non-negative, got %f", est.StdErr)
	}
}

func TestEstimateEAP_DirectionMatchesEvidence(t *testing.T) {
	correct := make([]Response, 5)
	wrong := make([]Response, 5)
	for i := range correct {
		correct[i] = Response{1.0, 0.0, true}
		wrong[i] = Response{1.0, 0.0, false}
	}

	up := EstimateEAP(correct)
	down := EstimateEAP(wrong)
	if up.Theta <= 0 {
		t.Errorf("all-correct EAP should be positive, got %f", up.Theta)
	}
	if down.Theta >= 0 {
		t.Errorf("all-incorrect EAP should be negative, got %f", down.Theta)
	}
	if up.Theta > GridMax || down.Theta < GridMin {
		t.Errorf("EAP estimates must stay on the grid: %f, %f", up.Theta, down.Theta)
	}
}
