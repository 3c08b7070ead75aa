package bkt

import (
	"math"
	"testing"
)

func TestUpdate_WorkedExample(t *testing.T) {
	// From the default parameters and a prior of 0.2:
	// p(correct) = 0.2*0.9 + 0.8*0.25 = 0.38
	// posterior  = 0.18/0.38 ≈ 0.4737
	// mastery'   = (0.4737 + 0.5263*0.3) * 0.95 ≈ 0.6000
	p := DefaultParams()
	got := p.Update(PriorMastery, true)
	if math.Abs(got-0.6000) > 1e-3 {
		t.Errorf("Update(0.2, correct) = %.4f, want 0.6000 ±1e-3", got)
	}
}

func TestUpdate_IncorrectLowersBelowCorrect(t *testing.T) {
	p := DefaultParams()
	up := p.Update(0.5, true)
	down := p.Update(0.5, false)
	if down >= up {
		t.Errorf("incorrect update (%f) should land below correct update (%f)", down, up)
	}
}

func TestUpdate_StaysInBounds(t *testing.T) {
	p := DefaultParams()
	for _, start := range []float64{MasteryFloor, 0.2, 0.5, 0.9, MasteryCeil} {
		m := start
		for i := 0; i < 100; i++ {
			m = p.Update(m, true)
			if m < MasteryFloor || m > MasteryCeil {
				t.Fatalf("mastery %f escaped bounds after correct updates from %f", m, start)
			}
		}
		m = start
		for i := 0; i < 100; i++ {
			m = p.Update(m, false)
			if m < MasteryFloor || m > MasteryCeil {
				t.Fatalf("mastery %f escaped bounds after incorrect updates from %f", m, start)
			}
		}
	}
}

func TestUpdate_ZeroDenominatorShortCircuits(t *testing.T) {
	// slip=0, guess=0, mastery=0 makes p(correct) zero; the Bayes step
	// must fall back to the prior instead of dividing by zero.
	p := Params{Learn: 0.3, Slip: 0, Guess: 0, Forget: 0}
	got := p.Update(0, true)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Update produced non-finite value %f", got)
	}
	if got < MasteryFloor || got > MasteryCeil {
		t.Errorf("Update = %f, want value in bounds", got)
	}
}

func TestUpdate_RepeatedCorrectConverges(t *testing.T) {
	p := DefaultParams()
	m := PriorMastery
	for i := 0; i < 50; i++ {
		next := p.Update(m, true)
		m = next
	}
	// With forgetting active the fixed point sits below the ceiling
	// but well above the prior.
	if m < 0.8 {
		t.Errorf("mastery after 50 correct answers = %f, want > 0.8", m)
	}
}
