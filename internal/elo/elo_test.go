package elo

import (
	"math"
	"testing"
)

func TestExpected_ComplementIsExact(t *testing.T) {
	pairs := [][2]float64{
		{1500, 1500},
		{800, 2400},
		{2400, 800},
		{1612.5, 1387.25},
	}
	for _, pair := range pairs {
		expectedUser := Expected(pair[0], pair[1])
		expectedItem := 1.0 - expectedUser
		if expectedUser+expectedItem != 1.0 {
			t.Errorf("expected scores for %v do not sum to exactly 1", pair)
		}
	}
}

func TestExpected_EqualRatingsIsHalf(t *testing.T) {
	if e := Expected(1500, 1500); math.Abs(e-0.5) > 1e-12 {
		t.Errorf("Expected(1500,1500) = %f, want 0.5", e)
	}
}

func TestExchange_WinRaisesUserLowersItem(t *testing.T) {
	user, item := Exchange(1500, 1500, 1.0, DefaultK)
	if user <= 1500 {
		t.Errorf("user rating after win = %f, want > 1500", user)
	}
	if item >= 1500 {
		t.Errorf("item rating after learner win = %f, want < 1500", item)
	}
	// Equal ratings: exchange is symmetric.
	if math.Abs((user-1500)-(1500-item)) > 1e-9 {
		t.Errorf("exchange not symmetric: user +%f, item -%f", user-1500, 1500-item)
	}
}

func TestExchange_PartialCredit(t *testing.T) {
	user, _ := Exchange(1500, 1500, 0.5, DefaultK)
	if math.Abs(user-1500) > 1e-9 {
		t.Errorf("score equal to expectation should not move rating, got %f", user)
	}
}

func TestExchange_ClampsToBounds(t *testing.T) {
	user, item := Exchange(MaxRating, MinRating, 1.0, 1e6)
	if user != MaxRating {
		t.Errorf("user rating = %f, want clamped to %f", user, MaxRating)
	}
	if item != MinRating {
		t.Errorf("item rating = %f, want clamped to %f", item, MinRating)
	}

	user, item = Exchange(MinRating, MaxRating, 0.0, 1e6)
	if user != MinRating || item != MaxRating {
		t.Errorf("ratings = (%f, %f), want pinned at bounds", user, item)
	}
}
