// Package elo implements the rating exchange between a learner and an
// item. Each graded attempt is treated as a match: the learner "wins"
// in proportion to the attempt score.
package elo

import "math"

const (
	// DefaultRating is assigned to new learners and items.
	DefaultRating = 1500.0
	// MinRating and MaxRating bound every rating after an exchange.
	MinRating = 800.0
	MaxRating = 2400.0
	// DefaultK is the standard K-factor.
	DefaultK = 32.0
)

// Expected returns the expected score of the learner against the item.
// The item's expected score is exactly 1 − Expected.
func Expected(userRating, itemRating float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (itemRating-userRating)/400.0))
}

// Exchange applies one rating exchange for an attempt with the given
// score in [0,1] and returns the updated (user, item) ratings, both
// clamped to [MinRating, MaxRating].
func Exchange(userRating, itemRating, score, k float64) (float64, float64) {
	expectedUser := Expected(userRating, itemRating)
	expectedItem := 1.0 - expectedUser

	user := userRating + k*(score-expectedUser)
	item := itemRating + k*(expectedItem-score)

	return Clamp(user), Clamp(item)
}

// Clamp forces a rating into [MinRating, MaxRating].
func Clamp(rating float64) float64 {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}
