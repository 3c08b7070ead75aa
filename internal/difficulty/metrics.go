package difficulty

import "math"

// ComputeMetrics aggregates a rolling window of attempt samples,
// ordered most recent first. An empty window yields neutral defaults
// so downstream decisions stay conservative.
func ComputeMetrics(samples []Sample) Metrics {
	if len(samples) == 0 {
		return Metrics{
			SuccessRate:         0.5,
			AverageAttempts:     1.0,
			TimeEfficiency:      0.5,
			ErrorRate:           0.5,
			ConsistencyScore:    0.5,
			ChallengeEngagement: 0.5,
		}
	}

	n := float64(len(samples))

	successes := 0
	for _, s := range samples {
		if s.Correct {
			successes++
		}
	}
	successRate := float64(successes) / n

	// Attempts per distinct item within the window.
	perItem := make(map[string]int)
	for _, s := range samples {
		perItem[s.ItemID]++
	}
	totalPerItem := 0
	for _, c := range perItem {
		totalPerItem += c
	}
	averageAttempts := float64(totalPerItem) / float64(len(perItem))

	// Attempts per minute, normalized so 0.1/min maps to 1.0.
	totalMinutes := 0.0
	for _, s := range samples {
		totalMinutes += float64(s.TimeTakenMs) / 60000.0
	}
	timeEfficiency := n / math.Max(totalMinutes, 1)
	timeEfficiency = math.Min(1.0, timeEfficiency/0.1)

	// Error rate is the partial-credit complement.
	scoreSum := 0.0
	for _, s := range samples {
		scoreSum += s.Score
	}
	errorRate := 1.0 - scoreSum/n

	// Recent-window success minus earlier-window success.
	learningVelocity := 0.0
	if len(samples) >= 5 {
		recent := binarySuccessRate(samples[:5])
		early := binarySuccessRate(samples[len(samples)-5:])
		learningVelocity = clamp(recent-early, -1, 1)
	}

	// 1 − stdev of binary outcomes.
	consistency := 1.0
	if len(samples) > 1 {
		outcomes := make([]float64, len(samples))
		for i, s := range samples {
			if s.Correct {
				outcomes[i] = 1.0
			}
		}
		consistency = clamp(1.0-stdev(outcomes), 0, 1)
	}

	// Average attempted difficulty against 0.7 as "good challenge".
	diffSum := 0.0
	for _, s := range samples {
		diffSum += s.ItemDifficulty
	}
	challenge := math.Min(1.0, (diffSum/n)/0.7)

	frustration := 0.0
	if averageAttempts > 3 {
		frustration += 0.3
	}
	if successRate < 0.3 {
		frustration += 0.4
	}
	if errorRate > 0.7 {
		frustration += 0.3
	}
	frustration = math.Min(1.0, frustration)

	return Metrics{
		SuccessRate:           successRate,
		AverageAttempts:       averageAttempts,
		TimeEfficiency:        timeEfficiency,
		ErrorRate:             clamp(errorRate, 0, 1),
		LearningVelocity:      learningVelocity,
		ConsistencyScore:      consistency,
		ChallengeEngagement:   challenge,
		FrustrationIndicators: frustration,
	}
}

// CompositeScore folds the metrics into a single [0,1] score for the
// performance buffer.
func CompositeScore(m Metrics) float64 {
	score := 0.3*m.SuccessRate +
		0.15*m.TimeEfficiency +
		0.2*((m.LearningVelocity+1)/2) +
		0.15*m.ConsistencyScore +
		0.1*m.ChallengeEngagement -
		0.1*m.FrustrationIndicators
	return clamp(score, 0, 1)
}

func binarySuccessRate(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	n := 0
	for _, s := range samples {
		if s.Correct {
			n++
		}
	}
	return float64(n) / float64(len(samples))
}

func stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	// Sample standard deviation.
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
