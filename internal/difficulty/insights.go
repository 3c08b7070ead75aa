package difficulty

import "math"

// ConfidenceProgression summarizes how controller confidence evolved
// across recorded adaptations.
type ConfidenceProgression struct {
	Trend     float64 `json:"trend"`
	Current   float64 `json:"current"`
	Stability float64 `json:"stability"`
}

// Insights summarizes a user's adaptation history.
type Insights struct {
	TotalAdaptations int             `json:"total_adaptations"`
	DifficultyTrend  float64         `json:"difficulty_trend"`
	TriggerCounts    map[Trigger]int `json:"trigger_counts"`
	Confidence       ConfidenceProgression `json:"confidence"`
}

// AnalyzeHistory derives insights from adaptation events ordered
// oldest first. Events that did not adapt are ignored.
func AnalyzeHistory(events []Event) Insights {
	var applied []Event
	for _, e := range events {
		if e.Adapted {
			applied = append(applied, e)
		}
	}

	insights := Insights{
		TotalAdaptations: len(applied),
		TriggerCounts:    make(map[Trigger]int),
		Confidence:       ConfidenceProgression{Current: 0.5, Stability: 0.5},
	}
	if len(applied) == 0 {
		return insights
	}

	for _, e := range applied {
		insights.TriggerCounts[e.Trigger]++
	}

	difficulties := make([]float64, len(applied))
	confidences := make([]float64, len(applied))
	for i, e := range applied {
		difficulties[i] = e.NewDifficulty
		confidences[i] = e.Confidence
	}

	if len(applied) > 1 {
		r := correlationWithIndex(difficulties)
		insights.DifficultyTrend = r * (difficulties[len(difficulties)-1] - difficulties[0])
		insights.Confidence.Trend = (confidences[len(confidences)-1] - confidences[0]) / float64(len(confidences))
		insights.Confidence.Stability = clamp(1.0-stdev(confidences), 0, 1)
	}
	insights.Confidence.Current = confidences[len(confidences)-1]

	return insights
}

// correlationWithIndex is the Pearson correlation of the series with
// its positional index; zero when the series is constant.
func correlationWithIndex(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}

	meanX := (n - 1) / 2
	meanY := 0.0
	for _, v := range values {
		meanY += v
	}
	meanY /= n

	var cov, varX, varY float64
	for i, v := range values {
		dx := float64(i) - meanX
		dy := v - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
