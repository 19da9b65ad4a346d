package profiling

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the cleaned OVP score distribution, headcount-
// weighted where the weighting matters.
type Summary struct {
	Count          int     `json:"count"`
	WeightedMean   float64 `json:"weighted_mean"`
	WeightedStdDev float64 `json:"weighted_std_dev"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Median         float64 `json:"median"`
	Q25            float64 `json:"q25"`
	Q75            float64 `json:"q75"`
}

// Summarize computes distribution markers for the score column. scores
// and weights must be the same length; weights are headcounts.
func Summarize(scores, weights []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, fmt.Errorf("no scores to summarize")
	}
	if len(scores) != len(weights) {
		return Summary{}, fmt.Errorf("scores and weights length mismatch: %d vs %d", len(scores), len(weights))
	}

	summary := Summary{Count: len(scores)}
	summary.WeightedMean, summary.WeightedStdDev = stat.MeanStdDev(scores, weights)

	min, err := stats.Min(scores)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(scores)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(scores)
	if err != nil {
		return Summary{}, err
	}
	q25, err := stats.Percentile(scores, 25)
	if err != nil {
		return Summary{}, err
	}
	q75, err := stats.Percentile(scores, 75)
	if err != nil {
		return Summary{}, err
	}

	summary.Min = min
	summary.Max = max
	summary.Median = median
	summary.Q25 = q25
	summary.Q75 = q75

	return summary, nil
}
