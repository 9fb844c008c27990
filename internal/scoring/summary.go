package scoring

import (
	"sort"
	"time"
)

const maxTopImprovements = 5

// Summarize reduces a batch's completed evaluations to a BatchSummary in a
// single scan. The reduction is order-independent: concurrent and
// sequential batch runs over the same tickets produce the same summary.
func Summarize(results []EvaluationResult, elapsed time.Duration) BatchSummary {
	summary := BatchSummary{
		TotalTickets:     len(results),
		BandDistribution: make(map[Band]int),
		TotalElapsed:     elapsed,
	}
	if len(results) == 0 {
		return summary
	}

	var scoreSum, percentSum float64
	improvementCounts := make(map[string]int)

	for _, r := range results {
		if r.Passed {
			summary.PassedCount++
		} else {
			summary.FailedCount++
		}
		scoreSum += float64(r.FinalScore)
		percentSum += r.Percentage
		summary.BandDistribution[r.Band]++
		for _, imp := range r.Improvements {
			improvementCounts[imp]++
		}
	}

	summary.AverageScore = round1(scoreSum / float64(len(results)))
	summary.AveragePercentage = round1(percentSum / float64(len(results)))
	summary.TopImprovements = topRecurring(improvementCounts, maxTopImprovements)
	return summary
}

// topRecurring returns the n most frequent keys, ties broken alphabetically
// so the ordering is stable.
func topRecurring(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
