package search

import "sort"

// SortResults sorts results by percentage (descending). The sort is stable,
// so equal percentages keep catalog order.
func SortResults(results []ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentage > results[j].Percentage
	})
}
