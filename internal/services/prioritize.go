package services

import (
	"cmp"
	"slices"
)

// PrioritizeJobs returns location indices ordered by descending profit.
// Equal profits keep ascending index order, so output is identical across runs.
func PrioritizeJobs(profits []int) []int {
	jobs := make([]int, len(profits))
	for i := range jobs {
		jobs[i] = i
	}

	slices.SortStableFunc(jobs, func(a, b int) int {
		return cmp.Compare(profits[b], profits[a])
	})

	return jobs
}
