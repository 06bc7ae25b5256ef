package scoring

import "github.com/MikeSquared-Agency/Shortlist/internal/store"

// sumWeights totals the authored weights of a group, unset weights counting as 0.
func sumWeights(categories []store.Category) float64 {
	var total float64
	for _, c := range categories {
		total += c.WeightOrZero()
	}
	return total
}

// share returns weight/total, or 0 when the group has no weight at all.
// Weights are never negative, so a zero total is the only degenerate case.
func share(weight, total float64) float64 {
	if total == 0 {
		return 0
	}
	return weight / total
}
