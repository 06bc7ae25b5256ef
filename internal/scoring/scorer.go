package scoring

import (
	"sort"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

// CategoryScore returns a candidate's 0-10 score for one category.
//
// A category without children is scored by its own rating (0 when unrated).
// Otherwise the score is the weighted average of its subcategory ratings,
// with weights normalized to sum to 1 inside the category. If those weights
// sum to 0 the category scores 0.
func CategoryScore(c *store.Candidate, category store.Category, all []store.Category) float64 {
	return NewHierarchy(all).CategoryScore(c, category)
}

// TotalScore returns a candidate's overall score: the average of main
// category scores weighted by each main category's effective weight.
func TotalScore(c *store.Candidate, all []store.Category) float64 {
	return NewHierarchy(all).TotalScore(c)
}

func (h *Hierarchy) CategoryScore(c *store.Candidate, category store.Category) float64 {
	subs := h.children[category.ID]
	if len(subs) == 0 {
		r, _ := c.Rating(category.ID)
		return r
	}

	total := sumWeights(subs)
	var score float64
	for _, sub := range subs {
		r, _ := c.Rating(sub.ID)
		score += r * share(sub.WeightOrZero(), total)
	}
	return score
}

func (h *Hierarchy) TotalScore(c *store.Candidate) float64 {
	totalWeight := h.TotalEffectiveWeight()
	var total float64
	for _, m := range h.mains {
		normalized := share(h.EffectiveWeight(m.ID), totalWeight) * 100
		total += h.CategoryScore(c, m) * normalized / 100
	}
	return total
}

// Ranked pairs a candidate with its total score.
type Ranked struct {
	Candidate store.Candidate `json:"candidate"`
	Score     float64         `json:"score"`
}

// Rank orders candidates by total score, highest first. Equal scores keep
// their input order.
func Rank(candidates []store.Candidate, categories []store.Category) []Ranked {
	h := NewHierarchy(categories)
	out := make([]Ranked, len(candidates))
	for i := range candidates {
		out[i] = Ranked{Candidate: candidates[i], Score: h.TotalScore(&candidates[i])}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
