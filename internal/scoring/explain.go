package scoring

import (
	"sort"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

// SubcategoryResult is one subcategory line of a breakdown.
type SubcategoryResult struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Rating           float64 `json:"rating"`
	Rated            bool    `json:"rated"`
	Weight           float64 `json:"weight"`
	NormalizedWeight float64 `json:"normalized_weight"`
}

// CategoryResult captures one main category's contribution to the total.
type CategoryResult struct {
	ID               int                 `json:"id"`
	Name             string              `json:"name"`
	Score            float64             `json:"score"`
	EffectiveWeight  float64             `json:"effective_weight"`
	NormalizedWeight float64             `json:"normalized_weight"`
	Contribution     float64             `json:"contribution"`
	Subcategories    []SubcategoryResult `json:"subcategories"`
}

// Breakdown is the complete scoring output for one candidate.
type Breakdown struct {
	CandidateID   int              `json:"candidate_id"`
	CandidateName string           `json:"candidate_name"`
	TotalScore    float64          `json:"total_score"`
	Rank          int              `json:"rank"`
	ParetoOptimal bool             `json:"pareto_optimal"`
	Categories    []CategoryResult `json:"categories"`
}

// Explain computes the per-category breakdown for a candidate. The sum of
// contributions equals TotalScore.
func (h *Hierarchy) Explain(c *store.Candidate) Breakdown {
	b := Breakdown{
		CandidateID:   c.ID,
		CandidateName: c.Name,
		Categories:    make([]CategoryResult, 0, len(h.mains)),
	}

	totalWeight := h.TotalEffectiveWeight()
	for _, m := range h.mains {
		subs := h.children[m.ID]
		effective := sumWeights(subs)
		normalized := share(effective, totalWeight) * 100
		score := h.CategoryScore(c, m)

		cr := CategoryResult{
			ID:               m.ID,
			Name:             m.Name,
			Score:            score,
			EffectiveWeight:  effective,
			NormalizedWeight: normalized,
			Contribution:     score * normalized / 100,
			Subcategories:    make([]SubcategoryResult, 0, len(subs)),
		}
		for _, s := range subs {
			r, rated := c.Rating(s.ID)
			cr.Subcategories = append(cr.Subcategories, SubcategoryResult{
				ID:               s.ID,
				Name:             s.Name,
				Rating:           r,
				Rated:            rated,
				Weight:           s.WeightOrZero(),
				NormalizedWeight: share(s.WeightOrZero(), effective) * 100,
			})
		}

		b.TotalScore += cr.Contribution
		b.Categories = append(b.Categories, cr)
	}
	return b
}

// Comparison is the ranked view over every candidate.
type Comparison struct {
	Candidates           []Breakdown      `json:"candidates"`
	TotalEffectiveWeight float64          `json:"total_effective_weight"`
	Orphans              []store.Category `json:"orphans"`
}

// Compare explains every candidate, ranks them by total score (stable on
// ties) and flags the ones on the Pareto frontier of main category scores.
func Compare(candidates []store.Candidate, categories []store.Category) Comparison {
	h := NewHierarchy(categories)

	out := Comparison{
		Candidates:           make([]Breakdown, len(candidates)),
		TotalEffectiveWeight: h.TotalEffectiveWeight(),
		Orphans:              h.Orphans(),
	}
	if out.Orphans == nil {
		out.Orphans = []store.Category{}
	}

	for i := range candidates {
		out.Candidates[i] = h.Explain(&candidates[i])
	}
	sort.SliceStable(out.Candidates, func(i, j int) bool {
		return out.Candidates[i].TotalScore > out.Candidates[j].TotalScore
	})

	frontier := make(map[int]bool)
	for _, id := range ParetoFrontier(out.Candidates) {
		frontier[id] = true
	}
	for i := range out.Candidates {
		out.Candidates[i].Rank = i + 1
		out.Candidates[i].ParetoOptimal = frontier[out.Candidates[i].CandidateID]
	}
	return out
}
