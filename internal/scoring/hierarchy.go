package scoring

import "github.com/MikeSquared-Agency/Shortlist/internal/store"

// Hierarchy is the two-level rubric with subcategories grouped under their
// main category. Build it once per calculation with NewHierarchy.
type Hierarchy struct {
	all      []store.Category
	mains    []store.Category
	children map[int][]store.Category
	orphans  []store.Category
}

// NewHierarchy groups categories by parent id. Input order is preserved
// within every group. A non-main category whose parent is missing, is
// itself, or is not a main category is an orphan and takes no part in
// scoring.
func NewHierarchy(categories []store.Category) *Hierarchy {
	h := &Hierarchy{
		all:      categories,
		children: make(map[int][]store.Category),
	}

	mainIDs := make(map[int]bool)
	for _, c := range categories {
		if c.IsMain() {
			h.mains = append(h.mains, c)
			mainIDs[c.ID] = true
		}
	}

	for _, c := range categories {
		if c.IsMain() {
			continue
		}
		parent := *c.ParentID
		if parent == c.ID || !mainIDs[parent] {
			h.orphans = append(h.orphans, c)
			continue
		}
		h.children[parent] = append(h.children[parent], c)
	}
	return h
}

// Categories returns the flat list the hierarchy was built from.
func (h *Hierarchy) Categories() []store.Category { return h.all }

// Mains returns the main categories in input order.
func (h *Hierarchy) Mains() []store.Category { return h.mains }

// Subcategories returns the subcategories grouped under a main category id.
func (h *Hierarchy) Subcategories(mainID int) []store.Category { return h.children[mainID] }

// Orphans returns subcategories whose parent is not an existing main category.
func (h *Hierarchy) Orphans() []store.Category { return h.orphans }

// EffectiveWeight is a main category's influence on the total score: the sum
// of its subcategories' authored weights.
func (h *Hierarchy) EffectiveWeight(mainID int) float64 {
	return sumWeights(h.children[mainID])
}

// TotalEffectiveWeight sums EffectiveWeight over all main categories.
func (h *Hierarchy) TotalEffectiveWeight() float64 {
	var total float64
	for _, m := range h.mains {
		total += h.EffectiveWeight(m.ID)
	}
	return total
}

// NormalizedWeight returns a main category's share of the total score in
// percent, 0 when no main category carries weight.
func (h *Hierarchy) NormalizedWeight(mainID int) float64 {
	return share(h.EffectiveWeight(mainID), h.TotalEffectiveWeight()) * 100
}

// SubcategoryIDs lists every subcategory that is currently scorable.
func (h *Hierarchy) SubcategoryIDs() []int {
	var ids []int
	for _, m := range h.mains {
		for _, s := range h.children[m.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
