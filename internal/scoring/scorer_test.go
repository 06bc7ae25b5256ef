package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

const eps = 1e-9

func mainCat(id int, name string) store.Category {
	return store.Category{ID: id, Name: name, Weight: store.Float64Ptr(0)}
}

func sub(id, parent int, weight float64) store.Category {
	return store.Category{ID: id, Name: "sub", ParentID: store.IntPtr(parent), Weight: store.Float64Ptr(weight)}
}

func candidate(ratings map[int]float64) *store.Candidate {
	return &store.Candidate{ID: 1, Name: "c", Ratings: ratings}
}

func TestCategoryScoreWeightedAverage(t *testing.T) {
	cats := []store.Category{mainCat(1, "M"), sub(2, 1, 30), sub(3, 1, 70)}
	c := candidate(map[int]float64{2: 10, 3: 0})

	assert.InDelta(t, 3.0, CategoryScore(c, cats[0], cats), eps)
	assert.InDelta(t, 3.0, TotalScore(c, cats), eps)
}

func TestTwoMainCategories(t *testing.T) {
	cats := []store.Category{
		mainCat(1, "M1"), sub(3, 1, 20), sub(4, 1, 30),
		mainCat(2, "M2"), sub(5, 2, 50),
	}
	c := candidate(map[int]float64{3: 10, 4: 10, 5: 0})

	assert.InDelta(t, 10.0, CategoryScore(c, cats[0], cats), eps)
	assert.InDelta(t, 0.0, CategoryScore(c, cats[3], cats), eps)
	assert.InDelta(t, 5.0, TotalScore(c, cats), eps)
}

func TestLeafCategoryUsesOwnRating(t *testing.T) {
	cats := []store.Category{mainCat(1, "M"), sub(2, 1, 40)}
	c := candidate(map[int]float64{2: 6.5, 1: 9})

	assert.Equal(t, 6.5, CategoryScore(c, cats[1], cats), "subcategory scored directly")

	lonely := []store.Category{mainCat(1, "M")}
	assert.Equal(t, 9.0, CategoryScore(c, lonely[0], lonely), "main category without children")
	assert.Equal(t, 0.0, CategoryScore(candidate(nil), lonely[0], lonely))
}

func TestLeafRatingIsNotClamped(t *testing.T) {
	cats := []store.Category{mainCat(1, "M"), sub(2, 1, 40)}
	assert.Equal(t, 14.0, CategoryScore(candidate(map[int]float64{2: 14}), cats[1], cats))
}

func TestMainWithoutChildrenHasNoInfluence(t *testing.T) {
	cats := []store.Category{mainCat(1, "M1"), sub(3, 1, 10), mainCat(2, "empty")}
	c := candidate(map[int]float64{3: 8, 2: 10})
	assert.InDelta(t, 8.0, TotalScore(c, cats), eps)
}

func TestZeroWeightSafety(t *testing.T) {
	unweighted := store.Category{ID: 5, Name: "no weight", ParentID: store.IntPtr(2)}
	cats := []store.Category{
		mainCat(1, "M1"), sub(3, 1, 0), sub(4, 1, 0),
		mainCat(2, "M2"), unweighted,
	}
	for _, c := range []*store.Candidate{
		candidate(map[int]float64{3: 10, 4: 10, 5: 10}),
		candidate(map[int]float64{3: 2}),
		candidate(nil),
	} {
		total := TotalScore(c, cats)
		assert.False(t, math.IsNaN(total))
		assert.Equal(t, 0.0, total)
		assert.Equal(t, 0.0, CategoryScore(c, cats[0], cats))
		assert.Equal(t, 0.0, CategoryScore(c, cats[3], cats))
	}
}

func TestZeroWeightCategoryAmongWeightedOnes(t *testing.T) {
	cats := []store.Category{
		mainCat(1, "M1"), sub(3, 1, 0),
		mainCat(2, "M2"), sub(4, 2, 25),
	}
	c := candidate(map[int]float64{3: 10, 4: 6})
	assert.Equal(t, 0.0, CategoryScore(c, cats[0], cats))
	assert.InDelta(t, 6.0, TotalScore(c, cats), eps)
}

func TestMissingRatingCountsAsZero(t *testing.T) {
	cats := []store.Category{mainCat(1, "M"), sub(2, 1, 50), sub(3, 1, 50)}
	c := candidate(map[int]float64{2: 8, 99: 10})

	assert.InDelta(t, 4.0, CategoryScore(c, cats[0], cats), eps)
	assert.InDelta(t, 4.0, TotalScore(c, cats), eps)
}

func TestSingleSubcategoryEqualsItsRating(t *testing.T) {
	for _, w := range []float64{0.1, 1, 50, 100, 1234} {
		cats := []store.Category{mainCat(1, "M"), sub(2, 1, w)}
		c := candidate(map[int]float64{2: 7.5})
		assert.InDelta(t, 7.5, CategoryScore(c, cats[0], cats), eps, "weight %v", w)
	}
}

func TestScalingWeightsWithinCategory(t *testing.T) {
	base := []store.Category{
		mainCat(1, "M1"), sub(3, 1, 10), sub(4, 1, 30),
		mainCat(2, "M2"), sub(5, 2, 40), sub(6, 2, 20),
	}
	c := candidate(map[int]float64{3: 9, 4: 2, 5: 6.5, 6: 10})

	for _, k := range []float64{0.25, 3, 17} {
		scaled := make([]store.Category, len(base))
		copy(scaled, base)
		for i, cat := range scaled {
			if cat.ParentID != nil && *cat.ParentID == 1 {
				scaled[i].Weight = store.Float64Ptr(cat.WeightOrZero() * k)
			}
		}
		assert.InDelta(t, CategoryScore(c, base[0], base), CategoryScore(c, scaled[0], scaled), eps)
		assert.InDelta(t, CategoryScore(c, base[3], base), CategoryScore(c, scaled[3], scaled), eps)
	}
}

func TestScalingAllWeightsKeepsTotal(t *testing.T) {
	base := []store.Category{
		mainCat(1, "M1"), sub(3, 1, 10), sub(4, 1, 30),
		mainCat(2, "M2"), sub(5, 2, 40),
	}
	scaled := make([]store.Category, len(base))
	for i, cat := range base {
		scaled[i] = cat
		if cat.ParentID != nil {
			scaled[i].Weight = store.Float64Ptr(cat.WeightOrZero() * 4)
		}
	}
	c := candidate(map[int]float64{3: 1, 4: 9, 5: 5})
	assert.InDelta(t, TotalScore(c, base), TotalScore(c, scaled), eps)
}

func TestEffectiveWeightDrivesMainInfluence(t *testing.T) {
	cats := []store.Category{
		mainCat(1, "M1"), sub(3, 1, 50),
		mainCat(2, "M2"), sub(4, 2, 50),
	}
	c := candidate(map[int]float64{3: 10, 4: 0})
	assert.InDelta(t, 5.0, TotalScore(c, cats), eps)

	// A heavy new subcategory in M1 raises M1's share of the total.
	cats = append(cats, sub(5, 1, 100))
	c.Ratings[5] = 10
	assert.InDelta(t, 7.5, TotalScore(c, cats), eps)
}

func TestTotalScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		var cats []store.Category
		ratings := map[int]float64{}
		id := 1
		mains := 1 + rng.Intn(5)
		for m := 0; m < mains; m++ {
			mainID := id
			cats = append(cats, mainCat(mainID, "m"))
			id++
			for s := rng.Intn(5); s > 0; s-- {
				w := 0.0
				if rng.Intn(4) > 0 {
					w = rng.Float64() * 100
				}
				cats = append(cats, sub(id, mainID, w))
				if rng.Intn(5) > 0 {
					ratings[id] = float64(rng.Intn(21)) / 2
				}
				id++
			}
		}

		total := TotalScore(candidate(ratings), cats)
		if math.IsNaN(total) || total < -eps || total > 10+eps {
			t.Fatalf("iteration %d: total %f outside [0,10]", iter, total)
		}
	}
}

func TestOrphansAreIgnored(t *testing.T) {
	cats := []store.Category{
		mainCat(1, "M"), sub(2, 1, 50),
		sub(3, 42, 50), // parent deleted
		sub(4, 4, 50),  // self reference
		sub(5, 2, 50),  // parent is a subcategory
	}
	c := candidate(map[int]float64{2: 6, 3: 10, 4: 10, 5: 10})

	h := NewHierarchy(cats)
	assert.Len(t, h.Mains(), 1)
	assert.Len(t, h.Orphans(), 3)
	assert.InDelta(t, 6.0, h.TotalScore(c), eps)
	assert.Equal(t, []int{2}, h.SubcategoryIDs())
}

func TestRankOrdersDescendingAndStable(t *testing.T) {
	cats := []store.Category{mainCat(1, "M"), sub(2, 1, 10)}
	cands := []store.Candidate{
		{ID: 1, Name: "low", Ratings: map[int]float64{2: 3}},
		{ID: 2, Name: "tie-a", Ratings: map[int]float64{2: 7}},
		{ID: 3, Name: "high", Ratings: map[int]float64{2: 9.5}},
		{ID: 4, Name: "tie-b", Ratings: map[int]float64{2: 7}},
		{ID: 5, Name: "unrated"},
	}

	ranked := Rank(cands, cats)
	var order []int
	for _, r := range ranked {
		order = append(order, r.Candidate.ID)
	}
	assert.Equal(t, []int{3, 2, 4, 1, 5}, order)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestDefaultRubricAllFives(t *testing.T) {
	cats := store.DefaultCategories()
	ratings := map[int]float64{}
	for id := 7; id <= 26; id++ {
		ratings[id] = 5
	}
	assert.InDelta(t, 5.0, TotalScore(candidate(ratings), cats), eps)
}
