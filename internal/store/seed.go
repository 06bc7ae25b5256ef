package store

var defaultMainCategories = []struct {
	id   int
	name string
}{
	{1, "🕌 Religion & Beliefs"},
	{2, "🏡 Family Background"},
	{3, "🧠 Personality & Intelligence"},
	{4, "🎓 Education & Ambition"},
	{5, "👶 Parenting Potential"},
	{6, "🎬 Lifestyle Compatibility"},
}

var defaultSubcategories = []struct {
	id     int
	name   string
	parent int
}{
	{7, "Religious Knowledge", 1},
	{8, "Religious Practice", 1},
	{9, "Religious Openness", 1},
	{10, "Family Reputation", 2},
	{11, "Cultural Alignment", 2},
	{12, "Socioeconomic Background", 2},
	{13, "Curiosity & Learning", 3},
	{14, "Emotional Regulation", 3},
	{15, "Depth of Conversation", 3},
	{16, "Adaptability", 3},
	{17, "Current Education Level", 4},
	{18, "Future Education Plans", 4},
	{19, "Career Ambition", 4},
	{20, "Vision for Impact", 4},
	{21, "Parenting Philosophy", 5},
	{22, "Co-parenting Attitude", 5},
	{23, "Balance of Tradition & Modernity", 5},
	{24, "Media Preferences", 6},
	{25, "Western Culture Openness", 6},
	{26, "Daily Lifestyle Similarity", 6},
}

// DefaultSubcategoryWeight is the weight every seeded subcategory starts with.
const DefaultSubcategoryWeight = 50

// DefaultCategories returns a fresh copy of the seed rubric: six main
// categories followed by their subcategories.
func DefaultCategories() []Category {
	out := make([]Category, 0, len(defaultMainCategories)+len(defaultSubcategories))
	for _, m := range defaultMainCategories {
		out = append(out, Category{ID: m.id, Name: m.name, Weight: Float64Ptr(0)})
	}
	for _, s := range defaultSubcategories {
		out = append(out, Category{
			ID:       s.id,
			Name:     s.name,
			ParentID: IntPtr(s.parent),
			Weight:   Float64Ptr(DefaultSubcategoryWeight),
		})
	}
	return out
}

// DefaultCandidates returns the seed candidate list, which is empty.
func DefaultCandidates() []Candidate {
	return []Candidate{}
}
