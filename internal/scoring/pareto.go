package scoring

// ParetoFrontier returns the ids of candidates that no other candidate
// dominates. a dominates b when a scores >= b on every main category and
// strictly higher on at least one. Weights play no part, so the frontier
// shows who could come first under some weighting of the main categories.
// O(n^2) dominance check, fine for a shortlist.
func ParetoFrontier(breakdowns []Breakdown) []int {
	var frontier []int
	for i := range breakdowns {
		dominated := false
		for j := range breakdowns {
			if i == j {
				continue
			}
			if dominates(breakdowns[j], breakdowns[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, breakdowns[i].CandidateID)
		}
	}
	return frontier
}

// dominates assumes both breakdowns list the same main categories in the
// same order, which holds for breakdowns built from one Hierarchy.
func dominates(a, b Breakdown) bool {
	if len(a.Categories) != len(b.Categories) {
		return false
	}
	strictly := false
	for k := range a.Categories {
		if a.Categories[k].Score < b.Categories[k].Score {
			return false
		}
		if a.Categories[k].Score > b.Categories[k].Score {
			strictly = true
		}
	}
	return strictly
}
