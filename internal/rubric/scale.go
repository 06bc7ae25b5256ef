package rubric

// RatingScale describes the rating input: bounds, step and the quick-pick
// values offered next to it.
type RatingScale struct {
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	Step       float64   `json:"step"`
	Default    float64   `json:"default"`
	QuickPicks []float64 `json:"quick_picks"`
}

const (
	MinRating  = 0
	MaxRating  = 10
	RatingStep = 0.5

	MaxWeight = 100
)

func (s *Service) RatingScale() RatingScale {
	return RatingScale{
		Min:        MinRating,
		Max:        MaxRating,
		Step:       RatingStep,
		Default:    s.defaultRating,
		QuickPicks: []float64{0, 2.5, 5, 7.5, 10},
	}
}
