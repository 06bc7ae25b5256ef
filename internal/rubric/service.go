// Package rubric implements the category and candidate editors: input
// validation, id assignment and read-modify-write of whole collections.
package rubric

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

// DefaultRating is the rating a new candidate gets for every subcategory
// the input leaves out.
const DefaultRating float64 = 5

type Service struct {
	store         store.Store
	validate      *validator.Validate
	defaultRating float64
	logger        *slog.Logger
}

func NewService(s store.Store, defaultRating float64, logger *slog.Logger) *Service {
	return &Service{
		store:         s,
		validate:      newValidator(),
		defaultRating: defaultRating,
		logger:        logger,
	}
}
