package rubric

import (
	"context"
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/Shortlist/internal/scoring"
	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

// CandidateInput is the editable part of a candidate. Ratings need not be
// complete; every present value must lie in [0,10].
type CandidateInput struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Ratings Ratings `json:"ratings" validate:"dive,keys,gt=0,endkeys,gte=0,lte=10"`
}

func (s *Service) ListCandidates(ctx context.Context) ([]store.Candidate, error) {
	return s.store.GetCandidates(ctx)
}

func (s *Service) GetCandidate(ctx context.Context, id int) (*store.Candidate, error) {
	cands, err := s.store.GetCandidates(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfCandidate(cands, id)
	if idx < 0 {
		return nil, ErrCandidateNotFound
	}
	return &cands[idx], nil
}

// CreateCandidate appends a candidate with id max(existing)+1. Subcategories
// the input does not rate get the default rating.
func (s *Service) CreateCandidate(ctx context.Context, in CandidateInput) (*store.Candidate, error) {
	in.Name = strings.TrimSpace(in.Name)
	if verrs := s.validateStruct(in); len(verrs) > 0 {
		return nil, verrs
	}

	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	cands, err := s.store.GetCandidates(ctx)
	if err != nil {
		return nil, err
	}

	ratings := make(map[int]float64, len(in.Ratings))
	for id, v := range in.Ratings {
		ratings[id] = v
	}
	for _, id := range scoring.NewHierarchy(cats).SubcategoryIDs() {
		if _, ok := ratings[id]; !ok {
			ratings[id] = s.defaultRating
		}
	}

	c := store.Candidate{
		ID:      store.MaxCandidateID(cands) + 1,
		Name:    in.Name,
		Ratings: ratings,
	}
	cands = append(cands, c)
	if err := s.store.SaveCandidates(ctx, cands); err != nil {
		return nil, fmt.Errorf("save candidates: %w", err)
	}
	s.logger.Info("candidate created", "id", c.ID, "ratings", len(ratings))
	return &c, nil
}

// UpdateCandidate replaces a candidate's name and ratings.
func (s *Service) UpdateCandidate(ctx context.Context, id int, in CandidateInput) (*store.Candidate, error) {
	in.Name = strings.TrimSpace(in.Name)
	if verrs := s.validateStruct(in); len(verrs) > 0 {
		return nil, verrs
	}

	cands, err := s.store.GetCandidates(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfCandidate(cands, id)
	if idx < 0 {
		return nil, ErrCandidateNotFound
	}

	ratings := make(map[int]float64, len(in.Ratings))
	for k, v := range in.Ratings {
		ratings[k] = v
	}
	cands[idx] = store.Candidate{ID: id, Name: in.Name, Ratings: ratings}
	if err := s.store.SaveCandidates(ctx, cands); err != nil {
		return nil, fmt.Errorf("save candidates: %w", err)
	}
	s.logger.Info("candidate updated", "id", id)
	return &cands[idx], nil
}

func (s *Service) DeleteCandidate(ctx context.Context, id int) error {
	cands, err := s.store.GetCandidates(ctx)
	if err != nil {
		return err
	}
	idx := indexOfCandidate(cands, id)
	if idx < 0 {
		return ErrCandidateNotFound
	}

	cands = append(cands[:idx], cands[idx+1:]...)
	if err := s.store.SaveCandidates(ctx, cands); err != nil {
		return fmt.Errorf("save candidates: %w", err)
	}
	s.logger.Info("candidate deleted", "id", id)
	return nil
}

// Compare loads both collections and builds the ranked comparison.
func (s *Service) Compare(ctx context.Context) (scoring.Comparison, error) {
	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		return scoring.Comparison{}, err
	}
	cands, err := s.store.GetCandidates(ctx)
	if err != nil {
		return scoring.Comparison{}, err
	}
	return scoring.Compare(cands, cats), nil
}

// Explain returns the ranked breakdown for a single candidate.
func (s *Service) Explain(ctx context.Context, id int) (scoring.Breakdown, error) {
	cmp, err := s.Compare(ctx)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	for _, b := range cmp.Candidates {
		if b.CandidateID == id {
			return b, nil
		}
	}
	return scoring.Breakdown{}, ErrCandidateNotFound
}

func indexOfCandidate(cands []store.Candidate, id int) int {
	for i, c := range cands {
		if c.ID == id {
			return i
		}
	}
	return -1
}
