package rubric

import (
	"context"
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

// CategoryInput is the editable part of a category. A nil ParentID creates
// a main category; otherwise Weight is required.
type CategoryInput struct {
	Name     string   `json:"name" validate:"required,max=120"`
	ParentID *int     `json:"parent_id"`
	Weight   *float64 `json:"weight"`
}

func (s *Service) ListCategories(ctx context.Context) ([]store.Category, error) {
	return s.store.GetCategories(ctx)
}

// CreateCategory appends a category with id max(existing)+1.
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*store.Category, error) {
	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	in = normalizeCategoryInput(in)
	if verrs := s.checkCategory(in, 0, cats); len(verrs) > 0 {
		return nil, verrs
	}

	cat := buildCategory(store.MaxCategoryID(cats)+1, in)
	cats = append(cats, cat)
	if err := s.store.SaveCategories(ctx, cats); err != nil {
		return nil, fmt.Errorf("save categories: %w", err)
	}
	s.logger.Info("category created", "id", cat.ID, "main", cat.IsMain())
	return &cat, nil
}

// UpdateCategory replaces the category with the given id.
func (s *Service) UpdateCategory(ctx context.Context, id int, in CategoryInput) (*store.Category, error) {
	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfCategory(cats, id)
	if idx < 0 {
		return nil, ErrCategoryNotFound
	}

	in = normalizeCategoryInput(in)
	if verrs := s.checkCategory(in, id, cats); len(verrs) > 0 {
		return nil, verrs
	}

	cat := buildCategory(id, in)
	cats[idx] = cat
	if err := s.store.SaveCategories(ctx, cats); err != nil {
		return nil, fmt.Errorf("save categories: %w", err)
	}
	s.logger.Info("category updated", "id", id)
	return &cat, nil
}

// DeleteCategory removes one category. Subcategories of a deleted main
// category and ratings that reference a deleted subcategory are left in
// place; scoring ignores them.
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		return err
	}

	idx := indexOfCategory(cats, id)
	if idx < 0 {
		return ErrCategoryNotFound
	}

	cats = append(cats[:idx], cats[idx+1:]...)
	if err := s.store.SaveCategories(ctx, cats); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	s.logger.Info("category deleted", "id", id)
	return nil
}

// ResetCategories restores the default rubric.
func (s *Service) ResetCategories(ctx context.Context) ([]store.Category, error) {
	cats := store.DefaultCategories()
	if err := s.store.SaveCategories(ctx, cats); err != nil {
		return nil, fmt.Errorf("save categories: %w", err)
	}
	s.logger.Info("categories reset to defaults", "count", len(cats))
	return cats, nil
}

// checkCategory validates an input against the current rubric. selfID is 0
// when creating.
func (s *Service) checkCategory(in CategoryInput, selfID int, cats []store.Category) ValidationErrors {
	verrs := s.validateStruct(in)
	if in.ParentID == nil {
		return verrs
	}

	switch {
	case in.Weight == nil:
		verrs = append(verrs, FieldError{Field: "weight", Message: "is required for a subcategory"})
	case *in.Weight <= 0 || *in.Weight > MaxWeight:
		verrs = append(verrs, FieldError{Field: "weight", Message: "must be greater than 0 and at most 100"})
	}

	parent := *in.ParentID
	switch pidx := indexOfCategory(cats, parent); {
	case selfID != 0 && parent == selfID:
		verrs = append(verrs, FieldError{Field: "parent_id", Message: "cannot reference the category itself"})
	case pidx < 0:
		verrs = append(verrs, FieldError{Field: "parent_id", Message: "must reference an existing main category"})
	case !cats[pidx].IsMain():
		verrs = append(verrs, FieldError{Field: "parent_id", Message: "must reference a main category, not a subcategory"})
	}

	if selfID != 0 {
		for _, c := range cats {
			if c.ParentID != nil && *c.ParentID == selfID && c.ID != selfID {
				verrs = append(verrs, FieldError{Field: "parent_id", Message: "a category with subcategories cannot become a subcategory"})
				break
			}
		}
	}
	return verrs
}

// normalizeCategoryInput trims the name and drops any weight sent for a
// main category, whose weight is derived from its subcategories.
func normalizeCategoryInput(in CategoryInput) CategoryInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.ParentID == nil {
		in.Weight = nil
	}
	return in
}

func buildCategory(id int, in CategoryInput) store.Category {
	cat := store.Category{ID: id, Name: in.Name}
	if in.ParentID == nil {
		cat.Weight = store.Float64Ptr(0)
		return cat
	}
	cat.ParentID = store.IntPtr(*in.ParentID)
	cat.Weight = store.Float64Ptr(*in.Weight)
	return cat
}

func indexOfCategory(cats []store.Category, id int) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}
