package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	CollectionCategories = "categories"
	CollectionCandidates = "candidates"
)

// Category is one node of the two-level rubric. ParentID nil marks a main
// category; Weight is only meaningful on subcategories.
type Category struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ParentID *int     `json:"parent_id"`
	Weight   *float64 `json:"weight,omitempty"`
}

// IsMain reports whether the category sits at the top level.
func (c Category) IsMain() bool {
	return c.ParentID == nil
}

// WeightOrZero returns the authored weight, treating an unset weight as 0.
func (c Category) WeightOrZero() float64 {
	if c.Weight == nil {
		return 0
	}
	return *c.Weight
}

// Candidate is a scored person. Ratings maps subcategory id to a 0-10 rating
// and may be sparse or carry keys for categories that no longer exist.
type Candidate struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Ratings map[int]float64 `json:"ratings"`
}

// Rating returns the rating for a category id and whether one was given.
// An absent rating is reported as 0, false.
func (c *Candidate) Rating(categoryID int) (float64, bool) {
	v, ok := c.Ratings[categoryID]
	return v, ok
}

// SaveEvent is delivered to subscribers after a collection has been written.
type SaveEvent struct {
	ID         uuid.UUID `json:"id"`
	Collection string    `json:"collection"`
	Count      int       `json:"count"`
	SavedAt    time.Time `json:"saved_at"`
}

// Backend is a durable key-value medium holding whole collections.
type Backend interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Put(ctx context.Context, name string, data []byte) error
	Close() error
}

// Store reads and replaces the categories and candidates collections.
// Every save replaces the entire collection; the last write wins.
type Store interface {
	GetCategories(ctx context.Context) ([]Category, error)
	SaveCategories(ctx context.Context, categories []Category) error

	GetCandidates(ctx context.Context) ([]Candidate, error)
	SaveCandidates(ctx context.Context, candidates []Candidate) error

	Subscribe(fn func(SaveEvent))

	Close() error
}

// MaxCategoryID returns the highest category id, or 0 for an empty slice.
func MaxCategoryID(categories []Category) int {
	max := 0
	for _, c := range categories {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// MaxCandidateID returns the highest candidate id, or 0 for an empty slice.
func MaxCandidateID(candidates []Candidate) int {
	max := 0
	for _, c := range candidates {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

func IntPtr(v int) *int { return &v }

func Float64Ptr(v float64) *float64 { return &v }
