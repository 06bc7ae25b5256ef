package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Shortlist/internal/hermes"
)

// Option configures a CollectionStore.
type Option func(*CollectionStore)

// WithPublisher publishes a SaveEvent to hermes after every successful save.
func WithPublisher(h hermes.Client) Option {
	return func(s *CollectionStore) {
		s.hermes = h
	}
}

// WithFallbackHook is called whenever a stored collection could not be
// decoded and the default seed was served instead.
func WithFallbackHook(fn func(collection string)) Option {
	return func(s *CollectionStore) {
		s.onFallback = fn
	}
}

// CollectionStore implements Store on top of any Backend by keeping each
// collection as one JSON array.
type CollectionStore struct {
	backend    Backend
	hermes     hermes.Client
	onFallback func(collection string)
	logger     *slog.Logger
	now        func() time.Time

	mu          sync.RWMutex
	subscribers []func(SaveEvent)
}

func NewCollectionStore(backend Backend, logger *slog.Logger, opts ...Option) *CollectionStore {
	s := &CollectionStore{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CollectionStore) GetCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	found, err := s.load(ctx, CollectionCategories, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultCategories(), nil
	}
	if out == nil {
		out = []Category{}
	}
	return out, nil
}

func (s *CollectionStore) SaveCategories(ctx context.Context, categories []Category) error {
	if categories == nil {
		categories = []Category{}
	}
	return s.save(ctx, CollectionCategories, categories, len(categories))
}

func (s *CollectionStore) GetCandidates(ctx context.Context) ([]Candidate, error) {
	var out []Candidate
	found, err := s.load(ctx, CollectionCandidates, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultCandidates(), nil
	}
	if out == nil {
		out = []Candidate{}
	}
	for i := range out {
		if out[i].Ratings == nil {
			out[i].Ratings = map[int]float64{}
		}
	}
	return out, nil
}

func (s *CollectionStore) SaveCandidates(ctx context.Context, candidates []Candidate) error {
	if candidates == nil {
		candidates = []Candidate{}
	}
	return s.save(ctx, CollectionCandidates, candidates, len(candidates))
}

// Subscribe registers fn to run after every successful save. Subscribers are
// called synchronously, in registration order.
func (s *CollectionStore) Subscribe(fn func(SaveEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *CollectionStore) Close() error {
	return s.backend.Close()
}

// load decodes the named collection into dst. It reports found=false when
// nothing was ever stored or when the stored bytes are not decodable, in
// which case the caller serves the default seed.
func (s *CollectionStore) load(ctx context.Context, name string, dst interface{}) (bool, error) {
	data, found, err := s.backend.Get(ctx, name)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("stored collection is corrupt, serving defaults", "collection", name, "error", err)
		if s.onFallback != nil {
			s.onFallback(name)
		}
		return false, nil
	}
	return true, nil
}

func (s *CollectionStore) save(ctx context.Context, name string, v interface{}, count int) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.backend.Put(ctx, name, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	evt := SaveEvent{
		ID:         uuid.New(),
		Collection: name,
		Count:      count,
		SavedAt:    s.now().UTC(),
	}
	s.notify(evt)
	return nil
}

func (s *CollectionStore) notify(evt SaveEvent) {
	s.mu.RLock()
	subs := make([]func(SaveEvent), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(evt)
	}

	if s.hermes == nil {
		return
	}
	payload := hermes.CollectionSavedEvent{
		EventID:    evt.ID.String(),
		Collection: evt.Collection,
		Count:      evt.Count,
		SavedAt:    evt.SavedAt,
	}
	if err := hermes.PublishCollectionSaved(s.hermes, payload); err != nil {
		s.logger.Warn("failed to publish save event", "collection", evt.Collection, "error", err)
	}
}
