package profiles

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process memory, for development and tests
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

func (s *MemoryStore) Get(_ context.Context, uid string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[uid]
	if !ok {
		return nil, ErrNotFound
	}

	if doc.Onboarding.CompletedAt != nil {
		completedAt := *doc.Onboarding.CompletedAt
		doc.Onboarding.CompletedAt = &completedAt
	}

	return &doc, nil
}

func (s *MemoryStore) MergeOnboarding(_ context.Context, uid string, onboarding Onboarding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.docs[uid]
	doc.Onboarding = onboarding
	s.docs[uid] = doc

	return nil
}

func (s *MemoryStore) UpdateOnboarding(_ context.Context, uid string, update Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[uid]
	if !ok {
		return ErrNotFound
	}

	if update.About != nil {
		doc.Onboarding.About = *update.About
	}

	if update.Field != nil {
		doc.Onboarding.Field = *update.Field
	}

	s.docs[uid] = doc
	return nil
}

func (s *MemoryStore) IncrementStat(_ context.Context, uid string, field StatField, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.docs[uid]

	switch field {
	case StatPapersRead:
		doc.Stats.PapersRead += delta
	case StatAIInteractions:
		doc.Stats.AIInteractions += delta
	case StatDaysActive:
		doc.Stats.DaysActive += delta
	}

	s.docs[uid] = doc
	return nil
}
