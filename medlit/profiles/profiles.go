package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// reads and writes user profiles on top of a Store
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// stores the onboarding answers and marks onboarding complete
func (s *Service) SaveOnboarding(ctx context.Context, uid string, onboarding Onboarding) error {
	completedAt := s.now().UTC()
	onboarding.CompletedAt = &completedAt

	if err := s.store.MergeOnboarding(ctx, uid, onboarding); err != nil {
		return fmt.Errorf("failed to save onboarding data: %w", err)
	}

	return nil
}

// onboarding is complete iff the document carries a completion timestamp
func (s *Service) OnboardingStatus(ctx context.Context, uid string) Status {
	doc, err := s.store.Get(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return Status{Completed: false}
	}

	if err != nil {
		return Status{Completed: false, Err: fmt.Errorf("failed to check onboarding status: %w", err)}
	}

	return Status{Completed: doc.Onboarding.CompletedAt != nil}
}

// returns the profile with zero values for anything missing; never fails
func (s *Service) ProfileData(ctx context.Context, uid string) ProfileData {
	doc, err := s.store.Get(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return ProfileData{}
	}

	if err != nil {
		return ProfileData{Err: fmt.Errorf("failed to fetch profile data: %w", err)}
	}

	return ProfileData{Document: *doc}
}

// changes the editable onboarding fields, doing nothing when the update is empty
func (s *Service) UpdateProfile(ctx context.Context, uid string, update Update) error {
	if update.IsEmpty() {
		return nil
	}

	if err := s.store.UpdateOnboarding(ctx, uid, update); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// bumps a usage counter by one
func (s *Service) RecordStat(ctx context.Context, uid string, field StatField) error {
	if !field.Valid() {
		return fmt.Errorf("unknown stat %q", field)
	}

	if err := s.store.IncrementStat(ctx, uid, field, 1); err != nil {
		return fmt.Errorf("failed to record %s: %w", field, err)
	}

	return nil
}
