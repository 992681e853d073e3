package profiles

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// collection holding one document per user, keyed by uid
const usersCollection = "users"

// FirestoreStore keeps profiles in the users collection of Cloud Firestore
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid)
}

func (s *FirestoreStore) Get(ctx context.Context, uid string) (*Document, error) {
	snap, err := s.doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	var doc Document
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", uid, err)
	}

	return &doc, nil
}

func (s *FirestoreStore) MergeOnboarding(ctx context.Context, uid string, onboarding Onboarding) error {
	data := map[string]any{
		"onboarding": map[string]any{
			"profession":  onboarding.Profession,
			"field":       onboarding.Field,
			"frequency":   onboarding.Frequency,
			"about":       onboarding.About,
			"completedAt": onboarding.CompletedAt,
		},
	}

	_, err := s.doc(uid).Set(ctx, data, firestore.MergeAll)
	return err
}

func (s *FirestoreStore) UpdateOnboarding(ctx context.Context, uid string, update Update) error {
	var updates []firestore.Update

	if update.About != nil {
		updates = append(updates, firestore.Update{Path: "onboarding.about", Value: *update.About})
	}

	if update.Field != nil {
		updates = append(updates, firestore.Update{Path: "onboarding.field", Value: *update.Field})
	}

	if len(updates) == 0 {
		return nil
	}

	_, err := s.doc(uid).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}

	return err
}

func (s *FirestoreStore) IncrementStat(ctx context.Context, uid string, field StatField, delta int64) error {
	data := map[string]any{
		"stats": map[string]any{
			string(field): firestore.Increment(delta),
		},
	}

	_, err := s.doc(uid).Set(ctx, data, firestore.MergeAll)
	return err
}
