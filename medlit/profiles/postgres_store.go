package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each profile as a jsonb document in user_profiles
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, uid string) (*Document, error) {
	var raw []byte

	err := s.db.QueryRow(ctx, queryGetProfile, uid).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", uid, err)
	}

	return &doc, nil
}

func (s *PostgresStore) MergeOnboarding(ctx context.Context, uid string, onboarding Onboarding) error {
	payload, err := json.Marshal(onboarding)
	if err != nil {
		return err
	}

	// simple protocol: jsonb goes over the wire as text
	_, err = s.db.Exec(ctx, queryMergeOnboarding, uid, string(payload))
	return err
}

func (s *PostgresStore) UpdateOnboarding(ctx context.Context, uid string, update Update) error {
	if update.IsEmpty() {
		return nil
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, queryUpdateOnboarding, uid, string(payload))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) IncrementStat(ctx context.Context, uid string, field StatField, delta int64) error {
	_, err := s.db.Exec(ctx, queryIncrementStat, uid, string(field), delta)
	return err
}
