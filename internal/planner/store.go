// README: Redis-backed plan store with per-plan alternative-lookup locks.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	planKeyPrefix    = "plan:%s"
	altLockKeyPrefix = "plan:%s:alt"

	// Plans are ephemeral documents; a month is plenty for revisiting a day trip.
	planTTL = 30 * 24 * time.Hour

	// An abandoned alternative lookup must not wedge the plan forever.
	altLockTTL = 2 * time.Minute
)

// StoredPlan is a generated plan together with the preferences that produced
// it; alternative lookups need the original preferences back.
type StoredPlan struct {
	ID          string      `json:"id"`
	Preferences Preferences `json:"preferences"`
	Plan        TripPlan    `json:"plan"`
}

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Save persists a freshly generated plan under a new id.
func (s *Store) Save(ctx context.Context, prefs Preferences, plan TripPlan) (string, error) {
	id := uuid.NewString()
	record := StoredPlan{ID: id, Preferences: prefs, Plan: plan}
	if err := s.write(ctx, record); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads a stored plan. Returns ErrPlanNotFound for unknown or expired ids.
func (s *Store) Get(ctx context.Context, id string) (StoredPlan, error) {
	raw, err := s.redis.Get(ctx, planKey(id)).Bytes()
	if err == redis.Nil {
		return StoredPlan{}, ErrPlanNotFound
	}
	if err != nil {
		return StoredPlan{}, err
	}
	var record StoredPlan
	if err := json.Unmarshal(raw, &record); err != nil {
		return StoredPlan{}, fmt.Errorf("decode stored plan %s: %w", id, err)
	}
	return record, nil
}

// Update replaces the plan document for an existing id, keeping its
// preferences and refreshing the TTL.
func (s *Store) Update(ctx context.Context, id string, plan TripPlan) error {
	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	record.Plan = plan
	return s.write(ctx, record)
}

// AcquireAlternativeLock claims the single-flight slot for alternative
// lookups on a plan. Returns false when another lookup is still in flight.
func (s *Store) AcquireAlternativeLock(ctx context.Context, id string) (bool, error) {
	return s.redis.SetNX(ctx, altLockKey(id), time.Now().UTC().Format(time.RFC3339), altLockTTL).Result()
}

// ReleaseAlternativeLock frees the slot once the lookup has settled.
func (s *Store) ReleaseAlternativeLock(ctx context.Context, id string) error {
	return s.redis.Del(ctx, altLockKey(id)).Err()
}

func (s *Store) write(ctx context.Context, record StoredPlan) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode plan %s: %w", record.ID, err)
	}
	return s.redis.Set(ctx, planKey(record.ID), raw, planTTL).Err()
}

func planKey(id string) string    { return fmt.Sprintf(planKeyPrefix, id) }
func altLockKey(id string) string { return fmt.Sprintf(altLockKeyPrefix, id) }
