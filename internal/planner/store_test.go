package planner

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// setupTestStore creates a real redis-backed Store for integration tests.
// It skips the test when DAYPLAN_TEST_REDIS is not set.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	addr := os.Getenv("DAYPLAN_TEST_REDIS")
	if addr == "" {
		t.Skip("DAYPLAN_TEST_REDIS not set; skipping redis-backed tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return NewStore(client)
}

func TestStoreSaveGetUpdate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	prefs := Preferences{Location: "Porto", ActivityType: ActivityTypeMix, Interests: "food", TripDate: "today"}
	plan := replacementFixture()

	id, err := store.Save(ctx, prefs, plan)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned an empty id")
	}

	record, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.ID != id || record.Plan.Title != plan.Title || record.Preferences.Location != "Porto" {
		t.Errorf("stored record mismatch: %+v", record)
	}

	updated, err := ReplaceActivity(plan, 0, Activity{TimeOfDay: "Morning", Title: "Covered Market", Description: "Rainy fallback."})
	if err != nil {
		t.Fatalf("ReplaceActivity: %v", err)
	}
	if err := store.Update(ctx, id, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	record, err = store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if record.Plan.Itinerary[0].Title != "Covered Market" {
		t.Errorf("update not persisted: %q", record.Plan.Itinerary[0].Title)
	}
	if record.Preferences.Location != "Porto" {
		t.Errorf("update must keep the original preferences")
	}
}

func TestStoreGetUnknownID(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestStoreAlternativeLockSingleFlight(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, Preferences{Location: "Porto", ActivityType: ActivityTypeMix, Interests: "food", TripDate: "today"}, replacementFixture())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	ok, err := store.AcquireAlternativeLock(ctx, id)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	ok, err = store.AcquireAlternativeLock(ctx, id)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if ok {
		t.Fatal("second acquire should be rejected while the first is held")
	}

	if err := store.ReleaseAlternativeLock(ctx, id); err != nil {
		t.Fatalf("release: %v", err)
	}

	ok, err = store.AcquireAlternativeLock(ctx, id)
	if err != nil || !ok {
		t.Fatalf("acquire after release: ok=%v err=%v", ok, err)
	}
	_ = store.ReleaseAlternativeLock(ctx, id)
}
