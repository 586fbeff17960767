package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newSession(symptom string) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Symptom:   symptom,
		Phase:     PhaseUniversal,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	sess := newSession("fever")

	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := store.Load(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID || got.Symptom != "fever" {
		t.Errorf("loaded %+v", got)
	}
}

func TestMemoryStore_LoadUnknown(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Load(context.Background(), uuid.New())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	sess := newSession("fever")
	sess.UniversalAnswers = []QA{{QuestionID: "age", Answer: "18-30"}}
	store.Save(ctx, sess)

	got, _ := store.Load(ctx, sess.ID)
	got.Symptom = "tampered"
	got.UniversalAnswers[0].Answer = "tampered"

	again, _ := store.Load(ctx, sess.ID)
	if again.Symptom != "fever" || again.UniversalAnswers[0].Answer != "18-30" {
		t.Error("mutating a loaded session changed the stored one")
	}
}

func TestMemoryStore_SaveStoresCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	sess := newSession("fever")
	store.Save(ctx, sess)

	sess.Symptom = "tampered"

	got, _ := store.Load(ctx, sess.ID)
	if got.Symptom != "fever" {
		t.Error("mutating the saved session changed the stored one")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	sess := newSession("fever")
	store.Save(ctx, sess)

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Load(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
	if err := store.Delete(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second delete err = %v, want ErrSessionNotFound", err)
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	first := newSession("fever")
	second := newSession("headache")
	third := newSession("cough")
	store.Save(ctx, first)
	store.Save(ctx, second)
	store.Save(ctx, third)

	got, total, err := store.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(got) != 2 || got[0].Symptom != "cough" || got[1].Symptom != "headache" {
		t.Errorf("page = %v", symptoms(got))
	}

	got, _, _ = store.List(ctx, 2, 2)
	if len(got) != 1 || got[0].Symptom != "fever" {
		t.Errorf("second page = %v", symptoms(got))
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	stale := newSession("fever")
	stale.UpdatedAt = time.Now().Add(-2 * time.Minute)
	store.Save(ctx, stale)

	if _, err := store.Load(ctx, stale.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session loaded: err = %v", err)
	}

	_, total, _ := store.List(ctx, 10, 0)
	if total != 0 {
		t.Errorf("expired session still listed, total = %d", total)
	}
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	old := newSession("fever")
	old.UpdatedAt = time.Now().Add(-24 * time.Hour)
	store.Save(ctx, old)

	if _, err := store.Load(ctx, old.ID); err != nil {
		t.Errorf("zero TTL must disable expiry: %v", err)
	}
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	fresh := newSession("headache")
	store.Save(ctx, fresh)
	// Saved second so the save-time prune cannot drop it before the call
	// under test runs.
	stale := newSession("fever")
	stale.UpdatedAt = time.Now().Add(-2 * time.Minute)
	store.Save(ctx, stale)

	n, err := store.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("dropped = %d, want 1", n)
	}
	if _, err := store.Load(ctx, fresh.ID); err != nil {
		t.Errorf("fresh session dropped: %v", err)
	}
}

func symptoms(sessions []*Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.Symptom
	}
	return out
}
