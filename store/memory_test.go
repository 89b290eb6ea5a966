// ════════════════════════════════════════════════════════════
// Path: store/memory_test.go
// In-memory store CRUD, patch application and atomic increments.
// ════════════════════════════════════════════════════════════

package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memUser struct {
	ID              int
	Username        string
	LoginRetryLimit int
	IsDeleted       bool
	ReactiveTime    *time.Time
}

func seedUsers(t *testing.T, names ...string) *MemoryStore {
	t.Helper()
	st := NewMemoryStore()
	for _, name := range names {
		if err := st.Create(context.Background(), &memUser{Username: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	return st
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	st := NewMemoryStore()

	a := &memUser{Username: "alice"}
	b := &memUser{Username: "bob"}
	if err := st.Create(context.Background(), a); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.Create(context.Background(), b); err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}

	// An explicit ID advances the sequence past itself.
	c := &memUser{ID: 10, Username: "carol"}
	d := &memUser{Username: "dave"}
	if err := st.Create(context.Background(), c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.Create(context.Background(), d); err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID != 11 {
		t.Fatalf("expected id 11 after explicit id 10, got %d", d.ID)
	}
}

func TestCreateRejectsNonPointer(t *testing.T) {
	st := NewMemoryStore()
	if err := st.Create(context.Background(), memUser{Username: "x"}); err == nil {
		t.Fatal("expected error for non-pointer entity")
	}
}

func TestFindOneReturnsCopy(t *testing.T) {
	st := seedUsers(t, "alice")

	var got memUser
	if err := st.FindOne(context.Background(), &got, Eq("username", "alice")); err != nil {
		t.Fatalf("find: %v", err)
	}
	got.Username = "mutated"

	var again memUser
	if err := st.FindOne(context.Background(), &again, Eq("id", got.ID)); err != nil {
		t.Fatalf("refind: %v", err)
	}
	if again.Username != "alice" {
		t.Fatal("mutating a fetched row must not touch stored state")
	}
}

func TestFindOneNotFound(t *testing.T) {
	st := seedUsers(t, "alice")

	var got memUser
	err := st.FindOne(context.Background(), &got, Eq("username", "nobody"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindAllAndNilFilter(t *testing.T) {
	st := seedUsers(t, "alice", "bob", "carol")

	var all []memUser
	if err := st.FindAll(context.Background(), &all, nil); err != nil {
		t.Fatalf("findall: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}

	var some []memUser
	if err := st.FindAll(context.Background(), &some, In("username", []string{"alice", "carol"})); err != nil {
		t.Fatalf("findall filtered: %v", err)
	}
	if len(some) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(some))
	}

	n, err := st.Count(context.Background(), &memUser{}, Ne("username", "bob"))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
}

func TestUpdateAppliesPatchBySnakeCase(t *testing.T) {
	st := seedUsers(t, "alice", "bob")

	n, err := st.Update(context.Background(), &memUser{}, Eq("username", "alice"), Patch{
		"is_deleted": true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row updated, got %d", n)
	}

	var got memUser
	if err := st.FindOne(context.Background(), &got, Eq("username", "alice")); err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.IsDeleted {
		t.Fatal("patch did not apply")
	}
}

func TestUpdateSetsAndClearsPointerColumns(t *testing.T) {
	st := seedUsers(t, "alice")
	when := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	if _, err := st.Update(context.Background(), &memUser{}, Eq("username", "alice"), Patch{
		"reactive_time": when,
	}); err != nil {
		t.Fatalf("set pointer: %v", err)
	}
	var got memUser
	if err := st.FindOne(context.Background(), &got, Eq("username", "alice")); err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ReactiveTime == nil || !got.ReactiveTime.Equal(when) {
		t.Fatalf("expected reactive_time %v, got %v", when, got.ReactiveTime)
	}

	if _, err := st.Update(context.Background(), &memUser{}, Eq("username", "alice"), Patch{
		"reactive_time": nil,
	}); err != nil {
		t.Fatalf("clear pointer: %v", err)
	}
	if err := st.FindOne(context.Background(), &got, Eq("username", "alice")); err != nil {
		t.Fatalf("refind: %v", err)
	}
	if got.ReactiveTime != nil {
		t.Fatal("expected nil after clearing pointer column")
	}
}

func TestUpdateUnknownColumnFails(t *testing.T) {
	st := seedUsers(t, "alice")

	if _, err := st.Update(context.Background(), &memUser{}, nil, Patch{"no_such": 1}); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestIncrIsAtomicUnderConcurrency(t *testing.T) {
	st := seedUsers(t, "alice")

	const workers = 32
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := st.Update(context.Background(), &memUser{}, Eq("username", "alice"), Patch{
				"login_retry_limit": Incr(1),
			})
			done <- err
		}()
	}
	for i := 0; i < workers; i++ {
		if err := <-done; err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	var got memUser
	if err := st.FindOne(context.Background(), &got, Eq("username", "alice")); err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.LoginRetryLimit != workers {
		t.Fatalf("expected %d increments, got %d", workers, got.LoginRetryLimit)
	}
}

func TestDestroyRemovesOnlyMatches(t *testing.T) {
	st := seedUsers(t, "alice", "bob", "carol")

	n, err := st.Destroy(context.Background(), &memUser{}, Eq("username", "bob"))
	if err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row destroyed, got %d", n)
	}

	remaining, err := st.Count(context.Background(), &memUser{}, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("expected 2 rows left, got %d", remaining)
	}
	var got memUser
	if err := st.FindOne(context.Background(), &got, Eq("username", "bob")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected bob gone, got %v", err)
	}
}

func TestNormalizeColumn(t *testing.T) {
	cases := map[string]string{
		"login_retry_limit": "loginretrylimit",
		"LoginRetryLimit":   "loginretrylimit",
		"ID":                "id",
		"is_deleted":        "isdeleted",
	}
	for in, want := range cases {
		if got := normalizeColumn(in); got != want {
			t.Errorf("normalizeColumn(%q) = %q, want %q", in, got, want)
		}
	}
}
