package lock_test

import (
	"errors"
	"path/filepath"
	"testing"

	"go.trai.ch/lode/internal/adapters/lock"
	"go.trai.ch/lode/internal/core/domain"
)

func newStore(t *testing.T) *lock.Store {
	t.Helper()
	s, err := lock.Open(filepath.Join(t.TempDir(), "lode.lock"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestStore_WriteThenVerifyRoundTrip(t *testing.T) {
	s := newStore(t)
	content := []byte("export const x = 1;\n")

	if err := s.Write("jsr:@x/y@1.3.0", content); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Unchanged content always verifies, in both modes.
	if err := s.Verify("jsr:@x/y@1.3.0", content, domain.LockAdditive); err != nil {
		t.Fatalf("Verify after Write failed: %v", err)
	}
	if err := s.Verify("jsr:@x/y@1.3.0", content, domain.LockFrozen); err != nil {
		t.Fatalf("frozen Verify after Write failed: %v", err)
	}
}

func TestStore_VerifyIdempotent(t *testing.T) {
	s := newStore(t)
	content := []byte("body")

	if err := s.Verify("npm:preact@10.5.0", content, domain.LockAdditive); err != nil {
		t.Fatalf("first Verify failed: %v", err)
	}
	if err := s.Verify("npm:preact@10.5.0", content, domain.LockAdditive); err != nil {
		t.Fatalf("second Verify failed: %v", err)
	}
}

func TestStore_IntegrityMismatch(t *testing.T) {
	s := newStore(t)

	if err := s.Write("jsr:@x/y@1.3.0", []byte("original")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	err := s.Verify("jsr:@x/y@1.3.0", []byte("tampered"), domain.LockAdditive)
	if !errors.Is(err, domain.ErrIntegrityMismatch) {
		t.Fatalf("expected ErrIntegrityMismatch, got %v", err)
	}

	// A subsequent explicit Write re-locks the entry.
	if err := s.Write("jsr:@x/y@1.3.0", []byte("tampered")); err != nil {
		t.Fatalf("re-Write failed: %v", err)
	}
	if err := s.Verify("jsr:@x/y@1.3.0", []byte("tampered"), domain.LockFrozen); err != nil {
		t.Fatalf("Verify after re-Write failed: %v", err)
	}
}

func TestStore_FrozenRejectsUntracked(t *testing.T) {
	s := newStore(t)

	err := s.Verify("jsr:@new/dep@2.0.0", []byte("body"), domain.LockFrozen)
	if !errors.Is(err, domain.ErrUntrackedDependency) {
		t.Fatalf("expected ErrUntrackedDependency, got %v", err)
	}

	// Additive mode appends the same entry and succeeds.
	if err := s.Verify("jsr:@new/dep@2.0.0", []byte("body"), domain.LockAdditive); err != nil {
		t.Fatalf("additive Verify failed: %v", err)
	}
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lode.lock")

	s1, err := lock.Open(path)
	if err != nil {
		t.Fatalf("Open 1 failed: %v", err)
	}
	if err := s1.Write("https://example.com/mod.ts", []byte("body")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	s2, err := lock.Open(path)
	if err != nil {
		t.Fatalf("Open 2 failed: %v", err)
	}
	if err := s2.Verify("https://example.com/mod.ts", []byte("body"), domain.LockFrozen); err != nil {
		t.Fatalf("Verify against reloaded store failed: %v", err)
	}

	snap := s2.Snapshot()
	if snap.Version != domain.LockfileVersion {
		t.Errorf("expected version %d, got %d", domain.LockfileVersion, snap.Version)
	}
	if len(snap.Modules) != 1 {
		t.Errorf("expected 1 module, got %d", len(snap.Modules))
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := newStore(t)
	if err := s.Write("jsr:@x/y@1.0.0", []byte("a")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	snap := s.Snapshot()
	snap.Modules["jsr:@x/y@1.0.0"] = "tampered"

	if err := s.Verify("jsr:@x/y@1.0.0", []byte("a"), domain.LockFrozen); err != nil {
		t.Errorf("snapshot mutation leaked into store: %v", err)
	}
}
