package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/storage"
)

// Zero-delay stores complete synchronously; latency behavior is covered
// separately in TestStoreSimulatedLatency.
func newTestClientStore(t *testing.T) *MemClientStore {
	t.Helper()
	s, err := NewMemClientStore(nil, 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestClientStoreCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	created, err := s.Create(ctx, domain.NewClient("Jane Cooper", "jane@acme.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("created client has no id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("created client has no creation timestamp")
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Jane Cooper" || got.Email != "jane@acme.com" {
		t.Errorf("stored client = %+v", got)
	}

	// Ids are unique across creates
	second, err := s.Create(ctx, domain.NewClient("Other", "other@acme.com"))
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.ID == created.ID {
		t.Error("two creates produced the same id")
	}
}

func TestClientStoreCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	if _, err := s.Create(ctx, domain.NewClient("", "jane@acme.com")); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := s.Create(ctx, domain.NewClient("Jane", "not-an-email")); err == nil {
		t.Error("expected error for bad email")
	}

	clients, _ := s.List(ctx)
	if len(clients) != 0 {
		t.Errorf("invalid creates stored %d clients", len(clients))
	}
}

func TestClientStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	client := domain.NewClient("Jane Cooper", "jane@acme.com")
	client.Company = "Acme Inc"
	client.Notes = "keep me"
	created, err := s.Create(ctx, client)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Patch only the company; everything else must survive
	company := "Acme Corporation"
	status := domain.ClientStatusInactive
	updated, err := s.Update(ctx, created.ID, ClientPatch{Company: &company, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("update changed the id: %s -> %s", created.ID, updated.ID)
	}
	if updated.Company != "Acme Corporation" || updated.Status != domain.ClientStatusInactive {
		t.Errorf("patched fields not applied: %+v", updated)
	}
	if updated.Name != "Jane Cooper" || updated.Email != "jane@acme.com" || updated.Notes != "keep me" {
		t.Errorf("unpatched fields lost: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update changed the creation timestamp")
	}
}

func TestClientStoreUpdateRejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	created, err := s.Create(ctx, domain.NewClient("Jane", "jane@acme.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := "not-an-email"
	if _, err := s.Update(ctx, created.ID, ClientPatch{Email: &bad}); err == nil {
		t.Error("expected error for invalid patched email")
	}

	// Stored record untouched
	got, _ := s.GetByID(ctx, created.ID)
	if got.Email != "jane@acme.com" {
		t.Errorf("failed update mutated the record: %s", got.Email)
	}
}

func TestClientStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	created, err := s.Create(ctx, domain.NewClient("Jane", "jane@acme.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("double delete: %v, want ErrNotFound", err)
	}
}

func TestClientStoreMissingID(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	if _, err := s.GetByID(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get: %v, want ErrNotFound", err)
	}
	name := "x"
	if _, err := s.Update(ctx, "nope", ClientPatch{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update: %v, want ErrNotFound", err)
	}
}

func TestClientStoreListReturnsSnapshots(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStore(t)

	if _, err := s.Create(ctx, domain.NewClient("Jane", "jane@acme.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	list[0].Name = "mutated"

	again, _ := s.List(ctx)
	if again[0].Name != "Jane" {
		t.Error("List exposed internal state to callers")
	}
}

func TestClientStorePersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "localstore.json")

	local, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open localstore: %v", err)
	}
	s, err := NewMemClientStore(local, 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	created, err := s.Create(ctx, domain.NewClient("Jane", "jane@acme.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A store over a fresh localstore handle sees the persisted record
	local2, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen localstore: %v", err)
	}
	s2, err := NewMemClientStore(local2, 0)
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	got, err := s2.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if got.Name != "Jane" {
		t.Errorf("reloaded client = %+v", got)
	}
}

func TestStoreSimulatedLatency(t *testing.T) {
	s, err := NewMemClientStore(nil, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	start := time.Now()
	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("list returned after %v, want >= 20ms", elapsed)
	}
}

func TestStoreContextCancellation(t *testing.T) {
	s, err := NewMemClientStore(nil, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.List(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("list with expired ctx: %v, want DeadlineExceeded", err)
	}

	// A cancelled context fails even with zero delay
	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	zero := newTestClientStore(t)
	if _, err := zero.List(cancelled); !errors.Is(err, context.Canceled) {
		t.Errorf("list with cancelled ctx: %v, want Canceled", err)
	}
}
