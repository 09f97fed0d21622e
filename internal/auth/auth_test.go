package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/storage"
)

func newTestAuthService(t *testing.T) (*service, *storage.LocalStore) {
	t.Helper()
	local, err := storage.Open(filepath.Join(t.TempDir(), "localstore.json"))
	if err != nil {
		t.Fatalf("open localstore: %v", err)
	}
	svc := NewService(DemoAccounts(), local, NoopKeeper{}, 0).(*service)
	return svc, local
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc, local := newTestAuthService(t)

	session, err := svc.Login(ctx, "client@example.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if session.User.Email != "client@example.com" || session.User.Role != domain.RoleClient {
		t.Errorf("session user = %+v", session.User)
	}
	if session.ClientID != "1" {
		t.Errorf("clientID = %s, want 1", session.ClientID)
	}
	if session.Token == "" {
		t.Error("no token issued")
	}

	// Token and user are persisted under the browser-compatible keys
	if _, ok, _ := local.GetString(storage.KeyToken); !ok {
		t.Error("token not persisted")
	}
	var user domain.User
	if ok, _ := local.GetJSON(storage.KeyUser, &user); !ok || user.Name == "" {
		t.Error("user profile not persisted")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	if _, err := svc.Login(ctx, "client@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: %v, want ErrInvalidCredentials", err)
	}
}

func TestCurrentAfterLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	if _, err := svc.Current(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("current before login: %v, want ErrNotAuthenticated", err)
	}

	logged, err := svc.Login(ctx, "michael@techsolutions.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	session, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if session.Token != logged.Token {
		t.Error("current returned a different token")
	}
	if session.ClientID != "2" {
		t.Errorf("clientID = %s, want 2", session.ClientID)
	}
	if session.User.Name != "Michael Rodriguez" {
		t.Errorf("user name = %s", session.User.Name)
	}
}

func TestCurrentExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	if _, err := svc.Login(ctx, "client@example.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Jump past the 24h token lifetime
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	if _, err := svc.Current(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("current with expired token: %v, want ErrNotAuthenticated", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, local := newTestAuthService(t)

	if _, err := svc.Login(ctx, "client@example.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.Current(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("current after logout: %v, want ErrNotAuthenticated", err)
	}
	if _, ok, _ := local.GetString(storage.KeyToken); ok {
		t.Error("token survived logout")
	}
	if ok, _ := local.GetJSON(storage.KeyUser, &domain.User{}); ok {
		t.Error("user profile survived logout")
	}
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	local, err := storage.Open(filepath.Join(t.TempDir(), "localstore.json"))
	if err != nil {
		t.Fatalf("open localstore: %v", err)
	}
	svc := NewService(DemoAccounts(), local, NoopKeeper{}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := svc.Login(ctx, "client@example.com", "password"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("login with expired ctx: %v, want DeadlineExceeded", err)
	}
}
