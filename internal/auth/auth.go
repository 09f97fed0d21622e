// Package auth implements the demo client-portal login. Credentials are
// checked against a fixed account list after a simulated network delay;
// the session token and user profile are persisted under the
// freelink-token and freelink-user keys like the browser build did.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/storage"
)

// ErrNotAuthenticated is returned when no valid session exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// Account is a demo portal account. ClientID links the login to the
// client record whose data the portal shows.
type Account struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     string
	ClientID string
}

// DemoAccounts returns the built-in portal accounts.
func DemoAccounts() []Account {
	return []Account{
		{ID: "1", Email: "client@example.com", Password: "password", Name: "Sarah Johnson", Role: domain.RoleClient, ClientID: "1"},
		{ID: "2", Email: "michael@techsolutions.com", Password: "password", Name: "Michael Rodriguez", Role: domain.RoleClient, ClientID: "2"},
	}
}

// Session is an authenticated portal session.
type Session struct {
	User     domain.User
	Token    string
	ClientID string
}

// Service handles login, logout, and session lookup.
type Service interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context) error
	// Current returns the active session, or ErrNotAuthenticated when
	// there is none or the token has expired.
	Current(ctx context.Context) (*Session, error)
}

type service struct {
	accounts []Account
	local    *storage.LocalStore
	keeper   TokenKeeper
	delay    time.Duration
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates an auth service over the given accounts. keeper may
// be NoopKeeper when no system keyring is available.
func NewService(accounts []Account, local *storage.LocalStore, keeper TokenKeeper, delay time.Duration) Service {
	return &service{
		accounts: accounts,
		local:    local,
		keeper:   keeper,
		delay:    delay,
		ttl:      24 * time.Hour,
		now:      time.Now,
	}
}

func (s *service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	var account *Account
	for i := range s.accounts {
		if s.accounts[i].Email == email && s.accounts[i].Password == password {
			account = &s.accounts[i]
			break
		}
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := EncodeToken(Claims{
		Sub:  account.ID,
		Name: account.Name,
		Role: account.Role,
		Exp:  s.now().Add(s.ttl).UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := &Session{
		User: domain.User{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Role:  account.Role,
		},
		Token:    token,
		ClientID: account.ClientID,
	}

	if err := s.local.SetString(storage.KeyToken, token); err != nil {
		return nil, err
	}
	if err := s.local.SetJSON(storage.KeyUser, session.User); err != nil {
		return nil, err
	}
	if err := s.keeper.Set(token); err != nil {
		slog.Warn("keyring unavailable, session token kept in localstore only", "error", err)
	}

	return session, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.local.Remove(storage.KeyToken); err != nil {
		return err
	}
	if err := s.local.Remove(storage.KeyUser); err != nil {
		return err
	}
	if err := s.keeper.Delete(); err != nil {
		slog.Warn("failed to clear keyring token", "error", err)
	}
	return nil
}

func (s *service) Current(ctx context.Context) (*Session, error) {
	token, err := s.keeper.Get()
	if err != nil || token == "" {
		var ok bool
		token, ok, _ = s.local.GetString(storage.KeyToken)
		if !ok || token == "" {
			return nil, ErrNotAuthenticated
		}
	}

	claims, err := DecodeToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	if claims.Expired(s.now()) {
		return nil, fmt.Errorf("%w: session expired", ErrNotAuthenticated)
	}

	session := &Session{Token: token, ClientID: claims.Sub}
	if ok, err := s.local.GetJSON(storage.KeyUser, &session.User); err != nil || !ok {
		session.User = domain.User{ID: claims.Sub, Name: claims.Name, Role: claims.Role}
	}
	for _, account := range s.accounts {
		if account.ID == claims.Sub {
			session.ClientID = account.ClientID
			break
		}
	}
	return session, nil
}
