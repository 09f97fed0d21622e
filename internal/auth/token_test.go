package auth

import (
	"encoding/base64"
	"testing"
	"time"
)

func TestTokenRoundtrip(t *testing.T) {
	claims := Claims{
		Sub:  "1",
		Name: "Sarah Johnson",
		Role: "client",
		Exp:  time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}

	token, err := EncodeToken(claims)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// The token is plain base64 of JSON claims, like the tokens the
	// browser build wrote with btoa.
	if _, err := base64.StdEncoding.DecodeString(token); err != nil {
		t.Errorf("token is not valid base64: %v", err)
	}

	got, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != claims {
		t.Errorf("roundtrip gave %+v, want %+v", got, claims)
	}
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	if _, err := DecodeToken("not base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := DecodeToken(base64.StdEncoding.EncodeToString([]byte("not json"))); err == nil {
		t.Error("expected error for non-JSON payload")
	}
}

func TestClaimsExpired(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	live := Claims{Exp: now.Add(time.Hour).UnixMilli()}
	if live.Expired(now) {
		t.Error("token expiring in an hour reported as expired")
	}

	dead := Claims{Exp: now.Add(-time.Hour).UnixMilli()}
	if !dead.Expired(now) {
		t.Error("token expired an hour ago reported as live")
	}
}
