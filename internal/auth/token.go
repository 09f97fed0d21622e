package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Claims is the demo session token payload. Tokens are base64-encoded
// JSON, not signed: this is a demo login, not real authentication. The
// expiry is in Unix milliseconds to stay byte-compatible with tokens the
// browser build issued.
type Claims struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
	Role string `json:"role"`
	Exp  int64  `json:"exp"`
}

// Expired reports whether the claims have passed their expiry.
func (c Claims) Expired(now time.Time) bool {
	return now.UnixMilli() > c.Exp
}

// EncodeToken serializes claims into a token string.
func EncodeToken(c Claims) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeToken parses a token string back into claims.
func DecodeToken(token string) (Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, fmt.Errorf("malformed token: %w", err)
	}
	var c Claims
	if err := json.Unmarshal(raw, &c); err != nil {
		return Claims{}, fmt.Errorf("malformed token: %w", err)
	}
	return c, nil
}
