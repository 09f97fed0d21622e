package auth

import "github.com/zalando/go-keyring"

const (
	keyringService = "freelink"
	keyringUser    = "session-token"
)

// TokenKeeper stores the session token somewhere more private than the
// localstore file.
type TokenKeeper interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// SystemKeyring keeps the token in the OS keyring.
type SystemKeyring struct{}

func (SystemKeyring) Get() (string, error) {
	return keyring.Get(keyringService, keyringUser)
}

func (SystemKeyring) Set(token string) error {
	return keyring.Set(keyringService, keyringUser, token)
}

func (SystemKeyring) Delete() error {
	err := keyring.Delete(keyringService, keyringUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

// NoopKeeper is used in tests and on hosts without a keyring; the token
// then lives only in the localstore.
type NoopKeeper struct{}

func (NoopKeeper) Get() (string, error)  { return "", keyring.ErrNotFound }
func (NoopKeeper) Set(string) error      { return nil }
func (NoopKeeper) Delete() error         { return nil }
