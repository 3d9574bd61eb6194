package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/crypto"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/store"
)

type cryptoService struct {
	keychain crypto.Keychain
	salts    store.SaltRepository
	wrapped  store.WrappedKeyRepository
	logger   *logger.Logger

	// mu guards key. Writes happen only on login/restore/logout; reads on
	// every field encryption call.
	mu  sync.RWMutex
	key *crypto.Key
}

// NewCryptoService constructs a session-scoped [CryptoService] in the
// not-ready state.
func NewCryptoService(keychain crypto.Keychain, storages *store.Storages, logger *logger.Logger) CryptoService {
	return &cryptoService{
		keychain: keychain,
		salts:    storages.Salts,
		wrapped:  storages.WrappedKeys,
		logger:   logger,
	}
}

func (s *cryptoService) Initialize(ctx context.Context, password string, salt []byte) error {
	key, err := s.keychain.DeriveMasterKey(password, salt)
	if err != nil {
		return fmt.Errorf("derive master key: %w", err)
	}

	s.SetKey(key)
	return nil
}

func (s *cryptoService) InitializeIdentity(ctx context.Context, identity, password string) error {
	salt, err := s.salts.GetOrCreate(ctx, identity)
	if err != nil {
		return fmt.Errorf("load salt: %w", err)
	}

	return s.Initialize(ctx, password, salt)
}

func (s *cryptoService) SetKey(key *crypto.Key) {
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
}

func (s *cryptoService) Ready() bool {
	return s.currentKey() != nil
}

func (s *cryptoService) WrapAndStore(ctx context.Context, identity, accessToken string) error {
	key := s.currentKey()
	if key == nil {
		s.logger.Warn().
			Str("func", "cryptoService.WrapAndStore").
			Msg("no key in memory, nothing to wrap")
		return nil
	}

	wrappingKey, err := s.keychain.DeriveWrappingKey(accessToken)
	if err != nil {
		return fmt.Errorf("derive wrapping key: %w", err)
	}

	wrapped, err := s.keychain.WrapKey(key, wrappingKey)
	if err != nil {
		return fmt.Errorf("wrap key: %w", err)
	}

	if err := s.wrapped.Store(ctx, identity, wrapped); err != nil {
		return fmt.Errorf("persist wrapped key: %w", err)
	}

	return nil
}

func (s *cryptoService) Restore(ctx context.Context, identity, accessToken string) bool {
	if s.Ready() {
		return true
	}

	wrapped, err := s.wrapped.Get(ctx, identity)
	if err != nil {
		if !errors.Is(err, store.ErrWrappedKeyNotFound) {
			s.logger.Warn().Err(err).
				Str("func", "cryptoService.Restore").
				Msg("failed to load wrapped key")
		}
		return false
	}

	wrappingKey, err := s.keychain.DeriveWrappingKey(accessToken)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "cryptoService.Restore").
			Msg("failed to derive wrapping key")
		return false
	}

	key, err := s.keychain.UnwrapKey(wrapped, wrappingKey)
	if err != nil {
		// Expected after token rotation: the stored wrap is sealed under
		// the previous session's wrapping key.
		s.logger.Warn().
			Str("func", "cryptoService.Restore").
			Msg("wrapped key did not unwrap, password re-entry required")
		return false
	}

	s.SetKey(key)
	return true
}

func (s *cryptoService) Clear(ctx context.Context, identity string) error {
	s.mu.Lock()
	if s.key != nil {
		s.key.Zero()
	}
	s.key = nil
	s.mu.Unlock()

	if identity == "" {
		return nil
	}

	if err := s.wrapped.Clear(ctx, identity); err != nil {
		return fmt.Errorf("clear wrapped key: %w", err)
	}
	return nil
}

func (s *cryptoService) EncryptValue(plaintext string) string {
	key := s.currentKey()
	if key == nil {
		return plaintext
	}

	encrypted, err := s.keychain.EncryptString(plaintext, key)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "cryptoService.EncryptValue").
			Msg("encryption failed, storing value as plaintext")
		return plaintext
	}

	return encrypted
}

func (s *cryptoService) DecryptValue(value string) string {
	plaintext, _ := s.DecryptValueChecked(value)
	return plaintext
}

func (s *cryptoService) DecryptValueChecked(value string) (string, DecryptOutcome) {
	key := s.currentKey()
	if key == nil {
		return value, OutcomePlaintext
	}

	// Legacy plaintext written before encryption was enabled is passed
	// through untouched.
	if !crypto.LooksEncrypted(value) {
		return value, OutcomePlaintext
	}

	plaintext, err := s.keychain.DecryptString(value, key)
	if err != nil {
		s.logger.Warn().
			Str("func", "cryptoService.DecryptValueChecked").
			Msg("stored value failed integrity check, returning it unchanged")
		return value, OutcomeTampered
	}

	return plaintext, OutcomeDecrypted
}

func (s *cryptoService) Key() (*crypto.Key, error) {
	key := s.currentKey()
	if key == nil {
		return nil, ErrNotInitialized
	}
	return key, nil
}

func (s *cryptoService) currentKey() *crypto.Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}
