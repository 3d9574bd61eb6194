package service

import (
	"context"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/crypto"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_service_mock.go -package=mock

// DecryptOutcome tags the result of a tolerant decryption so callers can
// surface tamper events (e.g. to telemetry) while the default string path
// stays backward compatible.
type DecryptOutcome int

const (
	// OutcomeDecrypted means the value was encrypted and decrypted cleanly.
	OutcomeDecrypted DecryptOutcome = iota
	// OutcomePlaintext means the value was passed through unchanged: either
	// no key is loaded or the value does not look encrypted (legacy data).
	OutcomePlaintext
	// OutcomeTampered means the value looked encrypted but failed its
	// integrity check; the original string was returned unchanged.
	OutcomeTampered
)

// CryptoService owns the master-key lifecycle for one session. It is an
// explicit object constructed at session start and torn down at logout, not
// a process-wide global: single-key-per-session semantics without hidden
// state.
//
// Lifecycle: not ready -> Initialize/SetKey/Restore -> ready -> Clear -> not
// ready. While not ready, EncryptValue and DecryptValue degrade to returning
// their input unchanged so the rest of the application stays usable.
type CryptoService interface {
	// Initialize derives the master key from the user's password and their
	// per-identity salt and holds it in memory. Called on password login.
	Initialize(ctx context.Context, password string, salt []byte) error

	// InitializeIdentity is the login-path convenience over Initialize: it
	// looks up identity's salt in the local keystore (creating one on first
	// login) and derives the master key from it.
	InitializeIdentity(ctx context.Context, identity, password string) error

	// SetKey adopts an already-derived master key.
	SetKey(key *crypto.Key)

	// Ready reports whether a master key is currently held in memory.
	Ready() bool

	// WrapAndStore encrypts the in-memory master key under a key derived
	// from the session access token and persists it, so a later page load
	// with a live session can restore the key without the password.
	// A no-op (with a logged warning) when not ready. Failures are
	// non-fatal: the session keeps working, only the skip-password
	// optimization is lost.
	WrapAndStore(ctx context.Context, identity, accessToken string) error

	// Restore loads the persisted wrapped key for identity, unwraps it with
	// a key derived from accessToken, and adopts it. Returns true if the
	// service is ready afterwards (including when it already was). Any
	// failure — no stored entry, rotated token, tampered entry — yields
	// false, never an error: a failed restore only means the user must
	// re-enter their password.
	Restore(ctx context.Context, identity, accessToken string) bool

	// Clear drops the in-memory key. When identity is non-empty its
	// wrapped-key entry is removed as well, so a stale wrap can never be
	// restored against a new password.
	Clear(ctx context.Context, identity string) error

	// EncryptValue encrypts plaintext under the master key. When no key is
	// loaded the plaintext is returned unchanged (degraded mode: data is
	// stored unencrypted rather than the application failing outright).
	EncryptValue(plaintext string) string

	// DecryptValue is the tolerant read path: values that do not look
	// encrypted, or that fail their integrity check, are returned unchanged
	// with a logged warning. Mixed encrypted/legacy data must not crash
	// reads.
	DecryptValue(value string) string

	// DecryptValueChecked is DecryptValue with a tagged outcome, letting
	// callers distinguish clean decrypts, pass-throughs, and tampering.
	DecryptValueChecked(value string) (string, DecryptOutcome)

	// Key returns the in-memory master key or ErrNotInitialized. For
	// lower-level callers (e.g. direct key export) that must not silently
	// degrade.
	Key() (*crypto.Key, error)
}
