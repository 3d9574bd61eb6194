package service

import "errors"

// ErrNotInitialized is returned by [CryptoService.Key] when no master key is
// held in memory. Unlike the tolerant EncryptValue/DecryptValue paths, key
// access is strict: callers asking for the key itself have opted out of the
// degraded plaintext mode and must handle the error.
var ErrNotInitialized = errors.New("encryption key is not initialized")
