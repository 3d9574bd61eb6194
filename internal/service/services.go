package service

import (
	"github.com/ilario23/PWA-GoNuts-sub002/internal/crypto"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/store"
)

// Services groups the session-scoped services handed to the rest of the
// application. It is constructed once per session at login and dropped at
// logout.
type Services struct {
	// Crypto owns the master-key lifecycle and the tolerant value
	// encryption used by everything else.
	Crypto CryptoService
	// Fields is the record-level encryption helper for the data-access
	// layer.
	Fields *FieldCipher
}

// NewServices wires the service layer over the supplied keychain and
// keystore.
func NewServices(keychain crypto.Keychain, storages *store.Storages, logger *logger.Logger) *Services {
	cryptoSvc := NewCryptoService(keychain, storages, logger)

	return &Services{
		Crypto: cryptoSvc,
		Fields: NewFieldCipher(cryptoSvc),
	}
}
