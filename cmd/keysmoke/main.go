// Command keysmoke runs the full key lifecycle against the local keystore
// using a throwaway probe identity: derive a master key from a password,
// encrypt a sample value, wrap the key under a session token, restore it in
// a fresh session, and verify the sample decrypts. It also checks that a
// rotated token refuses to restore. The probe rows are wiped afterwards, so
// the check never touches user data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/config"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/crypto"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/service"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keysmoke")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local keystore")
	}

	keychain := crypto.NewKeychainWithIterations(cfg.App.PasswordIterations, cfg.App.TokenIterations)

	if err := run(context.Background(), keychain, storages, log); err != nil {
		log.Error().Err(err).Msg("key lifecycle check failed")
		fmt.Println("FAIL")
		os.Exit(1)
	}

	fmt.Println("PASS")
}

func run(ctx context.Context, keychain crypto.Keychain, storages *store.Storages, log *logger.Logger) error {
	identity := "probe-" + uuid.NewString() + "@keysmoke.local"
	password := uuid.NewString()
	token := uuid.NewString()
	const sample = "keysmoke probe value"

	defer cleanup(ctx, storages, identity, log)

	// First session: password login, encrypt, wrap.
	first := service.NewServices(keychain, storages, log)
	if err := first.Crypto.InitializeIdentity(ctx, identity, password); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	encrypted := first.Crypto.EncryptValue(sample)
	if encrypted == sample {
		return fmt.Errorf("value was not encrypted")
	}

	if err := first.Crypto.WrapAndStore(ctx, identity, token); err != nil {
		return fmt.Errorf("wrap and store: %w", err)
	}

	// Fresh session with the same live token: restore must succeed and the
	// earlier ciphertext must decrypt.
	second := service.NewServices(keychain, storages, log)
	if !second.Crypto.Restore(ctx, identity, token) {
		return fmt.Errorf("restore with live token failed")
	}
	if got := second.Crypto.DecryptValue(encrypted); got != sample {
		return fmt.Errorf("restored key decrypted %q, want %q", got, sample)
	}

	// Fresh session with a rotated token: restore must fail closed.
	third := service.NewServices(keychain, storages, log)
	if third.Crypto.Restore(ctx, identity, uuid.NewString()) {
		return fmt.Errorf("restore unexpectedly succeeded with a rotated token")
	}

	return nil
}

func cleanup(ctx context.Context, storages *store.Storages, identity string, log *logger.Logger) {
	if err := storages.WrappedKeys.Clear(ctx, identity); err != nil {
		log.Warn().Err(err).Msg("failed to remove probe wrapped key")
	}
	if err := storages.Salts.Clear(ctx, identity); err != nil {
		log.Warn().Err(err).Msg("failed to remove probe salt")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
