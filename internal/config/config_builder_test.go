package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// Earlier sources win: the first config to set a field keeps it.
	b := &configBuilder{configs: []*StructuredConfig{
		{Storage: Storage{DB: DB{DSN: "from-env.db"}}},
		{
			App:     App{PasswordIterations: 1},
			Storage: Storage{DB: DB{DSN: "from-flags.db"}},
		},
	}}

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 1, cfg.App.PasswordIterations)
	assert.Equal(t, DefaultTokenIterations, cfg.App.TokenIterations)
}

func TestConfigBuilder_DefaultsFillIterations(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{
		{Storage: Storage{DB: DB{DSN: "keystore.db"}}},
	}}

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultPasswordIterations, cfg.App.PasswordIterations)
	assert.Equal(t, DefaultTokenIterations, cfg.App.TokenIterations)
}

func TestConfigBuilder_ValidationFailureSurfaces(t *testing.T) {
	// Defaults never supply a DSN, so a build without one must fail
	// validation.
	_, err := newConfigBuilder().
		withDefaults().
		build()

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
