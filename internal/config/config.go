package config

// Default PBKDF2 iteration counts applied when no source configures them.
const (
	// DefaultPasswordIterations is the PBKDF2 cost for password-derived
	// master keys. Passwords are low-entropy, so the cost stays high.
	DefaultPasswordIterations = 100_000

	// DefaultTokenIterations is the PBKDF2 cost for token-derived wrapping
	// keys. Session tokens are high-entropy and short-lived, so a lighter
	// cost is acceptable.
	DefaultTokenIterations = 10_000
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as key-derivation costs.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local keystore database.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the
// key-derivation cost.
type App struct {
	// PasswordIterations is the PBKDF2-SHA256 iteration count used when
	// deriving a master key from the user's password.
	// Env: APP_PASSWORD_ITERATIONS
	PasswordIterations int `env:"PASSWORD_ITERATIONS"`

	// TokenIterations is the PBKDF2-SHA256 iteration count used when
	// deriving a wrapping key from a session access token.
	// Env: APP_TOKEN_ITERATIONS
	TokenIterations int `env:"TOKEN_ITERATIONS"`
}

// Storage groups the configuration for the persistence backends used by the
// keystore.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local keystore database connection settings.
type DB struct {
	// DSN is the SQLite file path of the local keystore.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetConfig builds and validates the merged configuration from environment
// variables, command-line flags, an optional JSON file, and defaults.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
