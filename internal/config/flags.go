package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d keystore database file path
//	-c/-config json file path with configs
//	-password-iterations PBKDF2 cost for password-derived keys
//	-token-iterations PBKDF2 cost for token-derived wrapping keys
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var passwordIterations int
	var tokenIterations int

	flag.StringVar(&databaseDSN, "d", "", "Keystore database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&passwordIterations, "password-iterations", 0, "PBKDF2 iterations for password keys")
	flag.IntVar(&tokenIterations, "token-iterations", 0, "PBKDF2 iterations for token wrapping keys")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordIterations: passwordIterations,
			TokenIterations:    tokenIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
