package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name                  string
		args                  []string
		expectedDSN           string
		expectedJSONPath      string
		expectedPasswordIters int
		expectedTokenIters    int
	}{
		{
			name:        "database flag",
			args:        []string{"-d", "/tmp/keystore.db"},
			expectedDSN: "/tmp/keystore.db",
		},
		{
			name:             "short config flag",
			args:             []string{"-c", "config.json"},
			expectedJSONPath: "config.json",
		},
		{
			name:             "long config flag",
			args:             []string{"-config", "config.json"},
			expectedJSONPath: "config.json",
		},
		{
			name:                  "iteration flags",
			args:                  []string{"-password-iterations", "150000", "-token-iterations", "20000"},
			expectedPasswordIters: 150000,
			expectedTokenIters:    20000,
		},
		{
			name:                  "all flags together",
			args:                  []string{"-d", "keystore.db", "-c", "cfg.json", "-password-iterations", "1000"},
			expectedDSN:           "keystore.db",
			expectedJSONPath:      "cfg.json",
			expectedPasswordIters: 1000,
		},
		{
			name: "no flags",
			args: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()

			assert.Equal(t, tt.expectedDSN, cfg.Storage.DB.DSN)
			assert.Equal(t, tt.expectedJSONPath, cfg.JSONFilePath)
			assert.Equal(t, tt.expectedPasswordIters, cfg.App.PasswordIterations)
			assert.Equal(t, tt.expectedTokenIters, cfg.App.TokenIterations)
		})
	}
}
