package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleTemplate = `# server
APP_PORT=4000        # optional
LOG_LEVEL=info       # Optional

POSTGRES_DSN=postgres://localhost/db
JWT_SECRET_KEY=change-me
PASSWORD_HASHING_KEY=change-me

# comment only line
not-an-assignment
=missing-key
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env.example")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRequiredKeysFromTemplate(t *testing.T) {
	keys, err := RequiredKeysFromTemplate(writeTemplate(t, sampleTemplate))
	require.NoError(t, err)
	require.Equal(t, []string{"POSTGRES_DSN", "JWT_SECRET_KEY", "PASSWORD_HASHING_KEY"}, keys)
}

func TestRequiredKeysFromMissingTemplate(t *testing.T) {
	keys, err := RequiredKeysFromTemplate(filepath.Join(t.TempDir(), "nope.example"))
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestValidateRequiredEnv(t *testing.T) {
	path := writeTemplate(t, "MY_REQUIRED_KEY=x\nMY_OPTIONAL_KEY=y # optional\n")

	os.Unsetenv("MY_REQUIRED_KEY")
	err := ValidateRequiredEnv(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "MY_REQUIRED_KEY")
	require.NotContains(t, err.Error(), "MY_OPTIONAL_KEY")

	t.Setenv("MY_REQUIRED_KEY", "   ")
	require.Error(t, ValidateRequiredEnv(path), "blank values count as missing")

	t.Setenv("MY_REQUIRED_KEY", "set")
	require.NoError(t, ValidateRequiredEnv(path))
}
