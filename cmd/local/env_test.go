package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))
		assert.NoError(t, err)
	})

	t.Run("ValidFile", func(t *testing.T) {
		t.Setenv("SUGGEST_DOTENV_VALUE", "")
		os.Unsetenv("SUGGEST_DOTENV_VALUE")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SUGGEST_DOTENV_VALUE=loaded\n"), 0o600))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "loaded", os.Getenv("SUGGEST_DOTENV_VALUE"))
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SUGGEST_DOTENV_BROKEN=\"unterminated\n"), 0o600))

		assert.Error(t, loadDotEnv(path))
	})
}
