package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	src := `
# comment
CARDDRAWER_CONFIG = conf/drawer.toml
export CARDDRAWER_LANG="es"
QUOTED='a=b'
EMPTY=
`
	vars, err := parseEnv(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"CARDDRAWER_CONFIG": "conf/drawer.toml",
		"CARDDRAWER_LANG":   "es",
		"QUOTED":            "a=b",
		"EMPTY":             "",
	}, vars)
}

func TestParseEnvRejectsBareWords(t *testing.T) {
	_, err := parseEnv(strings.NewReader("A=1\nnonsense\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = parseEnv(strings.NewReader("=value\n"))
	assert.Error(t, err)
}

func TestLoadEnvFileKeepsExistingVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARDDRAWER_T_SET=file\nCARDDRAWER_T_NEW=file\n"), 0o600))

	t.Setenv("CARDDRAWER_T_SET", "shell")
	t.Setenv("CARDDRAWER_T_NEW", "")
	os.Unsetenv("CARDDRAWER_T_NEW")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "shell", os.Getenv("CARDDRAWER_T_SET"))
	assert.Equal(t, "file", os.Getenv("CARDDRAWER_T_NEW"))
}

func TestLoadEnvFileMissingIsFine(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}
