package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config

	cfg.SetDefaults()

	assert.Equal(t, DefaultAddress, cfg.Address)
}

func TestConfig_SetDefaults_KeepsExplicitAddress(t *testing.T) {
	t.Parallel()

	cfg := Config{Address: "127.0.0.1:9000", Dir: "dist"}

	cfg.SetDefaults()

	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := Config{Address: ":8080", Dir: "dist"}
	require.NoError(t, cfg.Validate())

	cfg = Config{Address: "", Dir: "dist"}
	require.ErrorIs(t, cfg.Validate(), ErrEmptyAddress)

	cfg = Config{Address: ":8080", Dir: ""}
	require.ErrorIs(t, cfg.Validate(), ErrEmptyDir)
}
