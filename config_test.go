package usc_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/usc"
	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/dxbc"
	"github.com/gogpu/usc/usil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "usc.yaml", `platform: d3d11
engine: 2019.4.31f1
parallelism: 8
log_level: debug
opcodes:
  directx:
    mul: mad
`)
	cfg, err := usc.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, asset.PlatformD3D11, cfg.Platform)
	assert.Equal(t, asset.MustParseVersion("2019.4.31f1"), cfg.Engine)
	assert.Equal(t, 8, cfg.Parallelism)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 8, opts.Parallelism)
	c, ok := opts.Tables.DirectX.Lookup(dxbc.OpMul)
	require.True(t, ok)
	assert.Equal(t, usil.OpMad, c)
	c, ok = dxbc.DefaultTable.Lookup(dxbc.OpMul)
	require.True(t, ok)
	assert.Equal(t, usil.OpMul, c, "overlay must not touch the default table")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := usc.LoadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, asset.PlatformUnknown, cfg.Platform, "an absent platform is not OpenGL")

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, usc.DefaultOptions().Parallelism, opts.Parallelism)
	assert.Same(t, dxbc.DefaultTable, opts.Tables.DirectX)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "platfrom: d3d11\n"},
		{"bad platform", "platform: amiga\n"},
		{"bad engine", "engine: five\n"},
		{"bad level", "log_level: loud\n"},
		{"negative parallelism", "parallelism: -2\n"},
		{"not yaml", "opcodes: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usc.LoadConfig(writeFile(t, "bad.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := usc.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_OptionsBadOverlay(t *testing.T) {
	cfg := &usc.Config{Opcodes: map[string]map[string]string{"nvn": {"fadd": "nonsense"}}}
	_, err := cfg.Options()
	assert.Error(t, err)
}

func TestLoadOpcodeOverlay(t *testing.T) {
	overlay, err := usc.LoadOpcodeOverlay(writeFile(t, "ops.yaml", "nvn:\n  sync: nop\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{"nvn": {"sync": "nop"}}, overlay)

	_, err = usc.LoadOpcodeOverlay(writeFile(t, "ops.yaml", "- sync\n"))
	assert.Error(t, err)
}
