package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glint/internal/adapters/config"
	"go.trai.ch/glint/internal/core/domain"
	"go.trai.ch/glint/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
cache:
  scope: process
  chunk_size: 16
  initial_capacity: 128
log:
  json: true
prewarm:
  - highp float
  - mediump in vec4
  - lowp uniform mat3x2
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ScopeProcess, cfg.Scope)
	assert.Equal(t, 16, cfg.ChunkSize)
	assert.Equal(t, 128, cfg.InitialCapacity)
	assert.True(t, cfg.JSONLogs)
	require.Len(t, cfg.Prewarm, 3)
	assert.Equal(t, domain.TypeSpec{
		Basic:         domain.BasicFloat,
		Precision:     domain.PrecisionMedium,
		Qualifier:     domain.QualifierIn,
		PrimarySize:   4,
		SecondarySize: 1,
	}, cfg.Prewarm[1])
	assert.Equal(t, uint8(3), cfg.Prewarm[2].PrimarySize)
	assert.Equal(t, uint8(2), cfg.Prewarm[2].SecondarySize)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	assert.Equal(t, defaults.Scope, cfg.Scope)
	assert.Equal(t, defaults.ChunkSize, cfg.ChunkSize)
	assert.Equal(t, defaults.InitialCapacity, cfg.InitialCapacity)
	assert.False(t, cfg.JSONLogs)
	assert.Empty(t, cfg.Prewarm)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	loader, _ := newLoader(t)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, domain.ConfigFileName),
		[]byte("cache:\n  scope: process\n"),
		0o600,
	))
	t.Chdir(dir)
	loader, _ := newLoader(t)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeProcess, cfg.Scope)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "malformed yaml",
			content: "cache: [unterminated",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown scope",
			content: "cache:\n  scope: thread\n",
			want:    domain.ErrInvalidCacheScope,
		},
		{
			name:    "zero chunk size",
			content: "cache:\n  chunk_size: 0\n",
			want:    domain.ErrInvalidChunkSize,
		},
		{
			name:    "negative chunk size",
			content: "cache:\n  chunk_size: -4\n",
			want:    domain.ErrInvalidChunkSize,
		},
		{
			name:    "unknown prewarm type",
			content: "prewarm:\n  - highp quat\n",
			want:    domain.ErrUnknownTypeName,
		},
		{
			name:    "bad prewarm dimension",
			content: "prewarm:\n  - vec5\n",
			want:    domain.ErrInvalidDimension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			loader, _ := newLoader(t)

			cfg, err := loader.Load(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoad_NonPositiveInitialCapacityWarns(t *testing.T) {
	path := writeConfig(t, "cache:\n  initial_capacity: -1\n")
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn("ignoring non-positive initial_capacity -1")

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultInitialCapacity, cfg.InitialCapacity)
}
