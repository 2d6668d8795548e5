package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/core/domain"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.Config)
		errContains string
	}{
		{name: "defaults", mutate: func(*domain.Config) {}},
		{
			name:        "bad identity",
			mutate:      func(c *domain.Config) { c.Identity = "inode" },
			errContains: domain.ErrInvalidIdentityMode.Error(),
		},
		{
			name:        "bad hash",
			mutate:      func(c *domain.Config) { c.Hash = "sha1" },
			errContains: domain.ErrInvalidHashAlgorithm.Error(),
		},
		{
			name:        "no workers",
			mutate:      func(c *domain.Config) { c.Workers = 0 },
			errContains: domain.ErrInvalidWorkers.Error(),
		},
		{
			name:        "empty field",
			mutate:      func(c *domain.Config) { c.Field = "" },
			errContains: domain.ErrEmptyField.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestConfig_MatchesExtension(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.True(t, cfg.MatchesExtension(".md"))
	assert.True(t, cfg.MatchesExtension(".mdx"))
	assert.False(t, cfg.MatchesExtension(".txt"))
	assert.False(t, cfg.MatchesExtension(""))
}

func TestParseIdentityMode(t *testing.T) {
	for in, want := range map[string]domain.IdentityMode{
		"":         domain.IdentityBasename,
		"basename": domain.IdentityBasename,
		" Path ":   domain.IdentityPath,
		"BASENAME": domain.IdentityBasename,
	} {
		got, err := domain.ParseIdentityMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseIdentityMode("inode")
	require.ErrorContains(t, err, domain.ErrInvalidIdentityMode.Error())
}

func TestParseHashAlgorithm(t *testing.T) {
	got, err := domain.ParseHashAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, domain.HashXXHash, got)

	got, err = domain.ParseHashAlgorithm("MD5")
	require.NoError(t, err)
	assert.Equal(t, domain.HashMD5, got)

	_, err = domain.ParseHashAlgorithm("sha256")
	require.ErrorContains(t, err, domain.ErrInvalidHashAlgorithm.Error())
}

func TestIdentityMode_Identity(t *testing.T) {
	root := filepath.Join("site", "posts")
	nested := filepath.Join(root, "2024", "hello.md")

	assert.Equal(t, "hello.md", domain.IdentityBasename.Identity(root, nested))
	assert.Equal(t, "2024/hello.md", domain.IdentityPath.Identity(root, nested))

	outside := filepath.Join("elsewhere", "a.md")
	assert.Equal(t, "elsewhere/a.md", domain.IdentityPath.Identity(root, outside))
}
