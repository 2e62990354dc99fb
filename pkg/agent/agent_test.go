package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/settings"
)

func TestUsageDeduplicated(t *testing.T) {
	tests := []struct {
		name string
		in   Usage
		want Usage
	}{
		{
			"subtracts cache tokens from inclusive input",
			Usage{InputTokens: 5000, OutputTokens: 500, CacheCreate: 1000, CacheRead: 2000},
			Usage{InputTokens: 2000, OutputTokens: 500, CacheCreate: 1000, CacheRead: 2000},
		},
		{
			"no cache tokens",
			Usage{InputTokens: 100, OutputTokens: 10},
			Usage{InputTokens: 100, OutputTokens: 10},
		},
		{
			"input already exclusive stays put",
			Usage{InputTokens: 500, CacheCreate: 400, CacheRead: 300},
			Usage{InputTokens: 500, CacheCreate: 400, CacheRead: 300},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Deduplicated())
		})
	}
}

func TestUsageTotal(t *testing.T) {
	u := Usage{InputTokens: 1, OutputTokens: 2, CacheCreate: 3, CacheRead: 4}
	assert.Equal(t, 10, u.Total())
}

func TestHashAPIKey(t *testing.T) {
	h := HashAPIKey("sk-test-123")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashAPIKey("sk-test-123"))
	assert.NotEqual(t, h, HashAPIKey("sk-test-124"))
	assert.Empty(t, HashAPIKey(""))
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"retryable call error", &CallError{Message: "rate limited", Code: "429", Retryable: true}, true},
		{"fatal call error", &CallError{Message: "bad key", Code: "401", Retryable: false}, false},
		{"wrapped retryable", fmt.Errorf("step: %w", &CallError{Retryable: true}), true},
		{"grpc unavailable", status.Error(codes.Unavailable, "down"), true},
		{"grpc invalid argument", status.Error(codes.InvalidArgument, "bad"), false},
		{"context canceled", context.Canceled, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	cfg := settings.New(database.OpenTest(t))
	reg := NewRegistry(cfg)

	t.Run("builtin defaults", func(t *testing.T) {
		def, err := reg.Get(ctx, FrontendDev)
		require.NoError(t, err)
		assert.Equal(t, "anthropic", def.Provider)
		assert.True(t, def.IsDev)
		assert.Contains(t, def.Tools, "write_file")
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := reg.Get(ctx, "mystery")
		assert.ErrorContains(t, err, `unknown agent "mystery"`)
	})

	t.Run("settings overrides", func(t *testing.T) {
		require.NoError(t, cfg.Set(ctx, "agent.frontend-dev.model", "gpt-5"))
		require.NoError(t, cfg.Set(ctx, "agent.frontend-dev.provider", "openai"))
		require.NoError(t, cfg.Set(ctx, "agent.frontend-dev.tools", "write_file, http_fetch"))

		def, err := reg.Get(ctx, FrontendDev)
		require.NoError(t, err)
		assert.Equal(t, "openai", def.Provider)
		assert.Equal(t, "gpt-5", def.Model)
		assert.Equal(t, []string{"write_file", "http_fetch"}, def.Tools)
	})

	t.Run("names sorted", func(t *testing.T) {
		names := reg.Names()
		assert.Contains(t, names, Classifier)
		assert.Contains(t, names, BuildFix)
		assert.True(t, sortedStrings(names))
	})
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestIsDevAgent(t *testing.T) {
	assert.True(t, IsDevAgent(FrontendDev))
	assert.True(t, IsDevAgent(BuildFix))
	assert.False(t, IsDevAgent(Classifier))
	assert.False(t, IsDevAgent("nope"))
}
