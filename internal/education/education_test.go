package education

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/collector"
	"SignalDeck/internal/model"
)

func TestLookup_LocalHitSkipsRemote(t *testing.T) {
	remote := collector.NewMockFetcher()
	lib, err := New("", remote, zerolog.Nop())
	require.NoError(t, err)

	topic, err := lib.Lookup(context.Background(), "Market Cap")
	require.NoError(t, err)
	assert.Equal(t, "Market Capitalization", topic.Title)
	assert.NotEmpty(t, topic.Interpretation)

	topic, err = lib.Lookup(context.Background(), "52w-range")
	require.NoError(t, err)
	assert.Equal(t, "52-Week Range", topic.Title)
	assert.Equal(t, 0, remote.Calls("education"))
}

func TestLookup_RemoteFallbackMemoized(t *testing.T) {
	remote := collector.NewMockFetcher()
	remote.Topics["rsi"] = &model.Topic{Title: "Relative Strength Index", Usage: "momentum"}
	lib, err := New("", remote, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, lib.Local("rsi"))

	for i := 0; i < 3; i++ {
		topic, err := lib.Lookup(context.Background(), "RSI")
		require.NoError(t, err)
		assert.Equal(t, "Relative Strength Index", topic.Title)
	}
	assert.Equal(t, 1, remote.Calls("education"))
}

func TestLookup_NotFound(t *testing.T) {
	lib, err := New("", collector.NewMockFetcher(), zerolog.Nop())
	require.NoError(t, err)

	_, err = lib.Lookup(context.Background(), "stochastic")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	_, err = lib.Lookup(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	noRemote, err := New("", nil, zerolog.Nop())
	require.NoError(t, err)
	_, err = noRemote.Lookup(context.Background(), "macd")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestNew_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
topics:
  vwap:
    title: VWAP
    description: volume weighted average price
`), 0o644))

	lib, err := New(path, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, lib.Local("vwap"))
	assert.False(t, lib.Local("market_cap"))
	assert.Equal(t, []string{"vwap"}, lib.Topics())

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"), nil, zerolog.Nop())
	assert.Error(t, err)
}
