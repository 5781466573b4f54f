package pgn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfold/chesscore/pkg/core"
	"github.com/wrenfold/chesscore/pkg/pgn"
)

func TestEncodeFoolsMate(t *testing.T) {
	b := core.DefaultBoard()
	moves := []string{"f3", "e5", "g4", "Qh4#"}
	for _, m := range moves {
		require.NoError(t, core.ApplySAN(b, m))
	}

	got := pgn.Encode(b, pgn.DefaultTags(), "0-1")

	assert.Contains(t, got, "[Event \"?\"]")
	assert.Contains(t, got, "1. f3 e5 2. g4 Qh4#")
	assert.Contains(t, got, "0-1")
}

func TestEncodeEmptyHistory(t *testing.T) {
	b := core.DefaultBoard()
	got := pgn.Encode(b, pgn.DefaultTags(), "")
	assert.Contains(t, got, "*")
}

func TestEncodeResultTagMatchesTrailer(t *testing.T) {
	b := core.DefaultBoard()
	moves := []string{"f3", "e5", "g4", "Qh4#"}
	for _, m := range moves {
		require.NoError(t, core.ApplySAN(b, m))
	}

	// DefaultTags() hardcodes a "*" placeholder; Encode must overwrite it
	// with the actual result rather than printing the two inconsistently.
	got := pgn.Encode(b, pgn.DefaultTags(), "0-1")

	assert.Contains(t, got, `[Result "0-1"]`)
	assert.NotContains(t, got, `[Result "*"]`)
}

func TestEncodeAddsResultTagWhenMissing(t *testing.T) {
	b := core.DefaultBoard()
	got := pgn.Encode(b, []pgn.Tag{{"Event", "?"}}, "1-0")
	assert.Contains(t, got, `[Result "1-0"]`)
}
