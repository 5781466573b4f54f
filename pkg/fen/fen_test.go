package fen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfold/chesscore/pkg/core"
	"github.com/wrenfold/chesscore/pkg/fen"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/3pP3/8/8/8/8 b - e6 0 12",
	}

	for _, tt := range tests {
		b, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(b))
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w ZZ - 0 1",
	}
	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Error(t, err)
	}
}

func TestDecodeSeedsPositionHistory(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, 1, b.PosCount())
	assert.Len(t, b.PositionHistory(), 1)
}

func TestEncodeTracksBoardMutation(t *testing.T) {
	b := core.DefaultBoard()
	require.NoError(t, core.ApplySAN(b, "e4"))
	require.NoError(t, core.ApplySAN(b, "e5"))

	got := fen.Encode(b)
	assert.Contains(t, got, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR")
	assert.Contains(t, got, " w ")
}
