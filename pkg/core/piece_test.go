package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrenfold/chesscore/pkg/core"
)

func TestPieceKindAndColor(t *testing.T) {
	p := core.NewPiece(core.Knight, core.Black)
	assert.Equal(t, core.Knight, p.Kind())
	assert.Equal(t, core.Black, p.Color())
	assert.True(t, p.Is(core.Knight))
	assert.False(t, p.Is(core.Bishop))
	assert.Equal(t, "n", p.String())

	w := core.NewPiece(core.Knight, core.White)
	assert.Equal(t, "N", w.String())
}

func TestEmptyPiece(t *testing.T) {
	var p core.Piece
	assert.True(t, p.IsEmpty())
	assert.Equal(t, ".", p.String())
}

func TestIsSameColor(t *testing.T) {
	wp := core.NewPiece(core.Pawn, core.White)
	wk := core.NewPiece(core.King, core.White)
	bp := core.NewPiece(core.Pawn, core.Black)

	assert.True(t, core.IsSameColor(wp, wk))
	assert.False(t, core.IsSameColor(wp, bp))
	assert.False(t, core.IsSameColor(0, wp))
}

func TestParsePiece(t *testing.T) {
	p, ok := core.ParsePiece('Q')
	assert.True(t, ok)
	assert.Equal(t, core.Queen, p.Kind())
	assert.Equal(t, core.White, p.Color())

	p, ok = core.ParsePiece('q')
	assert.True(t, ok)
	assert.Equal(t, core.Queen, p.Kind())
	assert.Equal(t, core.Black, p.Color())

	_, ok = core.ParsePiece('x')
	assert.False(t, ok)
}
