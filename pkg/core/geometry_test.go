package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrenfold/chesscore/pkg/core"
)

func TestParseSquareAndString(t *testing.T) {
	tests := []struct {
		str  string
		file int
		rank int
	}{
		{"a8", 0, 8},
		{"h1", 7, 1},
		{"e4", 4, 4},
	}
	for _, tt := range tests {
		sq, ok := core.ParseSquare(tt.str)
		assert.True(t, ok)
		assert.Equal(t, tt.file, sq.File())
		assert.Equal(t, tt.rank, sq.Rank())
		assert.Equal(t, tt.str, sq.String())
	}
}

func TestParseSquareRejectsMalformed(t *testing.T) {
	tests := []string{"", "a", "a9", "i4", "44"}
	for _, tt := range tests {
		_, ok := core.ParseSquare(tt)
		assert.False(t, ok, tt)
	}
}

func TestStepGatesAtFileAndRankEdges(t *testing.T) {
	a1, _ := core.ParseSquare("a1")
	_, ok := core.Step(a1, core.Left)
	assert.False(t, ok, "stepping left off the a-file must fail")

	_, ok = core.Step(a1, core.Down)
	assert.False(t, ok, "stepping down off rank 1 must fail")

	h8, _ := core.ParseSquare("h8")
	_, ok = core.Step(h8, core.UpR)
	assert.False(t, ok, "stepping off both edges at once must fail")

	e4, _ := core.ParseSquare("e4")
	d5, ok := core.Step(e4, core.UpL)
	assert.True(t, ok)
	assert.Equal(t, "d5", d5.String())
}

func TestNoSquareIsInvalid(t *testing.T) {
	assert.False(t, core.NoSquare.IsValid())
	assert.Equal(t, "-", core.NoSquare.String())
}
