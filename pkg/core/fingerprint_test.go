package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfold/chesscore/pkg/core"
)

func TestFingerprintMatchesFENPlacementField(t *testing.T) {
	b := core.DefaultBoard()
	fp := core.Fingerprint(b)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", fp)
}

func TestFingerprintExcludesClocksButIncludesReversibleState(t *testing.T) {
	a := core.DefaultBoard()
	b := core.DefaultBoard()
	require.NoError(t, core.ApplySAN(a, "Nf3"))
	require.NoError(t, core.ApplySAN(a, "Nf6"))
	require.NoError(t, core.ApplySAN(b, "Nc3"))
	require.NoError(t, core.ApplySAN(b, "Nc6"))

	assert.NotEqual(t, core.Fingerprint(a), core.Fingerprint(b))

	// Same placement and rights as the start, different clocks.
	c := core.DefaultBoard()
	applyAll(t, c, "Nf3", "Nf6", "Ng1", "Ng8")
	assert.Equal(t, core.Fingerprint(core.DefaultBoard()), core.Fingerprint(c))
}
