package console_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfold/chesscore/pkg/engine"
	"github.com/wrenfold/chesscore/pkg/engine/console"
)

func drain(t *testing.T, out <-chan string, timeout time.Duration) []string {
	t.Helper()
	var lines []string
	deadline := time.After(timeout)
	for {
		select {
		case line, ok := <-out:
			if !ok {
				return lines
			}
			lines = append(lines, line)
		case <-deadline:
			return lines
		}
	}
}

func TestDriverAppliesMovesAndReportsStatus(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "chesscore", "tester")

	in := make(chan string, 10)
	d, out := console.NewDriver(ctx, e, in)

	in <- "f3"
	in <- "status"
	in <- "fen"
	in <- "quit"
	close(in)

	lines := drain(t, out, time.Second)
	require.NotEmpty(t, lines)

	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "ongoing")
	assert.Contains(t, joined, "rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR")

	<-d.Closed()
}

func TestDriverRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "chesscore", "tester")

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, in)

	in <- "Nd5"
	in <- "quit"
	close(in)

	lines := drain(t, out, time.Second)
	found := false
	for _, l := range lines {
		if l == `invalid move: "Nd5": invalid move: no legal move matches` {
			found = true
		}
	}
	assert.True(t, found, "expected an invalid move line, got %v", lines)
}
