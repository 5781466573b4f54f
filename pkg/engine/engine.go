// Package engine wraps the rules engine in pkg/core with the logging,
// versioning and concurrency-safety conventions the rest of this module's
// command-line drivers expect.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/wrenfold/chesscore/pkg/core"
	"github.com/wrenfold/chesscore/pkg/fen"
	"github.com/wrenfold/chesscore/pkg/pgn"
)

var version = build.NewVersion(1, 0, 0)

// Options are board-level resource limits, forwarded to core.Board.
type Options struct {
	// HistoryLimit caps retained move history. Zero means the core default.
	HistoryLimit int
	// RepetitionLimit caps retained position fingerprints. Zero means the
	// core default.
	RepetitionLimit int
}

func (o Options) String() string {
	return fmt.Sprintf("{historyLimit=%v, repetitionLimit=%v}", o.HistoryLimit, o.RepetitionLimit)
}

func (o Options) boardOpts() []core.Option {
	var opts []core.Option
	if o.HistoryLimit > 0 {
		opts = append(opts, core.WithHistoryLimit(o.HistoryLimit))
	}
	if o.RepetitionLimit > 0 {
		opts = append(opts, core.WithRepetitionLimit(o.RepetitionLimit))
	}
	return opts
}

// Engine encapsulates a single game in progress: the current position, a
// take-back stack, and the resource options governing both.
type Engine struct {
	name, author string
	opts         Options

	b     *core.Board
	stack []*core.Board // snapshots, most recent last; popped by TakeBack

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the board resource limits.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New constructs an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Reset resets the engine to the position described by the given FEN.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v", position)

	b, err := fen.Decode(position, e.opts.boardOpts()...)
	if err != nil {
		return err
	}
	e.b = b
	e.stack = nil

	logw.Infof(ctx, "New board: %v", fen.Encode(e.b))
	return nil
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b)
}

// Transcript returns the game so far as a PGN movetext string.
func (e *Engine) Transcript() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := "*"
	switch core.IsGameOver(e.b) {
	case core.Checkmate:
		if e.b.ToMove() == core.White {
			result = "0-1"
		} else {
			result = "1-0"
		}
	case core.Stalemate, core.FiftyMoveRule, core.ThreefoldRepetition:
		result = "1/2-1/2"
	}
	return pgn.Encode(e.b, pgn.DefaultTags(), result)
}

// Status reports the current game-termination status.
func (e *Engine) Status() core.Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	return core.IsGameOver(e.b)
}

// Move applies a SAN move, usually an opponent move, to the current
// position. The position is unchanged if the move is invalid or ambiguous.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	snapshot := e.b.Clone()
	if err := core.ApplySAN(e.b, move); err != nil {
		return err
	}
	e.stack = append(e.stack, snapshot)

	logw.Infof(ctx, "Move %v: %v", move, fen.Encode(e.b))
	return nil
}

// TakeBack undoes the latest move, restoring the position from before it.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.stack) == 0 {
		return fmt.Errorf("no move to take back")
	}

	n := len(e.stack) - 1
	e.b, e.stack = e.stack[n], e.stack[:n]

	logw.Infof(ctx, "Takeback: %v", fen.Encode(e.b))
	return nil
}

// Flip returns the position mirrored so the side to move's own perspective
// always looks "up the board", for display purposes only.
func (e *Engine) Flip() [8][8]core.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()

	var grid [8][8]core.Piece
	for rank := 1; rank <= 8; rank++ {
		for file := 0; file < 8; file++ {
			row, col := 8-rank, file
			if e.b.ToMove() == core.Black {
				row, col = rank-1, 7-file
			}
			grid[row][col] = e.b.PieceAt(core.NewSquare(file, rank))
		}
	}
	return grid
}
