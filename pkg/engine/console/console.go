// Package console implements a line-oriented debugging protocol over the
// rules engine: one command or SAN move per line in, human-readable board
// and status lines out.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/wrenfold/chesscore/pkg/core"
	"github.com/wrenfold/chesscore/pkg/engine"
	"github.com/wrenfold/chesscore/pkg/fen"
)

const ProtocolName = "console"

// Driver dispatches console commands against an engine.Engine. Commands:
//
//	reset [<fen>]   reset to the standard position, or the given FEN
//	undo, u         take back the last move
//	print, p        print the board
//	flip            print the board from the side-to-move's perspective
//	status          print the termination status
//	fen             print the current position in FEN
//	pgn             print the transcript in PGN
//	quit, exit, q   stop the driver
//
// Anything else is tried as a SAN move.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

// NewDriver starts a driver reading commands from in and writing output
// lines to the returned channel, which is closed when the driver stops.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				pos := fen.Initial
				if len(args) > 0 {
					pos = strings.Join(args, " ")
				}
				if err := d.e.Reset(ctx, pos); err != nil {
					logw.Errorf(ctx, "Invalid position: %v", line)
					d.out <- fmt.Sprintf("invalid position: %v", line)
					break
				}
				d.printBoard()

			case "undo", "u":
				if err := d.e.TakeBack(ctx); err != nil {
					d.out <- fmt.Sprintf("%v", err)
					break
				}
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "flip":
				d.printFlipped()

			case "status":
				d.out <- d.e.Status().String()

			case "fen":
				d.out <- d.e.Position()

			case "pgn":
				d.out <- d.e.Transcript()

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume a SAN move if not a recognized command.

				if err := d.e.Move(ctx, cmd); err != nil {
					d.out <- fmt.Sprintf("invalid move: %q: %v", cmd, err)
				} else {
					d.printBoard()
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	fenStr := d.e.Position()
	b, err := fen.Decode(fenStr)
	if err != nil {
		d.out <- fmt.Sprintf("invalid internal position: %v", fenStr)
		return
	}

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d%s", rank, vertical)
		for file := 0; file < 8; file++ {
			sb.WriteString(printPiece(b.PieceAt(core.NewSquare(file, rank))))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
		sb.Reset()
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen:    %v", fenStr)
	d.out <- fmt.Sprintf("status: %v", d.e.Status())
	d.out <- ""
}

func (d *Driver) printFlipped() {
	grid := d.e.Flip()
	d.out <- ""
	for row := 0; row < 8; row++ {
		var sb strings.Builder
		for col := 0; col < 8; col++ {
			sb.WriteString(printPiece(grid[row][col]))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
	}
	d.out <- ""
}

func printPiece(p core.Piece) string {
	if p.IsEmpty() {
		return " "
	}
	return p.String()
}
