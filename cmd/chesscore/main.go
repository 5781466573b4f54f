package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"
	"github.com/wrenfold/chesscore/pkg/engine"
	"github.com/wrenfold/chesscore/pkg/engine/console"
)

var (
	historyLimit    = flag.Int("history_limit", 0, "Max retained moves before the game is declared over (0 uses the engine default)")
	repetitionLimit = flag.Int("repetition_limit", 0, "Max retained position fingerprints before the game is declared over (0 uses the engine default)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chesscore [options]

CHESSCORE is a synchronous chess rules engine: legal move generation,
check/checkmate/stalemate detection, castling, en passant, promotion and
draw adjudication, driven over a line-oriented console protocol on stdio.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "chesscore", "wrenfold", engine.WithOptions(engine.Options{
		HistoryLimit:    *historyLimit,
		RepetitionLimit: *repetitionLimit,
	}))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
	logw.Infof(ctx, "Exiting")
}
