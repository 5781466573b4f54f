// Package pgn renders a move history as a PGN movetext transcript.
package pgn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wrenfold/chesscore/pkg/core"
)

// Tag is one [Key "Value"] header line.
type Tag struct {
	Key, Value string
}

// DefaultTags returns the seven-tag roster PGN readers expect, with
// placeholder values a caller can override before calling Encode.
func DefaultTags() []Tag {
	return []Tag{
		{"Event", "?"},
		{"Site", "?"},
		{"Date", "????.??.??"},
		{"Round", "?"},
		{"White", "?"},
		{"Black", "?"},
		{"Result", "*"},
	}
}

// Encode renders b's move history as a PGN transcript: tag pairs followed
// by numbered movetext, terminated by result. The Result tag is always set
// to (or added as) result, overriding whatever tags supplies, so the header
// never disagrees with the movetext trailer.
func Encode(b *core.Board, tags []Tag, result string) string {
	if result == "" {
		result = "*"
	}

	var sb strings.Builder

	wroteResult := false
	for _, t := range tags {
		if t.Key == "Result" {
			t.Value = result
			wroteResult = true
		}
		fmt.Fprintf(&sb, "[%s %q]\n", t.Key, t.Value)
	}
	if !wroteResult {
		fmt.Fprintf(&sb, "[Result %q]\n", result)
	}
	sb.WriteString("\n")

	history := b.History()
	for i, e := range history {
		if e.Mover == core.White {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(e.FullMoveNumber))
			sb.WriteByte('.')
			sb.WriteByte(' ')
		} else if i == 0 {
			// A transcript starting mid-game with black to move.
			sb.WriteString(strconv.Itoa(e.FullMoveNumber))
			sb.WriteString("... ")
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}

	if len(history) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(result)
	sb.WriteByte('\n')

	return sb.String()
}
