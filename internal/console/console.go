// internal/console/console.go
//
// Line-oriented play.Boundary for local terminals. Deliberately thin:
// one scored row per line, hints shown as a marker line underneath,
// guesses read one per line. Anything fancier belongs in a real
// rendering layer, not here.

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/play"
)

// Boundary reads guesses from in and writes boards and status to out.
type Boundary struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ play.Boundary = (*Boundary)(nil)

// New wraps a reader/writer pair as a Boundary.
func New(in io.Reader, out io.Writer) *Boundary {
	return &Boundary{in: bufio.NewScanner(in), out: out}
}

// DisplayStatus prints the status line.
func (b *Boundary) DisplayStatus(msg string) {
	fmt.Fprintln(b.out, msg)
}

// AppendStatus prints a follow-up status line.
func (b *Boundary) AppendStatus(msg string) {
	fmt.Fprintln(b.out, msg)
}

// RenderBoard prints every scored row with a marker line beneath it
// ('*' correct, '+' present, '.' absent) and a blank in-progress row.
func (b *Boundary) RenderBoard(rows []game.ScoredGuess, blankLen, currentRow int) {
	fmt.Fprintln(b.out)
	for _, row := range rows {
		fmt.Fprintln(b.out, spaced(row.Word))
		fmt.Fprintln(b.out, markers(row.Hints))
	}
	if currentRow >= len(rows) {
		fmt.Fprintln(b.out, spaced(strings.Repeat("_", blankLen)))
	}
}

// ReadGuess prompts for one guess. ":q" or end of input signals quit.
func (b *Boundary) ReadGuess(expectedLen int) (string, bool) {
	fmt.Fprintf(b.out, "guess (%d letters, :q quits)> ", expectedLen)
	if !b.in.Scan() {
		return "", true
	}
	line := strings.TrimSpace(b.in.Text())
	if line == ":q" {
		return "", true
	}
	return line, false
}

func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}

func markers(hints []game.LetterHint) string {
	marks := make([]string, len(hints))
	for i, h := range hints {
		switch h {
		case game.HintCorrect:
			marks[i] = "*"
		case game.HintPresent:
			marks[i] = "+"
		default:
			marks[i] = "."
		}
	}
	return strings.Join(marks, " ")
}
