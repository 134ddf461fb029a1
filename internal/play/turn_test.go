package play

import (
	"strings"
	"testing"

	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/words"
)

// scriptBoundary feeds a fixed sequence of guesses and records what the
// engine pushed out. An exhausted script signals quit.
type scriptBoundary struct {
	guesses  []string
	next     int
	statuses []string
	appended []string
	renders  int
	lastRows []game.ScoredGuess
}

func (b *scriptBoundary) DisplayStatus(msg string) { b.statuses = append(b.statuses, msg) }
func (b *scriptBoundary) AppendStatus(msg string)  { b.appended = append(b.appended, msg) }

func (b *scriptBoundary) RenderBoard(rows []game.ScoredGuess, blankLen, currentRow int) {
	b.renders++
	b.lastRows = rows
}

func (b *scriptBoundary) ReadGuess(expectedLen int) (string, bool) {
	if b.next >= len(b.guesses) {
		return "", true
	}
	g := b.guesses[b.next]
	b.next++
	return g, false
}

func (b *scriptBoundary) lastStatus() string {
	if len(b.statuses) == 0 {
		return ""
	}
	return b.statuses[len(b.statuses)-1]
}

func mustCandidates(t *testing.T, length int, list ...string) *words.Candidates {
	t.Helper()
	c, err := words.Load(words.Static(list...), words.Exact(length, nil))
	if err != nil {
		t.Fatalf("load candidates: %v", err)
	}
	return c
}

func TestRunRoundWin(t *testing.T) {
	dict := mustCandidates(t, 5, "crane", "trace")
	b := &scriptBoundary{guesses: []string{"trace", "crane"}}

	state := RunRound(b, dict, "CRANE", 6)
	if state != game.StateWon {
		t.Fatalf("expected won, got %s", state)
	}
	if b.lastStatus() != "You won" {
		t.Errorf("expected final status %q, got %q", "You won", b.lastStatus())
	}
	if len(b.lastRows) != 2 {
		t.Errorf("expected 2 scored rows on the final board, got %d", len(b.lastRows))
	}
}

func TestRunRoundInvalidGuessReprompts(t *testing.T) {
	dict := mustCandidates(t, 5, "crane")
	b := &scriptBoundary{guesses: []string{"zzzzz", "cran", "crane"}}

	state := RunRound(b, dict, "CRANE", 2)
	if state != game.StateWon {
		t.Fatalf("expected won after re-prompts, got %s", state)
	}
	// Two rejection notices, then the win message.
	var notices int
	for _, s := range b.statuses {
		if strings.Contains(s, "not in the dictionary") {
			notices++
		}
	}
	if notices != 2 {
		t.Errorf("expected 2 dictionary notices, got %d (%v)", notices, b.statuses)
	}
	if len(b.lastRows) != 1 {
		t.Errorf("invalid guesses must not reach the board, got %d rows", len(b.lastRows))
	}
}

func TestRunRoundLost(t *testing.T) {
	dict := mustCandidates(t, 5, "crane", "trace")
	b := &scriptBoundary{guesses: []string{"trace", "trace"}}

	state := RunRound(b, dict, "CRANE", 2)
	if state != game.StateLost {
		t.Fatalf("expected lost, got %s", state)
	}
	if b.lastStatus() != "You lost, the word was CRANE" {
		t.Errorf("unexpected final status %q", b.lastStatus())
	}
}

func TestRunRoundQuit(t *testing.T) {
	dict := mustCandidates(t, 5, "crane")
	b := &scriptBoundary{} // empty script: immediate quit

	state := RunRound(b, dict, "CRANE", 3)
	if state != game.StateQuit {
		t.Fatalf("expected quit, got %s", state)
	}
	if b.lastStatus() != "The word was CRANE, quitter" {
		t.Errorf("unexpected final status %q", b.lastStatus())
	}
}
