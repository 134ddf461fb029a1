package play

import (
	"errors"
	mrand "math/rand"
	"strings"
	"testing"

	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/words"
)

func ladderSession(byLength map[int]string) *Session {
	return NewSession(Config{
		BaseLength:   5,
		AttemptLimit: 6,
		Load:         wordLadder(byLength),
		RNG:          mrand.New(mrand.NewSource(1)),
	})
}

func TestSessionWinRollsIntoNextRound(t *testing.T) {
	s := ladderSession(map[int]string{5: "crane", 6: "bridge"})

	step, err := s.Guess("crane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(step.Status, "You won") {
		t.Errorf("expected win message, got %q", step.Status)
	}
	if step.Round != 2 || step.Length != 6 {
		t.Errorf("expected to be in round 2 at length 6, got round %d length %d", step.Round, step.Length)
	}
	if step.Attempts != 0 || len(step.Board) != 0 {
		t.Errorf("new round should start blank, got attempts=%d rows=%d", step.Attempts, len(step.Board))
	}
	if step.Finished {
		t.Error("session should still be running")
	}
}

func TestSessionChampionAfterLastWin(t *testing.T) {
	s := ladderSession(map[int]string{5: "crane"})

	step, err := s.Guess("crane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !step.Finished || step.Outcome != OutcomeChampion {
		t.Fatalf("expected champion finish, got finished=%v outcome=%s", step.Finished, step.Outcome)
	}
	if step.Score != 1 {
		t.Errorf("expected score 1, got %d", step.Score)
	}
	if !strings.Contains(step.Status, "You won") || !strings.Contains(step.Status, "Champion") {
		t.Errorf("expected win message followed by champion line, got %q", step.Status)
	}
}

func TestSessionInvalidGuessLeavesStateAlone(t *testing.T) {
	s := ladderSession(map[int]string{5: "crane"})

	if _, err := s.Guess("zzzzz"); !errors.Is(err, game.ErrInvalidGuess) {
		t.Fatalf("expected ErrInvalidGuess, got %v", err)
	}
	snap := s.Snapshot()
	if snap.Attempts != 0 || len(snap.Board) != 0 {
		t.Errorf("invalid guess mutated state: attempts=%d rows=%d", snap.Attempts, len(snap.Board))
	}
}

func TestSessionLost(t *testing.T) {
	s := NewSession(Config{
		BaseLength:   5,
		AttemptLimit: 2,
		Load:         staticLoad("crane", "trace"),
		RNG:          seedPicking(t, staticLoad("crane", "trace"), "CRANE"),
	})

	if _, err := s.Guess("trace"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	step, err := s.Guess("trace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !step.Finished || step.Outcome != OutcomeLost {
		t.Fatalf("expected lost finish, got finished=%v outcome=%s", step.Finished, step.Outcome)
	}
	if step.Score != 1 {
		t.Errorf("expected score 1, got %d", step.Score)
	}
	if !strings.Contains(step.Status, "the word was CRANE") {
		t.Errorf("expected loss message naming the target, got %q", step.Status)
	}
}

func TestSessionQuit(t *testing.T) {
	s := ladderSession(map[int]string{5: "crane", 6: "bridge"})
	if _, err := s.Guess("crane"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step, err := s.Quit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Outcome != OutcomeQuit || step.Score != 1 {
		t.Errorf("expected quit with score 1, got %s/%d", step.Outcome, step.Score)
	}
	if !strings.Contains(step.Status, "quitter") {
		t.Errorf("expected quitter message, got %q", step.Status)
	}

	// Terminal sessions reject further input but stay inspectable.
	if _, err := s.Guess("bridge"); !errors.Is(err, ErrFinished) {
		t.Errorf("expected ErrFinished, got %v", err)
	}
	again := s.Snapshot()
	if again.Outcome != OutcomeQuit || again.Score != 1 {
		t.Errorf("snapshot changed a terminal session: %s/%d", again.Outcome, again.Score)
	}
}

func TestSessionChampionAtBirth(t *testing.T) {
	s := ladderSession(map[int]string{})
	snap := s.Snapshot()
	if !snap.Finished || snap.Outcome != OutcomeChampion || snap.Score != 0 {
		t.Errorf("expected immediate champion with score 0, got finished=%v %s/%d",
			snap.Finished, snap.Outcome, snap.Score)
	}
}

func staticLoad(list ...string) Loader {
	return func(rules words.Rules) (*words.Candidates, error) {
		return words.Load(words.Static(list...), rules)
	}
}
