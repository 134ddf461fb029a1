// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - LetterHint: per-letter verdict for a guess (correct/present/absent).
//   - ScoredGuess: one guess with its per-letter hints.
//   - State: lifecycle of a single round (active/won/lost/quit).

package game

// LetterHint is the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the target at that position.
//   - "present": letter occurs elsewhere in the target (see Score for
//     the duplicate-letter policy).
//   - "absent":  neither of the above.
type LetterHint string

const (
	HintCorrect LetterHint = "correct"
	HintPresent LetterHint = "present"
	HintAbsent  LetterHint = "absent"
)

// ScoredGuess is one submitted guess with its hints.
// len(Hints) always equals len(Word).
type ScoredGuess struct {
	Word  string       `json:"word"`
	Hints []LetterHint `json:"hints"`
}

// State is the lifecycle of a round. Won, lost, and quit are terminal.
type State string

const (
	StateActive State = "active"
	StateWon    State = "won"
	StateLost   State = "lost"
	StateQuit   State = "quit"
)

// Terminal reports whether s accepts no further transitions.
func (s State) Terminal() bool { return s != StateActive }

// Dictionary is what a Round needs from the word source: legality of a
// raw guess and membership in the current candidate set.
type Dictionary interface {
	Legal(word string) bool
	Contains(word string) bool
}
