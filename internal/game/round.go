// internal/game/round.go
//
// State machine for a single round: one target word, a fixed attempt
// budget, and an ordered history of scored guesses.
//
// Transitions (one per accepted turn):
//   - valid guess equal to the target        → won
//   - valid guess, attempt budget exhausted  → lost
//   - valid guess otherwise                  → stays active
//   - quit signal                            → quit (no row, no attempt)
//
// Invalid guesses (illegal characters, wrong length, not in the
// candidate set) are rejected with ErrInvalidGuess and consume nothing.

package game

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidGuess is returned for guesses that fail legality or
	// dictionary membership. The turn is not consumed.
	ErrInvalidGuess = errors.New("not in dictionary")

	// ErrRoundOver is returned when a terminal round receives input.
	ErrRoundOver = errors.New("round over")
)

// Round tracks one puzzle from start to a terminal state.
type Round struct {
	target   string
	dict     Dictionary
	limit    int
	attempts int
	history  []ScoredGuess
	state    State
}

// NewRound starts a round for target with the given attempt budget.
// The target is upcased; dict validates incoming guesses.
func NewRound(target string, dict Dictionary, limit int) *Round {
	return &Round{
		target:  strings.ToUpper(strings.TrimSpace(target)),
		dict:    dict,
		limit:   limit,
		history: []ScoredGuess{},
		state:   StateActive,
	}
}

// Apply validates and scores one guess, mutating the round.
// Only legal, dictionary-valid guesses consume an attempt; rejected
// guesses leave attempts and history untouched.
func (r *Round) Apply(guess string) (ScoredGuess, error) {
	if r.state.Terminal() {
		return ScoredGuess{}, ErrRoundOver
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if !r.dict.Legal(guess) || !r.dict.Contains(guess) {
		return ScoredGuess{}, ErrInvalidGuess
	}

	row := ScoredGuess{Word: guess, Hints: Score(guess, r.target)}
	r.history = append(r.history, row)
	r.attempts++

	if guess == r.target {
		r.state = StateWon
	} else if r.attempts >= r.limit {
		r.state = StateLost
	}
	return row, nil
}

// Quit moves an active round to the quit state without appending a row
// or consuming an attempt.
func (r *Round) Quit() error {
	if r.state.Terminal() {
		return ErrRoundOver
	}
	r.state = StateQuit
	return nil
}

func (r *Round) State() State           { return r.state }
func (r *Round) Target() string         { return r.target }
func (r *Round) Attempts() int          { return r.attempts }
func (r *Round) Limit() int             { return r.limit }
func (r *Round) Length() int            { return len(r.target) }
func (r *Round) History() []ScoredGuess { return r.history }
