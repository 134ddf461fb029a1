// internal/play/turn.go
//
// The turn loop: drives a single round to a terminal state against a
// Boundary. Invalid guesses re-prompt the same turn; the round state
// machine owns everything else.

package play

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/words"
)

// Loader produces the candidate set for a round's legality rules.
// Pluggable so callers can swap the backing word list.
type Loader func(rules words.Rules) (*words.Candidates, error)

// SourceLoader adapts a words.Source into a Loader.
func SourceLoader(src words.Source) Loader {
	return func(rules words.Rules) (*words.Candidates, error) {
		return words.Load(src, rules)
	}
}

// RunRound plays one round against b and returns its terminal state.
//
// Each turn: render the board, block for a guess, validate it. A guess
// that fails legality or dictionary membership shows a notice and
// retries the same turn without consuming an attempt. After the round
// ends, the outcome message is displayed.
func RunRound(b Boundary, dict *words.Candidates, target string, limit int) game.State {
	r := game.NewRound(target, dict, limit)
	for !r.State().Terminal() {
		b.RenderBoard(r.History(), r.Length(), r.Attempts())
		guess, quit := b.ReadGuess(r.Length())
		if quit {
			_ = r.Quit()
			break
		}
		if _, err := r.Apply(guess); err != nil {
			if errors.Is(err, game.ErrInvalidGuess) {
				b.DisplayStatus(fmt.Sprintf("%s is not in the dictionary", strings.ToUpper(strings.TrimSpace(guess))))
			}
			continue
		}
	}
	b.RenderBoard(r.History(), r.Length(), r.Attempts())
	b.DisplayStatus(OutcomeMessage(r.State(), r.Target()))
	return r.State()
}

// OutcomeMessage is the user-facing line for a finished round.
func OutcomeMessage(s game.State, target string) string {
	switch s {
	case game.StateWon:
		return "You won"
	case game.StateLost:
		return fmt.Sprintf("You lost, the word was %s", target)
	case game.StateQuit:
		return fmt.Sprintf("The word was %s, quitter", target)
	}
	return ""
}
