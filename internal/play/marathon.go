// internal/play/marathon.go
//
// Marathon mode: successive rounds with escalating difficulty. Word
// length grows by one every round; every third round the attempt
// budget shrinks by one (never below one, never back up). The score is
// the number of rounds survived.

package play

import (
	"fmt"
	mrand "math/rand"
	"regexp"

	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/words"
)

// Outcome is the terminal result of a marathon.
type Outcome string

const (
	// OutcomeQuit: the player bailed mid-round. The round in progress
	// does not count toward the score.
	OutcomeQuit Outcome = "quit"

	// OutcomeLost: a round ran out of attempts. The lost round counts.
	OutcomeLost Outcome = "lost"

	// OutcomeChampion: the word source has no legal word at the current
	// difficulty; the player outlasted the dictionary.
	OutcomeChampion Outcome = "champion"
)

// Config carries the values a marathon consumes.
type Config struct {
	BaseLength   int            // word length for round one
	AttemptLimit int            // starting attempt budget
	Illegal      *regexp.Regexp // nil uses words.DefaultIllegal
	Load         Loader         // nil uses the embedded dictionary
	RNG          *mrand.Rand    // nil uses a crypto-seeded source
}

func (c Config) withDefaults() Config {
	if c.BaseLength <= 0 {
		c.BaseLength = 5
	}
	if c.AttemptLimit <= 0 {
		c.AttemptLimit = 6
	}
	if c.Load == nil {
		c.Load = SourceLoader(words.Embedded())
	}
	if c.RNG == nil {
		c.RNG = words.NewRNG()
	}
	return c
}

// Marathon tracks difficulty across rounds. The rounds counter is
// incremented when a round starts, so scoring treats the in-progress
// round uniformly: quit and champion exclude it, lost includes it.
type Marathon struct {
	length int
	limit  int
	rounds int
}

// NewMarathon prepares a marathon at the given base difficulty.
func NewMarathon(baseLength, attemptLimit int) *Marathon {
	return &Marathon{length: baseLength, limit: attemptLimit}
}

// StartRound advances to the next round and returns its difficulty.
// Round one uses the base values; afterwards the length grows by one
// per round and the limit drops by one before every third round,
// clamped at a single attempt.
func (m *Marathon) StartRound() (length, limit int) {
	m.rounds++
	if m.rounds > 1 {
		m.length++
	}
	if m.rounds%3 == 0 && m.limit > 1 {
		m.limit--
	}
	return m.length, m.limit
}

// Rounds returns how many rounds have been started.
func (m *Marathon) Rounds() int { return m.rounds }

// Score maps a terminal outcome to the final score.
func (m *Marathon) Score(o Outcome) int {
	if o == OutcomeLost {
		return m.rounds
	}
	if m.rounds == 0 {
		return 0
	}
	return m.rounds - 1
}

// FinalMessage is the score line appended after the last round message.
func FinalMessage(o Outcome, score int) string {
	switch o {
	case OutcomeChampion:
		return fmt.Sprintf("Dictionary exhausted. Champion! Final score: %d", score)
	case OutcomeQuit:
		return fmt.Sprintf("Marathon abandoned. Final score: %d", score)
	default:
		return fmt.Sprintf("Marathon over. Final score: %d", score)
	}
}

// RunMarathon plays rounds against b until the player quits, loses, or
// outlasts the word source, and returns the final score and outcome.
// A word-source failure at any round start ends the run as champion.
func RunMarathon(b Boundary, cfg Config) (int, Outcome) {
	cfg = cfg.withDefaults()
	m := NewMarathon(cfg.BaseLength, cfg.AttemptLimit)

	for {
		length, limit := m.StartRound()
		cands, err := cfg.Load(words.Exact(length, cfg.Illegal))
		if err != nil {
			return finishMarathon(b, m, OutcomeChampion)
		}
		target := cands.Pick(cfg.RNG)

		switch RunRound(b, cands, target, limit) {
		case game.StateWon:
			continue
		case game.StateLost:
			return finishMarathon(b, m, OutcomeLost)
		default:
			return finishMarathon(b, m, OutcomeQuit)
		}
	}
}

func finishMarathon(b Boundary, m *Marathon, o Outcome) (int, Outcome) {
	score := m.Score(o)
	b.AppendStatus(FinalMessage(o, score))
	return score, o
}
