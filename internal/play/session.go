// internal/play/session.go
//
// Step-wise marathon session for request/response boundaries (the HTTP
// adapter). Where RunMarathon blocks on a Boundary, a Session is
// stepped one guess at a time and carries its status text with it:
// DisplayStatus semantics replace it, AppendStatus semantics add the
// final score line after the last round message.

package play

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/emacsmirror/wordel/internal/game"
	"github.com/emacsmirror/wordel/internal/words"
)

// ErrFinished is returned when a terminal session receives input.
var ErrFinished = errors.New("marathon finished")

// Step is a snapshot of a session after one interaction.
type Step struct {
	Round        int                `json:"round"`
	Length       int                `json:"length"`
	AttemptLimit int                `json:"attemptLimit"`
	Attempts     int                `json:"attempts"`
	Board        []game.ScoredGuess `json:"board"`
	Row          *game.ScoredGuess  `json:"row,omitempty"`
	RoundState   game.State         `json:"roundState"`
	Status       string             `json:"status,omitempty"`
	Finished     bool               `json:"finished"`
	Outcome      Outcome            `json:"outcome,omitempty"`
	Score        int                `json:"score"`
}

// Session is one marathon driven externally, one guess per call.
type Session struct {
	id  string
	cfg Config

	mu       sync.Mutex
	marathon *Marathon
	round    *game.Round
	cands    *words.Candidates
	status   string
	finished bool
	outcome  Outcome
	score    int
}

// NewSession starts a marathon session and its first round. A word
// source with no content at the base difficulty yields an already
// finished champion session with score zero rather than an error.
func NewSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		id:       randomID(),
		cfg:      cfg,
		marathon: NewMarathon(cfg.BaseLength, cfg.AttemptLimit),
	}
	s.nextRound()
	return s
}

// SessionID returns the session's identifier.
func (s *Session) SessionID() string { return s.id }

// Guess applies one guess. Invalid guesses return game.ErrInvalidGuess
// with the session unchanged; a terminal session returns ErrFinished.
// A won round rolls straight into the next one (or ends as champion).
func (s *Session) Guess(word string) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return s.snapshot(nil), ErrFinished
	}

	row, err := s.round.Apply(word)
	if err != nil {
		return s.snapshot(nil), err
	}
	s.status = ""

	switch s.round.State() {
	case game.StateWon:
		s.status = OutcomeMessage(game.StateWon, s.round.Target())
		// Roll into the next round; the returned step carries the win
		// message together with the new round's dimensions. A champion
		// finish appends its score line after the win message.
		s.nextRound()
		return s.snapshot(&row), nil
	case game.StateLost:
		s.status = OutcomeMessage(game.StateLost, s.round.Target())
		s.finish(OutcomeLost)
	}
	return s.snapshot(&row), nil
}

// Quit ends the session without consuming the in-progress round.
func (s *Session) Quit() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return s.snapshot(nil), ErrFinished
	}
	_ = s.round.Quit()
	s.status = OutcomeMessage(game.StateQuit, s.round.Target())
	s.finish(OutcomeQuit)
	return s.snapshot(nil), nil
}

// Snapshot returns the current state without mutating anything.
// Safe to call on terminal sessions.
func (s *Session) Snapshot() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(nil)
}

// nextRound advances difficulty and loads the next candidate set.
// Any word-source failure ends the run as champion.
func (s *Session) nextRound() {
	length, limit := s.marathon.StartRound()
	cands, err := s.cfg.Load(words.Exact(length, s.cfg.Illegal))
	if err != nil {
		s.finish(OutcomeChampion)
		return
	}
	s.cands = cands
	s.round = game.NewRound(cands.Pick(s.cfg.RNG), cands, limit)
	log.Info().
		Str("session", s.id).
		Int("round", s.marathon.Rounds()).
		Int("length", length).
		Int("limit", limit).
		Msg("marathon round started")
}

func (s *Session) finish(o Outcome) {
	s.finished = true
	s.outcome = o
	s.score = s.marathon.Score(o)
	final := FinalMessage(o, s.score)
	if s.status != "" {
		s.status = s.status + "\n" + final
	} else {
		s.status = final
	}
	log.Info().
		Str("session", s.id).
		Str("outcome", string(o)).
		Int("score", s.score).
		Msg("marathon finished")
}

func (s *Session) snapshot(row *game.ScoredGuess) Step {
	st := Step{
		Round:    s.marathon.Rounds(),
		Row:      row,
		Status:   s.status,
		Finished: s.finished,
		Score:    s.score,
	}
	if s.finished {
		st.Outcome = s.outcome
	}
	if s.round != nil {
		st.Length = s.round.Length()
		st.AttemptLimit = s.round.Limit()
		st.Attempts = s.round.Attempts()
		st.Board = s.round.History()
		st.RoundState = s.round.State()
	}
	return st
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Describe summarizes a step for logs and plain-text clients.
func (st Step) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "round %d, %d/%d attempts", st.Round, st.Attempts, st.AttemptLimit)
	if st.Status != "" {
		sb.WriteString(": ")
		sb.WriteString(strings.ReplaceAll(st.Status, "\n", "; "))
	}
	return sb.String()
}
