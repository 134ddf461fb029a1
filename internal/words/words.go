// internal/words/words.go
//
// Candidate word selection for the game engine.
//
// Responsibilities:
//   - Legality rules: length bounds, vowel presence, illegal-character
//     pattern.
//   - Load: filter a line source into the per-round candidate set.
//   - Candidates: set + list duals for membership checks and uniform
//     target selection under an injected random source.
//
// Candidates are derived once per round; the length constraint changes
// every marathon round, so nothing here is cached globally.

package words

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"regexp"
	"strings"
)

var (
	// ErrSourceUnavailable means the backing word list could not be read.
	ErrSourceUnavailable = errors.New("word source unavailable")

	// ErrNoCandidates means the filtered candidate set came up empty.
	ErrNoCandidates = errors.New("no legal candidates")
)

// Vowels is the fixed vowel set a legal word must draw from.
const Vowels = "AEIOUY"

// DefaultIllegal rejects anything that is not an uppercase ASCII letter.
var DefaultIllegal = regexp.MustCompile(`[^A-Z]`)

// Rules is the legality predicate for one round.
type Rules struct {
	MinLen  int
	MaxLen  int
	Illegal *regexp.Regexp // nil falls back to DefaultIllegal
}

// Exact returns rules for a single fixed word length.
func Exact(length int, illegal *regexp.Regexp) Rules {
	return Rules{MinLen: length, MaxLen: length, Illegal: illegal}
}

// Legal reports whether word satisfies the length bounds, contains at
// least one vowel, and has no character matching the illegal pattern.
// Comparison is case-insensitive.
func (r Rules) Legal(word string) bool {
	w := strings.ToUpper(word)
	if len(w) < r.MinLen || len(w) > r.MaxLen {
		return false
	}
	if !strings.ContainsAny(w, Vowels) {
		return false
	}
	illegal := r.Illegal
	if illegal == nil {
		illegal = DefaultIllegal
	}
	return !illegal.MatchString(w)
}

// Candidates is the set of legal words for one round.
type Candidates struct {
	rules Rules
	list  []string
	set   map[string]struct{}
}

// Load reads src, upcases each word, filters by rules, and returns the
// surviving set. Fails with ErrSourceUnavailable if src cannot be read
// and ErrNoCandidates if nothing survives the filter.
func Load(src Source, rules Rules) (*Candidates, error) {
	raw, err := src.Words()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	c := &Candidates{rules: rules, set: make(map[string]struct{})}
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !rules.Legal(w) {
			continue
		}
		if _, dup := c.set[w]; dup {
			continue
		}
		c.set[w] = struct{}{}
		c.list = append(c.list, w)
	}
	if len(c.list) == 0 {
		return nil, fmt.Errorf("%w for length %d-%d", ErrNoCandidates, rules.MinLen, rules.MaxLen)
	}
	return c, nil
}

// Legal applies this round's legality rules to a raw guess.
func (c *Candidates) Legal(word string) bool { return c.rules.Legal(word) }

// Contains reports dictionary membership (case-insensitive).
func (c *Candidates) Contains(word string) bool {
	_, ok := c.set[strings.ToUpper(word)]
	return ok
}

// Len returns the candidate count.
func (c *Candidates) Len() int { return len(c.list) }

// Words returns the candidate list in load order.
func (c *Candidates) Words() []string { return c.list }

// Pick selects a target uniformly at random. Deterministic under a
// seeded rng, which is how tests and daily mode reproduce sequences.
func (c *Candidates) Pick(rng *mrand.Rand) string {
	return c.list[rng.Intn(len(c.list))]
}

// NewRNG returns a math/rand source seeded from crypto/rand.
func NewRNG() *mrand.Rand {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return mrand.New(mrand.NewSource(int64(binary.BigEndian.Uint64(b[:]))))
}
