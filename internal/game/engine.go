// internal/game/engine.go
//
// Scoring for a single guess against a target word.
//
// The duplicate-letter policy here is not the two-pass counting
// algorithm most Wordle clones use. Among repeated occurrences of the
// same letter in a guess, only the last occurrence is eligible for a
// "present" hint, and a letter that already earned a "correct" claim
// never earns "present". Changing this would change the hints players
// see for guesses with repeated letters.

package game

import "strings"

// Score compares guess against target and returns one hint per letter,
// left to right:
//
//  1. guess[i] == target[i]                     → correct
//  2. guess[i] occurs in target, is the last
//     occurrence of that letter in the guess,
//     and the letter holds no correct claim     → present
//  3. otherwise                                 → absent
//
// Both words are expected to be uppercase and of equal length; callers
// validate guesses before scoring. On a length mismatch the result is
// all-absent.
func Score(guess, target string) []LetterHint {
	out := make([]LetterHint, len(guess))
	for i := range out {
		out[i] = HintAbsent
	}
	if len(guess) != len(target) {
		return out
	}

	// Letters consumed by a correct verdict at a prior or current position.
	var claimed [26]bool

	for i := 0; i < len(guess); i++ {
		c := guess[i]
		switch {
		case c == target[i]:
			out[i] = HintCorrect
			if j := letterIndex(c); j >= 0 {
				claimed[j] = true
			}
		case strings.IndexByte(target, c) >= 0 &&
			strings.IndexByte(guess[i+1:], c) < 0 &&
			!isClaimed(claimed, c):
			out[i] = HintPresent
		}
	}
	return out
}

// letterIndex maps an uppercase ASCII letter to 0..25, or -1.
func letterIndex(c byte) int {
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}

func isClaimed(claimed [26]bool, c byte) bool {
	j := letterIndex(c)
	return j >= 0 && claimed[j]
}

// AllCorrect reports whether every hint is "correct".
func AllCorrect(hints []LetterHint) bool {
	for _, h := range hints {
		if h != HintCorrect {
			return false
		}
	}
	return true
}
