package words

import (
	"errors"
	mrand "math/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestRulesLegal(t *testing.T) {
	tests := []struct {
		name     string
		rules    Rules
		word     string
		expected bool
	}{
		{"in range with vowel", Exact(5, nil), "CRANE", true},
		{"lowercase accepted", Exact(5, nil), "crane", true},
		{"too short", Exact(5, nil), "CRAN", false},
		{"too long", Exact(5, nil), "CRANES", false},
		{"range accepts min", Rules{MinLen: 4, MaxLen: 6}, "ABLE", true},
		{"range accepts max", Rules{MinLen: 4, MaxLen: 6}, "BRIDGE", true},
		{"no vowel", Exact(5, nil), "BCDFG", false},
		{"y counts as a vowel", Exact(5, nil), "CRYPT", true},
		{"digit rejected by default pattern", Exact(5, nil), "CR4NE", false},
		{"hyphen rejected by default pattern", Exact(5, nil), "CO-OP", false},
		{"custom illegal pattern", Exact(5, regexp.MustCompile("[QZ]")), "QUAKE", false},
		{"custom pattern passes clean word", Exact(5, regexp.MustCompile("[QZ]")), "CRANE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rules.Legal(tt.word); got != tt.expected {
				t.Errorf("Legal(%q) = %v, expected %v", tt.word, got, tt.expected)
			}
		})
	}
}

func TestLoadFiltersAndNormalizes(t *testing.T) {
	src := Static("crane", "CRANE", " trace ", "bcdfg", "cran", "toolong")
	c, err := Load(src, Exact(5, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 candidates (deduped, filtered), got %d: %v", c.Len(), c.Words())
	}
	if !c.Contains("crane") || !c.Contains("TRACE") {
		t.Error("membership should be case-insensitive")
	}
	if c.Contains("BCDFG") {
		t.Error("vowel-free word survived the filter")
	}
}

func TestLoadNoCandidates(t *testing.T) {
	_, err := Load(Static("crane"), Exact(9, nil))
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\n\ncrane\ntrace\nbridge\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(File(path), Exact(5, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 five-letter words, got %d", c.Len())
	}
}

func TestFileSourceUnavailable(t *testing.T) {
	_, err := Load(File(filepath.Join(t.TempDir(), "missing.txt")), Exact(5, nil))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestEmbeddedCoversMarathonLengths(t *testing.T) {
	for length := 4; length <= 10; length++ {
		c, err := Load(Embedded(), Exact(length, nil))
		if err != nil {
			t.Fatalf("length %d: %v", length, err)
		}
		if c.Len() == 0 {
			t.Errorf("length %d: embedded dictionary is empty", length)
		}
	}
	if _, err := Load(Embedded(), Exact(11, nil)); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected no 11-letter words in the embedded dictionary, got %v", err)
	}
}

func TestPickDeterministicUnderSeed(t *testing.T) {
	c, err := Load(Static("crane", "trace", "alley", "speed", "level"), Exact(5, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := mrand.New(mrand.NewSource(42))
	b := mrand.New(mrand.NewSource(42))
	for i := 0; i < 10; i++ {
		wa, wb := c.Pick(a), c.Pick(b)
		if wa != wb {
			t.Fatalf("pick %d diverged under identical seeds: %s vs %s", i, wa, wb)
		}
		if !c.Contains(wa) {
			t.Fatalf("picked word %q not in candidate set", wa)
		}
	}
}
