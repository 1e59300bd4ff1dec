package motus

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the score of a single letter of a guess.
type Mark byte

const (
	Right     Mark = 'R' // good letter in the good place
	Misplaced Mark = 'M' // good letter in a bad place
	Wrong     Mark = 'W' // letter absent, or used too many times
)

// Hint holds one Mark per letter position, e.g. "RWWMWW".
type Hint string

var ErrInvalidHint = errors.New("invalid hint")

// ParseHint accepts r/m/w in either case.
func ParseHint(s string) (Hint, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := 0; i < len(s); i++ {
		switch Mark(s[i]) {
		case Right, Misplaced, Wrong:
		default:
			return "", fmt.Errorf("%w: %q position %d is %q, want one of R, M, W", ErrInvalidHint, s, i, s[i])
		}
	}
	return Hint(s), nil
}

// ParseHintFor parses s as the hint received for guess: it must have one
// mark per letter of guess.
func ParseHintFor(guess, s string) (Hint, error) {
	h, err := ParseHint(s)
	if err != nil {
		return "", err
	}
	if len(h) != len(guess) {
		return "", fmt.Errorf("%w: %q has %d marks, guess %s has %d letters", ErrInvalidHint, h, len(h), guess, len(guess))
	}
	return h, nil
}

// Solved reports whether every position is Right. An empty hint is vacuously solved.
func (h Hint) Solved() bool {
	for i := 0; i < len(h); i++ {
		if Mark(h[i]) != Right {
			return false
		}
	}
	return true
}

func (h Hint) Marks() []Mark {
	ret := make([]Mark, len(h))
	for i := 0; i < len(h); i++ {
		ret[i] = Mark(h[i])
	}
	return ret
}

func repeat(m Mark, n int) Hint {
	return Hint(strings.Repeat(string(m), n))
}
