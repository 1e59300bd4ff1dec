package motus

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		solution, guess string
		matched         bool
		hint            Hint
	}{
		{"BANANA", "BANANA", true, "RRRRRR"},
		{"BANANA", "BOUNTY", false, "RWWMWW"},
		{"BANANA", "CACTUS", false, "WWWWWW"}, // first letter differs
		{"BANANA", "BAN", false, "WWWWWW"},    // length differs
		{"BANANA", "BANANAS", false, "WWWWWW"},
		{"ABAZZ", "AXXAA", false, "RWWMW"}, // two A in the solution, not three
		{"ARRET", "ARBRE", false, "RRWMM"},
		{"ASPIC", "APRES", false, "RMWWM"},
		{"", "", true, ""},
		{"A", "", false, "W"},
	}
	for _, tt := range tests {
		t.Run(tt.solution+"/"+tt.guess, func(t *testing.T) {
			matched, hint := Evaluate(tt.solution, tt.guess)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.hint, hint)
		})
	}
}

func TestEvaluateSelf(t *testing.T) {
	for _, w := range []string{"A", "BANANA", "ANTICONSTITUTIONNELLEMENT", "ZZZZZ"} {
		matched, hint := Evaluate(w, w)
		assert.True(t, matched)
		assert.Equal(t, Hint(strings.Repeat("R", len(w))), hint)
	}
}

func TestEvaluateDisjointLetters(t *testing.T) {
	// same first letter, otherwise no letter in common
	matched, hint := Evaluate("BRAVO", "BLIMP")
	assert.False(t, matched)
	assert.Equal(t, Hint("RWWWW"), hint)
	assert.NotContains(t, string(hint), string(Misplaced))
}

func TestEvaluateMultisetConservation(t *testing.T) {
	solutions := []string{"BANANA", "BAMBOO", "ARRET", "ANNEE", "MIETTE", "PIERRE"}
	guesses := []string{"BBBBBB", "BAAAAA", "AAAAA", "ARRRR", "MMMMMM", "PEEEEE", "BOOOOO", "ANNNN"}
	for _, solution := range solutions {
		for _, guess := range guesses {
			if len(guess) != len(solution) {
				continue
			}
			_, hint := Evaluate(solution, guess)
			credited := map[byte]int{}
			for i, m := range hint.Marks() {
				if m != Wrong {
					credited[guess[i]]++
				}
			}
			for letter, n := range credited {
				assert.LessOrEqual(t, n, strings.Count(solution, string(letter)), "%s/%s letter %c", solution, guess, letter)
			}
		}
	}
}

func TestParseHint(t *testing.T) {
	h, err := ParseHint(" rwwMww ")
	require.NoError(t, err)
	assert.Equal(t, Hint("RWWMWW"), h)
	assert.False(t, h.Solved())
	assert.True(t, Hint("RRR").Solved())

	_, err = ParseHint("RXW")
	assert.ErrorIs(t, err, ErrInvalidHint)
}

func TestParseHintFor(t *testing.T) {
	h, err := ParseHintFor("ASPIC", "rmwwm")
	require.NoError(t, err)
	assert.Equal(t, Hint("RMWWM"), h)

	_, err = ParseHintFor("ASPIC", "RRR")
	assert.ErrorIs(t, err, ErrInvalidHint)
	_, err = ParseHintFor("ASPIC", "RRRRRX")
	assert.ErrorIs(t, err, ErrInvalidHint)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("BANANA", "BANANA", "RRRRRR"))
	assert.True(t, Matches("BANANA", "BOUNTY", "RWWMWW"))
	assert.False(t, Matches("BANANA", "BANANA", "RRWRRR"))
	assert.False(t, Matches("BANANA", "BOUNTY", "RWWWMW"))
}

func TestNarrow(t *testing.T) {
	universe := []string{"BANANA", "BAMBOO", "BIKINI", "BOUNTY"}
	narrowed := Narrow(universe, "BOUNTY", "RWWMWW")
	assert.Equal(t, []string{"BANANA", "BIKINI"}, narrowed)
	assert.Equal(t, []string{"BANANA", "BAMBOO", "BIKINI", "BOUNTY"}, universe, "input must not change")

	// idempotent on its own output
	assert.Equal(t, narrowed, Narrow(narrowed, "BOUNTY", "RWWMWW"))

	assert.Empty(t, Narrow(universe, "BOUNTY", "MMMMMM"))
	assert.Empty(t, Narrow(nil, "BOUNTY", "RWWMWW"))
}

func TestUniverse(t *testing.T) {
	u := NewUniverse([]string{"BANANA", "BAMBOO", "BIKINI", "BOUNTY"})
	assert.Equal(t, 4, u.Len())

	// two players holding the same universe see the same narrowing
	other := u
	assert.Equal(t, 2, u.Narrow("BOUNTY", "RWWMWW"))
	assert.Equal(t, []string{"BANANA", "BIKINI"}, other.Words())
	assert.True(t, other.Contains("BIKINI"))
	assert.False(t, other.Contains("BOUNTY"))

	assert.Equal(t, 1, u.Narrow("BIKINI", "RWWWRW"))
	assert.Equal(t, []string{"BANANA"}, u.Words())

	assert.Equal(t, 0, u.Narrow("BANANA", "WWWWWW"))
	assert.True(t, u.Empty())
	assert.Empty(t, u.Words())
}

func TestUniverseMatchesNarrow(t *testing.T) {
	words := []string{"ASPIC", "APRES", "ARRET", "ACTIF", "ANNEE", "AMIES", "ARBRE"}
	u := NewUniverse(words)
	u.Narrow("ARRET", "RMWMW")
	assert.Equal(t, Narrow(words, "ARRET", "RMWMW"), u.Words())
}

func randomWord(rng *rand.Rand, alphabet string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}

func TestRandomWords(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		w := randomWord(rng, "ABCD", 1+rng.IntN(6))
		matched, hint := Evaluate(w, w)
		assert.True(t, matched, w)
		assert.Equal(t, Hint(strings.Repeat("R", len(w))), hint, w)
	}

	for range 100 {
		words := make([]string, 1+rng.IntN(30))
		for i := range words {
			words[i] = "A" + randomWord(rng, "ABCD", 3)
		}
		solution := words[rng.IntN(len(words))]
		guess := "A" + randomWord(rng, "ABCD", 3)
		_, hint := Evaluate(solution, guess)

		narrowed := Narrow(words, guess, hint)
		assert.Contains(t, narrowed, solution, "%s %s %s", solution, guess, hint)
		assert.Equal(t, narrowed, Narrow(narrowed, guess, hint), "%s %s", guess, hint)

		u := NewUniverse(words)
		u.Narrow(guess, hint)
		assert.Equal(t, narrowed, u.Words(), "%s %s", guess, hint)
	}
}
