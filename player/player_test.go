package player

import (
	"container/heap"
	"math/rand/v2"
	"testing"

	"github.com/powellquiring/motus/motus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPrompter []string

func (p *scriptedPrompter) PromptGuess() (string, error) {
	guess := (*p)[0]
	*p = (*p)[1:]
	return guess, nil
}

func TestHumanPlayer(t *testing.T) {
	p := scriptedPrompter{"ASPIC", "APRES"}
	h := NewHumanPlayer(&p)
	guess, err := h.Guess()
	require.NoError(t, err)
	assert.Equal(t, "ASPIC", guess)
	guess, err = h.Guess()
	require.NoError(t, err)
	assert.Equal(t, "APRES", guess)
}

func TestRandomStrategy(t *testing.T) {
	words := []string{"ASPIC", "APRES", "ARRET", "ACTIF", "ANNEE"}
	u := motus.NewUniverse(words)
	bot := NewBotPlayer(NewRandomStrategy(rand.New(rand.NewPCG(3, 4))), u)
	for range 20 {
		guess, err := bot.Guess()
		require.NoError(t, err)
		assert.Contains(t, words, guess)
	}

	u.Narrow("ASPIC", "RRRRR")
	for range 5 {
		guess, err := bot.Guess()
		require.NoError(t, err)
		assert.Equal(t, "ASPIC", guess)
	}
}

func TestBotNoCandidates(t *testing.T) {
	u := motus.NewUniverse([]string{"ASPIC", "APRES"})
	assert.Zero(t, u.Narrow("ARRET", "RRRRR"))
	for _, s := range []Strategy{NewRandomStrategy(rand.New(rand.NewPCG(1, 1))), NewMinRemainingStrategy()} {
		_, err := NewBotPlayer(s, u).Guess()
		assert.ErrorIs(t, err, ErrNoCandidates)
	}
}

func TestGuessScore(t *testing.T) {
	words := []string{"AXYZ", "ABCD", "ABCE", "ABCF"}
	assert.Equal(t, 10, GuessScore("AXYZ", words))
	assert.Equal(t, 6, GuessScore("ABCD", words))
	assert.Equal(t, 6, GuessScore("ABCE", words))
	assert.Equal(t, 1, GuessScore("ASPIC", []string{"ASPIC"}))
}

func TestMinRemainingStrategy(t *testing.T) {
	u := motus.NewUniverse([]string{"AXYZ", "ABCD", "ABCE", "ABCF"})
	s := NewMinRemainingStrategy()

	sorted := s.SortedGuesses(u)
	var order []string
	for sorted.Len() > 0 {
		order = append(order, heap.Pop(sorted).(Item).Value)
	}
	assert.Equal(t, []string{"ABCD", "ABCE", "ABCF", "AXYZ"}, order)

	guess, err := NewBotPlayer(s, u).Guess()
	require.NoError(t, err)
	assert.Equal(t, "ABCD", guess)

	s.Limit = 1
	guess, err = s.Guess(u)
	require.NoError(t, err)
	assert.Equal(t, "AXYZ", guess)
}

func TestSharedUniverse(t *testing.T) {
	u := motus.NewUniverse([]string{"BANANA", "BAMBOO", "BIKINI", "BOUNTY"})
	first := NewBotPlayer(NewMinRemainingStrategy(), u)
	second := NewBotPlayer(NewRandomStrategy(rand.New(rand.NewPCG(5, 6))), u)

	_, hint := motus.Evaluate("BIKINI", "BANANA")
	u.Narrow("BANANA", hint)

	for _, bot := range []*BotPlayer{first, second} {
		guess, err := bot.Guess()
		require.NoError(t, err)
		assert.Equal(t, "BIKINI", guess)
	}
}

func TestOpeningStrategy(t *testing.T) {
	u := motus.NewUniverse([]string{"AXYZ", "ABCD", "ABCE", "ABCF"})
	s := NewOpeningStrategy(NewOpenings([]string{"AZZZ", "ASPIC", "ABCF"}), NewMinRemainingStrategy())
	var guesses []string
	for range 3 {
		guess, err := s.Guess(u)
		require.NoError(t, err)
		guesses = append(guesses, guess)
	}
	assert.Equal(t, []string{"AZZZ", "ABCF", "ABCD"}, guesses)
}

func TestOpeningsShared(t *testing.T) {
	u := motus.NewUniverse([]string{"AXYZ", "ABCD", "ABCE", "ABCF"})
	openings := NewOpenings([]string{"ABCF"})
	first := NewBotPlayer(NewOpeningStrategy(openings, NewMinRemainingStrategy()), u)
	second := NewBotPlayer(NewOpeningStrategy(openings, NewMinRemainingStrategy()), u)

	guess, err := first.Guess()
	require.NoError(t, err)
	assert.Equal(t, "ABCF", guess)
	guess, err = second.Guess()
	require.NoError(t, err)
	assert.Equal(t, "ABCD", guess)

	_, ok := openings.Next(4)
	assert.False(t, ok)
}

func TestNewStrategy(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s, err := NewStrategy("random", rng)
	require.NoError(t, err)
	assert.IsType(t, &RandomStrategy{}, s)
	s, err = NewStrategy("min", rng)
	require.NoError(t, err)
	assert.IsType(t, &MinRemainingStrategy{}, s)
	_, err = NewStrategy("genius", rng)
	assert.Error(t, err)

	newStrategy, err := StrategyFactory("random", rng)
	require.NoError(t, err)
	assert.NotSame(t, newStrategy(), newStrategy())
	_, err = StrategyFactory("genius", rng)
	assert.Error(t, err)
}
