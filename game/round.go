// Package game runs motus rounds: a hidden solution, a bounded number of
// guesses, and a hint after each one.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/powellquiring/motus/dic"
	"github.com/powellquiring/motus/motus"
	"github.com/powellquiring/motus/player"
)

const (
	DefaultMinLength = 5
	DefaultMaxLength = 12
	DefaultGuesses   = 12
)

// Presenter shows the progress of a round.
type Presenter interface {
	InitRound(length int, first byte)
	Correction(guess string, hint motus.Hint)
	RightGuess(solution string)
	Solution(solution string)
}

type quiet struct{}

func (quiet) InitRound(int, byte)           {}
func (quiet) Correction(string, motus.Hint) {}
func (quiet) RightGuess(string)             {}
func (quiet) Solution(string)               {}

// Round is one hidden word. Universes registered with Watch are narrowed
// after every hint, so bots sharing one of them learn from each other's
// guesses.
type Round struct {
	Solution   string
	MaxGuesses int
	Guesses    []string
	Hints      []motus.Hint
	Won        bool

	universes []*motus.Universe
}

func NewRound(solution string, maxGuesses int) *Round {
	if maxGuesses <= 0 {
		maxGuesses = DefaultGuesses
	}
	return &Round{Solution: solution, MaxGuesses: maxGuesses}
}

// PickRound draws the solution from the words of store of the given length.
func PickRound(store *dic.Store, rng *rand.Rand, length, maxGuesses int) (*Round, error) {
	solution, err := store.RandomWord(rng, length)
	if err != nil {
		return nil, err
	}
	return NewRound(solution, maxGuesses), nil
}

func (r *Round) Watch(u *motus.Universe) {
	r.universes = append(r.universes, u)
}

// Play lets players guess in turn until one finds the solution or the guesses
// run out. A nil presenter shows nothing.
func (r *Round) Play(players []player.Player, p Presenter) error {
	if len(players) == 0 {
		return errors.New("round needs at least one player")
	}
	if p == nil {
		p = quiet{}
	}
	p.InitRound(len(r.Solution), r.Solution[0])
	for i := 0; i < r.MaxGuesses; i++ {
		guess, err := players[i%len(players)].Guess()
		if err != nil {
			return fmt.Errorf("guess %d: %w", i+1, err)
		}
		matched, hint := motus.Evaluate(r.Solution, guess)
		r.Guesses = append(r.Guesses, guess)
		r.Hints = append(r.Hints, hint)
		p.Correction(guess, hint)
		for _, u := range r.universes {
			u.Narrow(guess, hint)
		}
		if matched {
			r.Won = true
			log.Debug().Str("solution", r.Solution).Int("guesses", len(r.Guesses)).Msg("round won")
			p.RightGuess(r.Solution)
			return nil
		}
	}
	log.Debug().Str("solution", r.Solution).Msg("round lost")
	p.Solution(r.Solution)
	return nil
}
