// Package player provides the guessers of a round: a human at a prompt, or a
// bot drawing its guesses from a candidate universe.
package player

import (
	"errors"

	"github.com/powellquiring/motus/motus"
)

// ErrNoCandidates means the hints seen so far contradict each other: no word
// of the universe is consistent with all of them.
var ErrNoCandidates = errors.New("no consistent word found")

type Player interface {
	Guess() (string, error)
}

// Prompter asks a human for the next guess.
type Prompter interface {
	PromptGuess() (string, error)
}

type HumanPlayer struct {
	prompter Prompter
}

func NewHumanPlayer(p Prompter) *HumanPlayer {
	return &HumanPlayer{prompter: p}
}

func (h *HumanPlayer) Guess() (string, error) {
	return h.prompter.PromptGuess()
}

// Strategy chooses a guess among the live words of a universe. The universe
// is never empty when Guess is called.
type Strategy interface {
	Guess(universe *motus.Universe) (string, error)
}

// BotPlayer guesses from a universe it may share with other bots. The round
// narrows that universe after every hint, whoever made the guess.
type BotPlayer struct {
	Strategy Strategy
	Universe *motus.Universe
}

func NewBotPlayer(strategy Strategy, universe *motus.Universe) *BotPlayer {
	return &BotPlayer{Strategy: strategy, Universe: universe}
}

func (b *BotPlayer) Guess() (string, error) {
	if b.Universe.Empty() {
		return "", ErrNoCandidates
	}
	return b.Strategy.Guess(b.Universe)
}
