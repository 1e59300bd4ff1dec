package game

import (
	"math/rand/v2"

	"github.com/powellquiring/motus/dic"
	"github.com/powellquiring/motus/player"
)

// UI is what a solo game needs from the terminal.
type UI interface {
	Presenter
	SelectWordLength(min, max int) (int, error)
	NoWords(length int)
	DisplayScore(wins, rounds int)
	AskReplay() (bool, error)
}

// SoloGame is a series of rounds of the same word length for one player.
type SoloGame struct {
	Store      *dic.Store
	Rng        *rand.Rand
	MinLength  int
	MaxLength  int
	MaxGuesses int

	Wins   int
	Rounds int
}

func NewSoloGame(store *dic.Store, rng *rand.Rand) *SoloGame {
	return &SoloGame{
		Store:      store,
		Rng:        rng,
		MinLength:  DefaultMinLength,
		MaxLength:  DefaultMaxLength,
		MaxGuesses: DefaultGuesses,
	}
}

func (g *SoloGame) IncrWins()   { g.Wins++ }
func (g *SoloGame) IncrRounds() { g.Rounds++ }

// SelectLength asks until the store has words of the chosen length.
func (g *SoloGame) SelectLength(ui UI) (int, error) {
	for {
		length, err := ui.SelectWordLength(g.MinLength, g.MaxLength)
		if err != nil {
			return 0, err
		}
		if len(g.Store.Initials(length)) > 0 {
			return length, nil
		}
		ui.NoWords(length)
	}
}

// PlayRound plays one round of the given length and updates the score.
func (g *SoloGame) PlayRound(ui UI, p player.Player, length int) (*Round, error) {
	rd, err := PickRound(g.Store, g.Rng, length, g.MaxGuesses)
	if err != nil {
		return nil, err
	}
	g.IncrRounds()
	if err := rd.Play([]player.Player{p}, ui); err != nil {
		return rd, err
	}
	if rd.Won {
		g.IncrWins()
	}
	return rd, nil
}

// Play asks for a word length once, then plays rounds while the player wants
// to replay.
func (g *SoloGame) Play(ui UI, p player.Player) error {
	length, err := g.SelectLength(ui)
	if err != nil {
		return err
	}
	for replay := true; replay; {
		if _, err := g.PlayRound(ui, p, length); err != nil {
			return err
		}
		ui.DisplayScore(g.Wins, g.Rounds)
		if replay, err = ui.AskReplay(); err != nil {
			return err
		}
	}
	return nil
}
