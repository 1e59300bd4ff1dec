package game

import (
	"fmt"
	"slices"

	"github.com/powellquiring/motus/dic"
	"github.com/powellquiring/motus/motus"
	"github.com/powellquiring/motus/player"
)

// Game is the record of one simulated round.
type Game struct {
	Solution string
	Guesses  []string
	Won      bool
}

// Results groups simulated games by the number of guesses a win took.
type Results struct {
	ByGuesses map[int][]Game
	Lost      []Game
}

// Counts returns the sorted guess counts present in ByGuesses.
func (r *Results) Counts() []int {
	keys := make([]int, 0, len(r.ByGuesses))
	for k := range r.ByGuesses {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Played is the number of games, won or lost.
func (r *Results) Played() int {
	n := len(r.Lost)
	for _, games := range r.ByGuesses {
		n += len(games)
	}
	return n
}

// Mean is the average number of guesses over won games.
func (r *Results) Mean() float64 {
	won, total := 0, 0
	for k, games := range r.ByGuesses {
		won += len(games)
		total += k * len(games)
	}
	if won == 0 {
		return 0
	}
	return float64(total) / float64(won)
}

// NewBots returns the players of one simulated round, all guessing from u.
type NewBots func(u *motus.Universe) []player.Player

// Simulate plays one bot round per solution. Each round starts from the words
// of store with the solution length. progress, if set, is called after each
// game.
func Simulate(store *dic.Store, solutions []string, newBots NewBots, maxGuesses int, progress func()) (*Results, error) {
	results := &Results{ByGuesses: make(map[int][]Game)}
	for _, solution := range solutions {
		if solution == "" {
			continue
		}
		u := motus.NewUniverse(store.WithLength(len(solution)))
		if !u.Contains(solution) {
			return results, fmt.Errorf("solution %s: %w", solution, dic.ErrNoWords)
		}
		rd := NewRound(solution, maxGuesses)
		rd.Watch(u)
		if err := rd.Play(newBots(u), nil); err != nil {
			return results, fmt.Errorf("solution %s: %w", solution, err)
		}
		g := Game{Solution: solution, Guesses: rd.Guesses, Won: rd.Won}
		if rd.Won {
			results.ByGuesses[len(rd.Guesses)] = append(results.ByGuesses[len(rd.Guesses)], g)
		} else {
			results.Lost = append(results.Lost, g)
		}
		if progress != nil {
			progress()
		}
	}
	return results, nil
}
