package player

import (
	"container/heap"
	"fmt"
	"math/rand/v2"

	"github.com/powellquiring/motus/motus"
)

// RandomStrategy picks any live word.
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) Guess(universe *motus.Universe) (string, error) {
	words := universe.Words()
	if len(words) == 0 {
		return "", ErrNoCandidates
	}
	return words[s.rng.IntN(len(words))], nil
}

// MinHeap is a generic min-heap that can store any type T.
type MinHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *MinHeap[T]) Len() int           { return len(h.data) }
func (h *MinHeap[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *MinHeap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

// Push adds an element to the heap.
func (h *MinHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

// Pop removes the highest-priority element.
func (h *MinHeap[T]) Pop() any {
	n := len(h.data)
	item := h.data[n-1]
	h.data = h.data[0 : n-1]
	return item
}

// An Item is a scored guess. Order is the guess position in the universe and
// breaks score ties.
type Item struct {
	Value string
	Score int
	Order int
}

func NewMinHeapItem() *MinHeap[Item] {
	ret := &MinHeap[Item]{
		data: []Item{},
		less: func(a, b Item) bool {
			if a.Score != b.Score {
				return a.Score < b.Score
			}
			return a.Order < b.Order
		},
	}
	heap.Init(ret)
	return ret
}

// GuessScore is the total number of candidates left after guess, summed over
// every possible solution. Solutions giving the same hint leave the same
// candidates, so each hint class of size n counts n*n.
func GuessScore(guess string, possibleWords []string) int {
	classes := make(map[motus.Hint]int, len(possibleWords))
	for _, solution := range possibleWords {
		_, hint := motus.Evaluate(solution, guess)
		classes[hint]++
	}
	score := 0
	for _, n := range classes {
		score += n * n
	}
	return score
}

// DefaultGuessLimit bounds how many live words MinRemainingStrategy scores.
const DefaultGuessLimit = 300

// MinRemainingStrategy guesses the live word leaving the fewest candidates on
// average. Only the first Limit live words are scored as guesses; 0 means
// DefaultGuessLimit.
type MinRemainingStrategy struct {
	Limit int
}

func NewMinRemainingStrategy() *MinRemainingStrategy {
	return &MinRemainingStrategy{Limit: DefaultGuessLimit}
}

// SortedGuesses scores the candidate guesses of universe, best first.
func (s *MinRemainingStrategy) SortedGuesses(universe *motus.Universe) *MinHeap[Item] {
	limit := s.Limit
	if limit <= 0 {
		limit = DefaultGuessLimit
	}
	possibleWords := universe.Words()
	ret := NewMinHeapItem()
	for i, guess := range possibleWords {
		if i >= limit {
			break
		}
		heap.Push(ret, Item{Value: guess, Score: GuessScore(guess, possibleWords), Order: i})
	}
	return ret
}

func (s *MinRemainingStrategy) Guess(universe *motus.Universe) (string, error) {
	if universe.Len() == 1 {
		return universe.Words()[0], nil
	}
	sorted := s.SortedGuesses(universe)
	if sorted.Len() == 0 {
		return "", ErrNoCandidates
	}
	return heap.Pop(sorted).(Item).Value, nil
}

// Openings is a list of opening guesses consumed in order. Bots of one
// round share a single Openings so each opening is played once.
type Openings struct {
	words []string
	next  int
}

func NewOpenings(words []string) *Openings {
	return &Openings{words: words}
}

// Next returns the next unplayed opening of the given length. Openings of
// another length are passed over.
func (o *Openings) Next(length int) (string, bool) {
	for o.next < len(o.words) {
		opening := o.words[o.next]
		o.next++
		if len(opening) == length {
			return opening, true
		}
	}
	return "", false
}

// OpeningStrategy plays from Openings, then hands over to Then.
type OpeningStrategy struct {
	Openings *Openings
	Then     Strategy
}

func NewOpeningStrategy(openings *Openings, then Strategy) *OpeningStrategy {
	return &OpeningStrategy{Openings: openings, Then: then}
}

func (s *OpeningStrategy) Guess(universe *motus.Universe) (string, error) {
	if universe.Empty() {
		return "", ErrNoCandidates
	}
	if opening, ok := s.Openings.Next(len(universe.Words()[0])); ok {
		return opening, nil
	}
	return s.Then.Guess(universe)
}

// StrategyFactory checks a strategy name from the command line and returns a
// constructor for it.
func StrategyFactory(name string, rng *rand.Rand) (func() Strategy, error) {
	switch name {
	case "random":
		return func() Strategy { return NewRandomStrategy(rng) }, nil
	case "min", "min-remaining":
		return func() Strategy { return NewMinRemainingStrategy() }, nil
	}
	return nil, fmt.Errorf("unknown strategy %q, want random or min", name)
}

func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	newStrategy, err := StrategyFactory(name, rng)
	if err != nil {
		return nil, err
	}
	return newStrategy(), nil
}
