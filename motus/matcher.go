package motus

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog/log"
)

// Matches checks if word could be the solution given that guess produced hint.
func Matches(word, guess string, hint Hint) bool {
	_, h := Evaluate(word, guess)
	return h == hint
}

// Narrow returns, in order, the words of universe that would have produced
// hint for guess. The input is not modified. An empty result means the hints
// seen so far contradict each other.
func Narrow(universe []string, guess string, hint Hint) []string {
	ret := make([]string, 0, len(universe))
	for _, word := range universe {
		if Matches(word, guess, hint) {
			ret = append(ret, word)
		}
	}
	return ret
}

// Universe is a candidate set shared by reference between the bot players of
// a round. There is a bit for each word of the base list; a set bit means the
// word is still possible.
//
// A Universe is not safe for concurrent use. Players probing different
// hypotheses in parallel should each get their own NewUniverse.
type Universe struct {
	words []string
	live  *bitset.BitSet
}

func NewUniverse(words []string) *Universe {
	length := uint(len(words))
	live := bitset.New(length)
	for i := uint(0); i < length; i++ {
		live.Set(i)
	}
	return &Universe{words: words, live: live}
}

func (u *Universe) Len() int {
	return int(u.live.Count())
}

func (u *Universe) Empty() bool {
	return u.Len() == 0
}

// Range iterates over the live words in base order.
func (u *Universe) Range(yield func(i int, word string) bool) {
	i := 0
	for index, ok := u.live.NextSet(0); ok; index, ok = u.live.NextSet(index + 1) {
		if !yield(i, u.words[index]) {
			return
		}
		i++
	}
}

func (u *Universe) Words() []string {
	ret := make([]string, 0, u.Len())
	for _, word := range u.Range {
		ret = append(ret, word)
	}
	return ret
}

func (u *Universe) Contains(word string) bool {
	for _, w := range u.Range {
		if w == word {
			return true
		}
	}
	return false
}

// Narrow drops the words that do not match guess/hint and returns how many
// remain. The live set is rebuilt and swapped in whole, the previous one is
// never edited.
func (u *Universe) Narrow(guess string, hint Hint) int {
	before := u.Len()
	next := bitset.New(uint(len(u.words)))
	for index, ok := u.live.NextSet(0); ok; index, ok = u.live.NextSet(index + 1) {
		if Matches(u.words[index], guess, hint) {
			next.Set(index)
		}
	}
	u.live = next
	after := u.Len()
	log.Debug().Str("guess", guess).Str("hint", string(hint)).Int("before", before).Int("after", after).Msg("universe narrowed")
	return after
}
