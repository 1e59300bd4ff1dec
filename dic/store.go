// Package dic holds the word dictionary of the game and reads/writes it.
//
// A Store keeps its words in one of four shapes:
//
//	Empty                 no words
//	FlatList              words sharing one length and one first letter
//	ByInitial             first letter -> words, all of one length
//	ByLengthThenInitial   length -> first letter -> words
//
// Inserting a word the current shape cannot hold promotes the store to the
// next, more general shape. A store never goes back to a simpler shape.
package dic

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

type Shape int

const (
	Empty Shape = iota
	FlatList
	ByInitial
	ByLengthThenInitial
)

func (s Shape) String() string {
	switch s {
	case Empty:
		return "empty"
	case FlatList:
		return "list of words"
	case ByInitial:
		return "various-initials dict"
	case ByLengthThenInitial:
		return "various-lengths dict"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

var ErrNoWords = errors.New("no words")

// CorruptedStoreError means the store content breaks its shape invariant.
// This only happens when the content was built without going through Insert.
type CorruptedStoreError struct {
	Shape  Shape
	Word   string
	Reason string
}

func (e *CorruptedStoreError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("dic: internal state corrupted (%s): %s", e.Shape, e.Reason)
	}
	return fmt.Sprintf("dic: internal state corrupted (%s) adding %q: %s", e.Shape, e.Word, e.Reason)
}

// content is one of emptyContent, *flatList, *initialBuckets, *lengthBuckets.
type content interface {
	shape() Shape
	insert(word string) (content, error)
	lengths() []int
	initials(length int) []byte
	bucket(length int, initial byte) []string
	check() error
}

type emptyContent struct{}

func (emptyContent) shape() Shape { return Empty }

func (emptyContent) insert(word string) (content, error) {
	return &flatList{words: []string{word}}, nil
}

func (emptyContent) lengths() []int            { return nil }
func (emptyContent) initials(int) []byte       { return nil }
func (emptyContent) bucket(int, byte) []string { return nil }
func (emptyContent) check() error              { return nil }

// flatList is a single-initial bucket in disguise.
type flatList struct {
	words []string
}

func (f *flatList) shape() Shape { return FlatList }

func (f *flatList) insert(word string) (content, error) {
	if len(f.words) == 0 {
		return nil, &CorruptedStoreError{Shape: FlatList, Word: word, Reason: "list is empty"}
	}
	first := f.words[0]
	if len(word) != len(first) {
		return &lengthBuckets{byLength: map[int]*initialBuckets{
			len(first): {length: len(first), buckets: map[byte][]string{first[0]: f.words}},
			len(word):  newInitialBuckets(word),
		}}, nil
	}
	if word[0] == first[0] {
		f.words = append(f.words, word)
		return f, nil
	}
	return &initialBuckets{length: len(first), buckets: map[byte][]string{
		first[0]: f.words,
		word[0]:  {word},
	}}, nil
}

func (f *flatList) lengths() []int {
	if len(f.words) == 0 {
		return nil
	}
	return []int{len(f.words[0])}
}

func (f *flatList) initials(length int) []byte {
	if len(f.words) == 0 || len(f.words[0]) != length {
		return nil
	}
	return []byte{f.words[0][0]}
}

func (f *flatList) bucket(length int, initial byte) []string {
	if len(f.words) == 0 || len(f.words[0]) != length || f.words[0][0] != initial {
		return nil
	}
	return f.words
}

func (f *flatList) check() error {
	if len(f.words) == 0 {
		return &CorruptedStoreError{Shape: FlatList, Reason: "list is empty"}
	}
	first := f.words[0]
	for _, w := range f.words {
		if len(w) != len(first) || w[0] != first[0] {
			return &CorruptedStoreError{Shape: FlatList, Reason: fmt.Sprintf("%q does not share length and initial with %q", w, first)}
		}
	}
	return nil
}

type initialBuckets struct {
	length  int
	buckets map[byte][]string
}

func newInitialBuckets(word string) *initialBuckets {
	return &initialBuckets{length: len(word), buckets: map[byte][]string{word[0]: {word}}}
}

func (b *initialBuckets) shape() Shape { return ByInitial }

func (b *initialBuckets) insert(word string) (content, error) {
	if len(word) != b.length {
		return &lengthBuckets{byLength: map[int]*initialBuckets{
			b.length:  b,
			len(word): newInitialBuckets(word),
		}}, nil
	}
	if bucket := b.buckets[word[0]]; len(bucket) > 0 && bucket[0][0] != word[0] {
		return nil, &CorruptedStoreError{Shape: ByInitial, Word: word, Reason: fmt.Sprintf("bucket %c holds %q", word[0], bucket[0])}
	}
	b.buckets[word[0]] = append(b.buckets[word[0]], word)
	return b, nil
}

func (b *initialBuckets) lengths() []int {
	return []int{b.length}
}

func (b *initialBuckets) initials(length int) []byte {
	if length != b.length {
		return nil
	}
	ret := make([]byte, 0, len(b.buckets))
	for initial := range b.buckets {
		ret = append(ret, initial)
	}
	slices.Sort(ret)
	return ret
}

func (b *initialBuckets) bucket(length int, initial byte) []string {
	if length != b.length {
		return nil
	}
	return b.buckets[initial]
}

func (b *initialBuckets) check() error {
	if len(b.buckets) == 0 {
		return &CorruptedStoreError{Shape: ByInitial, Reason: "no initials"}
	}
	for initial, words := range b.buckets {
		if len(words) == 0 {
			return &CorruptedStoreError{Shape: ByInitial, Reason: fmt.Sprintf("initial %c has no words", initial)}
		}
		for _, w := range words {
			if len(w) != b.length || w[0] != initial {
				return &CorruptedStoreError{Shape: ByInitial, Reason: fmt.Sprintf("%q filed under length %d initial %c", w, b.length, initial)}
			}
		}
	}
	return nil
}

type lengthBuckets struct {
	byLength map[int]*initialBuckets
}

func (l *lengthBuckets) shape() Shape { return ByLengthThenInitial }

func (l *lengthBuckets) insert(word string) (content, error) {
	b, ok := l.byLength[len(word)]
	if !ok {
		l.byLength[len(word)] = newInitialBuckets(word)
		return l, nil
	}
	if b == nil || b.length != len(word) {
		return nil, &CorruptedStoreError{Shape: ByLengthThenInitial, Word: word, Reason: fmt.Sprintf("bucket for length %d is inconsistent", len(word))}
	}
	if _, err := b.insert(word); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *lengthBuckets) lengths() []int {
	ret := make([]int, 0, len(l.byLength))
	for length := range l.byLength {
		ret = append(ret, length)
	}
	slices.Sort(ret)
	return ret
}

func (l *lengthBuckets) initials(length int) []byte {
	if b, ok := l.byLength[length]; ok {
		return b.initials(length)
	}
	return nil
}

func (l *lengthBuckets) bucket(length int, initial byte) []string {
	if b, ok := l.byLength[length]; ok {
		return b.bucket(length, initial)
	}
	return nil
}

func (l *lengthBuckets) check() error {
	for length, b := range l.byLength {
		if b == nil || b.length != length {
			return &CorruptedStoreError{Shape: ByLengthThenInitial, Reason: fmt.Sprintf("bucket under length %d is inconsistent", length)}
		}
		if err := b.check(); err != nil {
			return err
		}
	}
	return nil
}

// Store is the word corpus. The zero value is an empty store ready to use.
//
// Shape and Words are computed lazily and cached until the next Insert.
type Store struct {
	content content

	shapeCached bool
	shape       Shape
	wordsCached bool
	words       []string
}

func New() *Store {
	return &Store{}
}

func (s *Store) current() content {
	if s.content == nil {
		s.content = emptyContent{}
	}
	return s.content
}

// Insert adds word, promoting the shape when needed. An empty word is
// ignored. Duplicates are kept; readers remove them before inserting.
func (s *Store) Insert(word string) error {
	if word == "" {
		return nil
	}
	s.shapeCached = false
	s.wordsCached = false
	next, err := s.current().insert(word)
	if err != nil {
		return err
	}
	s.content = next
	return nil
}

func (s *Store) Shape() Shape {
	if !s.shapeCached {
		s.shape = s.current().shape()
		s.shapeCached = true
	}
	return s.shape
}

// Words returns every word by ascending length, then initial, then insertion
// order. The returned slice is shared with the store's cache.
func (s *Store) Words() []string {
	if !s.wordsCached {
		c := s.current()
		words := []string{}
		for _, length := range c.lengths() {
			for _, initial := range c.initials(length) {
				words = append(words, c.bucket(length, initial)...)
			}
		}
		s.words = words
		s.wordsCached = true
	}
	return s.words
}

func (s *Store) Len() int {
	return len(s.Words())
}

func (s *Store) Contains(word string) bool {
	if word == "" {
		return false
	}
	return slices.Contains(s.current().bucket(len(word), word[0]), word)
}

// Lengths returns the word lengths present, ascending.
func (s *Store) Lengths() []int {
	return s.current().lengths()
}

// Initials returns the first letters present for words of length, ascending.
func (s *Store) Initials(length int) []byte {
	return s.current().initials(length)
}

// WithLength returns a copy of the words of the given length, in Words order.
func (s *Store) WithLength(length int) []string {
	c := s.current()
	ret := []string{}
	for _, initial := range c.initials(length) {
		ret = append(ret, c.bucket(length, initial)...)
	}
	return ret
}

// RandomWord picks a random initial among words of length, then a random
// word starting with it.
func (s *Store) RandomWord(rng *rand.Rand, length int) (string, error) {
	c := s.current()
	initials := c.initials(length)
	if len(initials) == 0 {
		return "", fmt.Errorf("%w of length %d", ErrNoWords, length)
	}
	bucket := c.bucket(length, initials[rng.IntN(len(initials))])
	return bucket[rng.IntN(len(bucket))], nil
}

// Check verifies the shape invariants of the whole content.
func (s *Store) Check() error {
	return s.current().check()
}

// Content returns the words laid out as the current shape: nil, []string,
// map[string][]string or map[int]map[string][]string. Writers use it to
// keep the shape in structured files.
func (s *Store) Content() any {
	switch c := s.current().(type) {
	case *flatList:
		return slices.Clone(c.words)
	case *initialBuckets:
		return c.asMap()
	case *lengthBuckets:
		ret := make(map[int]map[string][]string, len(c.byLength))
		for length, b := range c.byLength {
			ret[length] = b.asMap()
		}
		return ret
	}
	return nil
}

func (b *initialBuckets) asMap() map[string][]string {
	ret := make(map[string][]string, len(b.buckets))
	for initial, words := range b.buckets {
		ret[string(initial)] = slices.Clone(words)
	}
	return ret
}
