package dic

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	TextPlain = "text/plain"
	YAML      = "application/x-yaml"
)

//go:embed wordlist_fr.yml
var defaultDic []byte

// DefaultName is the name under which the embedded dictionary is reported.
const DefaultName = "wordlist_fr.yml"

// Default returns the dictionary shipped with the game.
func Default() (*Store, error) {
	return NewReader().ReadFrom(bytes.NewReader(defaultDic), DefaultName, YAML)
}

// InferFileType guesses the file type from the extension, "" when unknown.
func InferFileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".lst":
		return TextPlain
	case ".yml", ".yaml":
		return YAML
	}
	return ""
}

// resolveFileType reconciles an explicit file type with the one inferred from path.
func resolveFileType(path, fileType string) (string, error) {
	inferred := InferFileType(path)
	if fileType == "" && inferred == "" {
		return "", &FileHandlingError{Path: path, Reason: "could not infer a file type"}
	}
	if fileType != "" && inferred != "" && fileType != inferred {
		return "", &FileHandlingError{Path: path, Reason: fmt.Sprintf("incompatible filetypes: %s, %s", fileType, inferred)}
	}
	if fileType == "" {
		fileType = inferred
	}
	if fileType != TextPlain && fileType != YAML {
		return "", &FileHandlingError{Path: path, Reason: "unknown filetype: " + fileType}
	}
	return fileType, nil
}

// Reader loads a Store from a plain word list or a structured YAML file.
type Reader struct {
	Cleaner
	// Lenient readers log and skip words that do not clean to A-Z instead of failing.
	Lenient bool
}

func NewReader() *Reader {
	return &Reader{}
}

// Read opens path and parses it. fileType may be empty to infer it from the extension.
func (r *Reader) Read(path, fileType string) (*Store, error) {
	fileType, err := resolveFileType(path, fileType)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileHandlingError{Path: path, Reason: "opening dictionary", Err: err}
	}
	defer f.Close()
	return r.ReadFrom(f, path, fileType)
}

// ReadFrom parses in as fileType; name is only used in errors and logs.
func (r *Reader) ReadFrom(in io.Reader, name, fileType string) (*Store, error) {
	var s *Store
	var err error
	switch fileType {
	case TextPlain:
		s, err = r.parseText(in, name)
	case YAML:
		s, err = r.parseYAML(in, name)
	default:
		return nil, &FileHandlingError{Path: name, Reason: "unknown filetype: " + fileType}
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dic", name).Str("shape", s.Shape().String()).Int("words", s.Len()).Msg("dictionary loaded")
	return s, nil
}

// wordAdder de-duplicates words before inserting them in the store.
type wordAdder struct {
	reader *Reader
	name   string
	store  *Store
	seen   mapset.Set
}

func (r *Reader) newAdder(name string) *wordAdder {
	return &wordAdder{reader: r, name: name, store: New(), seen: mapset.NewThreadUnsafeSet()}
}

// clean returns "" for blank lines and for skipped words in lenient mode.
func (a *wordAdder) clean(raw string, line int) (string, error) {
	word, err := a.reader.Clean(raw)
	if err == nil {
		return word, nil
	}
	var nonAlpha *NonAlphaWordError
	if a.reader.Lenient && errors.As(err, &nonAlpha) {
		log.Warn().Str("dic", a.name).Int("line", line).Str("word", nonAlpha.Word).Msg("word not composed of A-Z letters: ignored")
		return "", nil
	}
	return "", &ParsingError{Path: a.name, Line: line, Err: err}
}

func (a *wordAdder) add(word string) error {
	if word == "" || !a.seen.Add(word) {
		return nil
	}
	if err := a.store.Insert(word); err != nil {
		return &ParsingError{Path: a.name, Err: err}
	}
	return nil
}

func (r *Reader) parseText(in io.Reader, name string) (*Store, error) {
	a := r.newAdder(name)
	sc := bufio.NewScanner(in)
	line := 0
	for sc.Scan() {
		line++
		word, err := a.clean(sc.Text(), line)
		if err != nil {
			return nil, err
		}
		if err := a.add(word); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &FileHandlingError{Path: name, Reason: "reading dictionary", Err: err}
	}
	return a.store, nil
}

// parseYAML accepts the three layouts written by WriteYAML:
//
//	- WORD                  list of words
//	A: [WORD, ...]          initial -> words
//	5: {A: [WORD, ...]}     length -> initial -> words
func (r *Reader) parseYAML(in io.Reader, name string) (*Store, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, &ParsingError{Path: name, Err: err}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	a := r.newAdder(name)
	var err error
	switch root.Kind {
	case yaml.SequenceNode:
		err = a.addSequence(root, 0, 0)
	case yaml.MappingNode:
		if len(root.Content) > 0 && root.Content[0].ShortTag() == "!!int" {
			err = a.addLengths(root)
		} else {
			err = a.addInitials(root, 0)
		}
	case yaml.ScalarNode:
		if root.ShortTag() != "!!null" {
			err = &ParsingError{Path: name, Line: root.Line, Err: fmt.Errorf("unexpected scalar %q", root.Value)}
		}
	default:
		err = &ParsingError{Path: name, Line: root.Line, Err: errors.New("unexpected document layout")}
	}
	if err != nil {
		return nil, err
	}
	return a.store, nil
}

func (a *wordAdder) addLengths(node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		length, err := strconv.Atoi(key.Value)
		if err != nil || length < 1 {
			return &ParsingError{Path: a.name, Line: key.Line, Err: fmt.Errorf("bad word length %q", key.Value)}
		}
		if value.Kind != yaml.MappingNode {
			return &ParsingError{Path: a.name, Line: value.Line, Err: fmt.Errorf("length %d: expected a mapping of initials", length)}
		}
		if err := a.addInitials(value, length); err != nil {
			return err
		}
	}
	return nil
}

// addInitials reads initial -> words; length 0 means any single length.
func (a *wordAdder) addInitials(node *yaml.Node, length int) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		initial := strings.ToUpper(strings.TrimSpace(key.Value))
		if len(initial) != 1 || initial[0] < 'A' || initial[0] > 'Z' {
			return &ParsingError{Path: a.name, Line: key.Line, Err: fmt.Errorf("bad initial %q", key.Value)}
		}
		if value.Kind != yaml.SequenceNode {
			return &ParsingError{Path: a.name, Line: value.Line, Err: fmt.Errorf("initial %s: expected a list of words", initial)}
		}
		if err := a.addSequence(value, length, initial[0]); err != nil {
			return err
		}
	}
	return nil
}

// addSequence inserts a list of words, checking they belong under length and
// initial when those are non zero.
func (a *wordAdder) addSequence(node *yaml.Node, length int, initial byte) error {
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return &ParsingError{Path: a.name, Line: item.Line, Err: errors.New("expected a word")}
		}
		word, err := a.clean(item.Value, item.Line)
		if err != nil {
			return err
		}
		if word == "" {
			continue
		}
		if (length != 0 && len(word) != length) || (initial != 0 && word[0] != initial) {
			shape := ByInitial
			if length != 0 {
				shape = ByLengthThenInitial
			}
			return &ParsingError{Path: a.name, Line: item.Line, Err: &CorruptedStoreError{
				Shape:  shape,
				Word:   word,
				Reason: fmt.Sprintf("filed under %s", bucketName(length, initial)),
			}}
		}
		if err := a.add(word); err != nil {
			return err
		}
	}
	return nil
}

func bucketName(length int, initial byte) string {
	parts := []string{}
	if length != 0 {
		parts = append(parts, fmt.Sprintf("length %d", length))
	}
	if initial != 0 {
		parts = append(parts, fmt.Sprintf("initial %c", initial))
	}
	return strings.Join(parts, " ")
}
