package dic

import (
	"bufio"
	"io"
	"os"
	"strings"
)

type substitution struct {
	from, to string
}

// Cleaner turns raw dictionary lines into engine words: trimmed, upper case,
// substitutions applied in the order they were added, A-Z only.
type Cleaner struct {
	substitutions []substitution
}

func (c *Cleaner) AddSubstitution(from, to string) {
	c.substitutions = append(c.substitutions, substitution{strings.ToUpper(from), strings.ToUpper(to)})
}

// ReadSubstitutions loads "OLD NEW" pairs, one per line. Blank lines and
// lines starting with # are skipped.
func (c *Cleaner) ReadSubstitutions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileHandlingError{Path: path, Reason: "opening substitution file", Err: err}
	}
	defer f.Close()
	return c.readSubstitutions(path, f)
}

func (c *Cleaner) readSubstitutions(path string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		parts := strings.Split(text, " ")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return &ConfigFileError{Path: path, Line: line, Text: text}
		}
		c.AddSubstitution(parts[0], parts[1])
	}
	if err := sc.Err(); err != nil {
		return &FileHandlingError{Path: path, Reason: "reading substitution file", Err: err}
	}
	return nil
}

// Clean returns "" for a blank line.
func (c *Cleaner) Clean(line string) (string, error) {
	word := strings.ToUpper(strings.TrimSpace(line))
	for _, s := range c.substitutions {
		word = strings.ReplaceAll(word, s.from, s.to)
	}
	if word == "" {
		return "", nil
	}
	var unauthorized []rune
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			unauthorized = append(unauthorized, r)
		}
	}
	if len(unauthorized) > 0 {
		return "", &NonAlphaWordError{Word: word, Unauthorized: unauthorized}
	}
	return word, nil
}
