package dic

import (
	"fmt"
	"strings"
)

// FileHandlingError is raised while opening a dictionary file or deciding its type.
type FileHandlingError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileHandlingError) Error() string {
	msg := "dic: " + e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("dic: %s: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FileHandlingError) Unwrap() error { return e.Err }

// ParsingError locates a failure inside a dictionary file.
type ParsingError struct {
	Path string
	Line int // 0 when unknown
	Err  error
}

func (e *ParsingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dic: parsing %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("dic: parsing %s: %v", e.Path, e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }

// NonAlphaWordError reports a cleaned word still holding characters outside A-Z.
type NonAlphaWordError struct {
	Word         string
	Unauthorized []rune
}

func (e *NonAlphaWordError) Error() string {
	if len(e.Unauthorized) == 1 {
		return fmt.Sprintf("unauthorized character %q in word %s", e.Unauthorized[0], e.Word)
	}
	quoted := make([]string, len(e.Unauthorized))
	for i, r := range e.Unauthorized {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("unauthorized characters [%s] in word %s", strings.Join(quoted, " "), e.Word)
}

// ConfigFileError is a malformed line of a substitution file.
type ConfigFileError struct {
	Path string
	Line int
	Text string
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("dic: could not parse line %d of file %s: %q", e.Line, e.Path, e.Text)
}
