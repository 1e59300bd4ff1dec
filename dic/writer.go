package dic

import (
	"bufio"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Write saves s to path. fileType may be empty to infer it from the extension.
func Write(s *Store, path, fileType string) (err error) {
	fileType, err = resolveFileType(path, fileType)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &FileHandlingError{Path: path, Reason: "creating dictionary", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileHandlingError{Path: path, Reason: "closing dictionary", Err: cerr}
		}
	}()
	if fileType == YAML {
		return WriteYAML(f, s)
	}
	return WriteText(f, s)
}

// WriteText writes one word per line, in Words order.
func WriteText(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	for _, word := range s.Words() {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteYAML writes the store keeping its current shape, see Store.Content.
func WriteYAML(w io.Writer, s *Store) error {
	content := s.Content()
	if content == nil {
		content = map[string][]string{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(content); err != nil {
		return err
	}
	return enc.Close()
}
