package friends

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a directory file.
type document struct {
	Friends []Record `yaml:"friends"`
}

// LoadDirectory decodes a directory document from r. JSON input is accepted
// as well since it is valid YAML. Unknown fields are rejected.
func LoadDirectory(r io.Reader) (*Directory, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewDirectory(nil), nil
		}
		return nil, fmt.Errorf("failed to decode friends directory: %w", err)
	}

	for i, rec := range doc.Friends {
		if rec.Name == "" {
			return nil, fmt.Errorf("friend #%d has no name", i)
		}
		if rec.Gender == 0 {
			return nil, fmt.Errorf("friend %q: %w: missing", rec.Name, ErrInvalidGender)
		}
	}
	return NewDirectory(doc.Friends), nil
}

// WriteDirectory encodes the records of dir in insertion order.
func WriteDirectory(w io.Writer, dir *Directory) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document{Friends: dir.Records()}); err != nil {
		return fmt.Errorf("failed to encode friends directory: %w", err)
	}
	return encoder.Close()
}
