// Package lexicon loads word tables from YAML files.
package lexicon

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domain "blogsummarizer/internal/domain/lexicon"
)

//go:embed data/en_ur.yaml
var defaultData []byte

type document struct {
	Source  string            `yaml:"source"`
	Target  string            `yaml:"target"`
	Entries map[string]string `yaml:"entries"`
}

// Load reads the lexicon at path, or the bundled English to Urdu table when
// path is empty.
func Load(path string) (*domain.Lexicon, error) {
	if path == "" {
		return Parse(defaultData)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Parse decodes a lexicon document. Unknown fields and repeated keys are
// rejected so that a typo cannot silently shadow an entry.
func Parse(data []byte) (*domain.Lexicon, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("lexicon has no entries")
	}
	return domain.New(doc.Entries)
}
