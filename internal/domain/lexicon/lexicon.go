// Package lexicon holds the bilingual word table used for lexical translation.
package lexicon

import (
	"fmt"
	"maps"
)

// Lexicon maps a lowercase a-z key to its replacement. An empty replacement
// elides the word. A Lexicon is immutable and safe for concurrent reads.
type Lexicon struct {
	entries map[string]string
}

// New copies entries into a Lexicon. Keys must be non-empty and contain only a-z.
func New(entries map[string]string) (*Lexicon, error) {
	for key := range entries {
		if !IsValidKey(key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return &Lexicon{entries: maps.Clone(entries)}, nil
}

// MustNew is New for literal tables in tests and defaults.
func MustNew(entries map[string]string) *Lexicon {
	l, err := New(entries)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup returns the replacement for key and whether key is present.
func (l *Lexicon) Lookup(key string) (string, bool) {
	if l == nil {
		return "", false
	}
	v, ok := l.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// IsValidKey reports whether key is non-empty lowercase ASCII letters.
func IsValidKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < 'a' || key[i] > 'z' {
			return false
		}
	}
	return true
}
