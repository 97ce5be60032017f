package lexicon

import "errors"

// ErrInvalidKey is returned for keys that are empty or contain anything but a-z.
var ErrInvalidKey = errors.New("lexicon key must be lowercase a-z")
