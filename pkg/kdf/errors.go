package kdf

import "errors"

// ErrInvalidIterations is returned when PassphraseKey is asked to run
// outside [PBKDF2IterationsMin, PBKDF2IterationsMax].
var ErrInvalidIterations = errors.New("kdf: iteration count out of range")
