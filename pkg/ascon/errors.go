package ascon

import "errors"

// Package errors. ErrAuthFailure is the only runtime outcome Open ever
// returns; everything else below is a programming error. ErrInvalidKeySize
// and ErrInvalidConfig are returned from constructors so callers can
// validate inputs without a recover(); ErrInvalidNonceSize and
// ErrInvalidTagSize supply the panic messages for nonce- and tag-length
// misuse, matching the teacher's split between a returned
// ErrDecryptionFailed/ErrInvalidKey in pkg/session/errors.go and the
// genuine panics NIST SP 800-232 §7 reserves for misuse.
var (
	// ErrAuthFailure is returned by Open and OpenDetached when the computed
	// tag does not match the supplied tag. No plaintext is released
	// alongside this error. The streaming controller does not return it; it
	// reports the verdict through Controller.Auth.
	ErrAuthFailure = errors.New("ascon: message authentication failed")

	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("ascon: invalid key size, must be 16 bytes")

	// ErrInvalidNonceSize's message is the panic value AEAD.Seal/AEAD.Open
	// use when the caller supplies a nonce that is not exactly NonceSize bytes.
	ErrInvalidNonceSize = errors.New("ascon: invalid nonce size, must be 16 bytes")

	// ErrInvalidTagSize's message is the panic value Controller.WriteTag uses when
	// endOfType arrives before a full TagSize-byte tag has been fed in.
	ErrInvalidTagSize = errors.New("ascon: invalid tag size, must be 16 bytes")

	// ErrInvalidConfig is returned when a Config names an undefined Unroll
	// or BusWidth value.
	ErrInvalidConfig = errors.New("ascon: invalid configuration")
)
