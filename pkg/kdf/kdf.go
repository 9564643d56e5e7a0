// Package kdf derives Ascon-AEAD128 keys and nonces from higher-entropy
// secrets or low-entropy passphrases, using the same HKDF/PBKDF2
// constructions github.com/backkem/matter's pkg/crypto uses to derive its
// own session keys, sized instead for ascon.KeySize/ascon.NonceSize.
// NIST SP 800-232 itself treats K and N as given inputs to Initialize and
// says nothing about how a caller should produce them; this package fills
// that gap.
package kdf

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/backkem/ascon/pkg/ascon"
)

// PBKDF2 iteration bounds, matching the order of magnitude of NIST SP
// 800-132's guidance the teacher's own PBKDF2IterationsMin/Max constants
// cite.
const (
	// PBKDF2IterationsMin is the lowest iteration count PassphraseKey will
	// accept.
	PBKDF2IterationsMin = 1000
	// PBKDF2IterationsMax is the highest iteration count PassphraseKey will
	// accept.
	PBKDF2IterationsMax = 600000
)

// DeriveKeyNonce runs HKDF-SHA256 (RFC 5869) once over secret with an empty
// salt, then expands it twice under distinct info suffixes to produce an
// independent key and nonce pair. Reusing one Extract for both Expand calls
// avoids hashing secret twice while still keeping key and nonce
// cryptographically separate, since each Expand call is seeded with a
// different info string.
func DeriveKeyNonce(secret, info []byte) (key [ascon.KeySize]byte, nonce [ascon.NonceSize]byte, err error) {
	prk := hkdf.Extract(sha256.New, secret, nil)

	keyInfo := append(append([]byte{}, info...), "ascon-key"...)
	nonceInfo := append(append([]byte{}, info...), "ascon-nonce"...)

	if err = expandInto(prk, keyInfo, key[:]); err != nil {
		return key, nonce, err
	}
	if err = expandInto(prk, nonceInfo, nonce[:]); err != nil {
		return key, nonce, err
	}
	return key, nonce, nil
}

func expandInto(prk, info, dst []byte) error {
	reader := hkdf.Expand(sha256.New, prk, info)
	_, err := io.ReadFull(reader, dst)
	return err
}

// PassphraseKey runs PBKDF2-HMAC-SHA256 over passphrase/salt for the given
// iteration count and returns an ascon.KeySize-byte key. iterations must be
// within [PBKDF2IterationsMin, PBKDF2IterationsMax].
func PassphraseKey(passphrase, salt []byte, iterations int) ([ascon.KeySize]byte, error) {
	var key [ascon.KeySize]byte
	if iterations < PBKDF2IterationsMin || iterations > PBKDF2IterationsMax {
		return key, ErrInvalidIterations
	}
	copy(key[:], pbkdf2.Key(passphrase, salt, iterations, ascon.KeySize, sha256.New))
	return key, nil
}
