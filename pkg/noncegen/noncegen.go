// Package noncegen generates unique 128-bit nonces for Ascon-AEAD128,
// combining a random per-Generator salt with a monotonic counter the same way
// github.com/backkem/matter's pkg/message.MessageCounter seeds its 32-bit
// counter from crypto/rand and increments it under a mutex. NIST SP 800-232
// takes N as given and is silent on how a caller should avoid reusing it;
// this package only helps a caller avoid reuse in the first place, it does
// not detect it after the fact.
package noncegen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/backkem/ascon/pkg/ascon"
)

// Generator produces ascon.NonceSize-byte nonces of the form
// salt(8 bytes) || counter(8 bytes, big-endian), where salt is drawn once
// from crypto/rand at construction and counter starts at zero and
// increments on every call to Next. As long as a Generator's salt is not
// reused across keys and Next is not called more than 2^64 times against
// one Generator, every nonce it returns is unique.
type Generator struct {
	mu        sync.Mutex
	salt      [8]byte
	counter   uint64
	exhausted bool
}

// NewGenerator returns a Generator seeded with an 8-byte random salt drawn
// from crypto/rand.
func NewGenerator() (*Generator, error) {
	g := &Generator{}
	if _, err := rand.Read(g.salt[:]); err != nil {
		return nil, fmt.Errorf("noncegen: seed salt: %w", err)
	}
	return g, nil
}

// Next returns the next nonce in sequence. It panics if the counter has
// wrapped (exhausted after 2^64 calls), the same class of programming error
// NIST SP 800-232 §7 treats as a MisuseError rather than a returned error.
func (g *Generator) Next() [ascon.NonceSize]byte {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.exhausted {
		panic("noncegen: counter exhausted, generator must not be reused")
	}

	var nonce [ascon.NonceSize]byte
	copy(nonce[:8], g.salt[:])
	binary.BigEndian.PutUint64(nonce[8:], g.counter)

	if g.counter == ^uint64(0) {
		g.exhausted = true
	} else {
		g.counter++
	}

	return nonce
}

// Current returns the counter value Next will use on its next call, without
// advancing it. Useful for logging/diagnostics, mirroring
// MessageCounter.Value in the teacher's pkg/message/counter.go.
func (g *Generator) Current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}
