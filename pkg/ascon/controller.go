package ascon

import (
	"crypto/subtle"
	"fmt"

	"github.com/pion/logging"
)

// Mode selects whether a Controller performs encryption or decryption.
// It is latched for the lifetime of one operation (NIST SP 800-232 §6).
type Mode int

const (
	// ModeEncrypt drives the controller through seal().
	ModeEncrypt Mode = iota
	// ModeDecrypt drives the controller through open().
	ModeDecrypt
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "Encrypt"
	case ModeDecrypt:
		return "Decrypt"
	default:
		return "Unknown"
	}
}

// phase names the controller's state machine states (NIST SP 800-232 §4.4).
type phase int

const (
	phaseLoadKey phase = iota
	phaseLoadNonce
	phaseAbsorbAD
	phaseProcessMsg
	phaseEmitOrVerifyTag
	phaseIdle
)

func (p phase) String() string {
	switch p {
	case phaseLoadKey:
		return "LOAD_KEY"
	case phaseLoadNonce:
		return "LOAD_NONCE"
	case phaseAbsorbAD:
		return "ABSORB_AD"
	case phaseProcessMsg:
		return "PROCESS_MSG"
	case phaseEmitOrVerifyTag:
		return "EMIT_OR_VERIFY_TAG"
	case phaseIdle:
		return "IDLE"
	default:
		return "UNKNOWN"
	}
}

// Controller is a streaming, word-oriented AEAD state machine that mirrors
// the hardware interface of NIST SP 800-232 §6: callers push key, nonce and
// tag as words of at most Config.BusWidth bits through LoadKey/LoadNonce/
// WriteTag, and AD and message bytes in chunks of any length through
// WriteAD/WriteMessage, instead of handing over whole buffers. The
// controller buffers partial rate blocks internally, permuting only when a
// non-final block completes. Neither Config.Unroll nor Config.BusWidth
// changes a single output byte (NIST SP 800-232 §4.1); Config.Unroll is
// validated and logged but does not change how the permutation runs.
//
// Calling the methods out of the documented phase order is a MisuseError
// (NIST SP 800-232 §7): it panics rather than returning an error, since it
// indicates a programming mistake, not a runtime condition.
type Controller struct {
	cfg  Config
	mode Mode
	log  logging.LeveledLogger

	phase phase

	key       [KeySize]byte
	keyFilled int

	nonce       [NonceSize]byte
	nonceFilled int

	s *state

	adPending []byte

	msgPending []byte

	computedTag [TagSize]byte

	wireTag       [TagSize]byte
	wireTagFilled int

	authValid bool
	auth      bool
	done      bool
}

// NewController creates a Controller for the given configuration and mode.
// If loggerFactory is nil, a default factory is used (the same fallback
// the teacher's transport layer effectively relies on via
// logging.NewDefaultLoggerFactory).
func NewController(cfg Config, mode Mode, loggerFactory logging.LoggerFactory) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	c := &Controller{
		cfg:   cfg,
		mode:  mode,
		log:   loggerFactory.NewLogger("ascon-controller"),
		phase: phaseLoadKey,
	}
	c.log.Tracef("entering %s (mode=%v, unroll=%d, bus=%d, transfers/block=%d)",
		c.phase, mode, cfg.Unroll, cfg.BusWidth, cfg.transfersPerBlock())
	return c, nil
}

// LoadKey feeds one bus word of the 128-bit key preamble. word must be no
// wider than Config.BusWidth bits. Once KeySize bytes have been loaded, the
// controller advances to LOAD_NONCE.
func (c *Controller) LoadKey(word []byte) {
	c.mustBePhase(phaseLoadKey)
	c.checkWordWidth(word)
	c.keyFilled = c.fillFixed(c.key[:], c.keyFilled, word)
	if c.keyFilled == KeySize {
		c.transition(phaseLoadNonce)
	}
}

// LoadNonce feeds one bus word of the 128-bit nonce. word must be no wider
// than Config.BusWidth bits. Once NonceSize bytes have been loaded, the
// controller runs Initialize (INIT_PERMUTE) and advances to ABSORB_AD.
func (c *Controller) LoadNonce(word []byte) {
	c.mustBePhase(phaseLoadNonce)
	c.checkWordWidth(word)
	c.nonceFilled = c.fillFixed(c.nonce[:], c.nonceFilled, word)
	if c.nonceFilled == NonceSize {
		c.log.Tracef("INIT_PERMUTE")
		c.s = initialize(c.key[:], c.nonce[:])
		c.transition(phaseAbsorbAD)
	}
}

// WriteAD feeds associated-data bytes. endOfType must be set on the word
// that completes the AD stream, even when the AD is empty (NIST SP 800-232
// §4.4: ABSORB_AD is entered even when A is empty). Once the final AD block
// and the domain-separation XOR have both run, the controller advances to
// PROCESS_MSG.
func (c *Controller) WriteAD(data []byte, endOfType bool) {
	c.mustBePhase(phaseAbsorbAD)

	buf := append(c.adPending, data...)
	for len(buf) >= 16 {
		block := buf[:16]
		buf = buf[16:]
		c.s.s0 ^= loadLE64(block[0:8])
		c.s.s1 ^= loadLE64(block[8:16])
		c.s.permute(roundsB)
	}

	if !endOfType {
		c.adPending = buf
		return
	}

	n := len(buf)
	var padBuf [RateSize]byte
	copy(padBuf[:], buf)
	padded := pad(padBuf[:], n)
	c.s.s0 ^= loadLE64(padded[0:8])
	c.s.s1 ^= loadLE64(padded[8:16])
	c.s.permute(roundsB)

	c.log.Tracef("DOMAIN_SEP")
	c.s.s4 ^= 1 << 63

	c.adPending = nil
	c.transition(phaseProcessMsg)
}

// WriteMessage feeds plaintext (encrypt mode) or ciphertext (decrypt mode)
// bytes and returns the corresponding output chunk produced from this
// call's data. endOfType must be set on the word that completes the
// message stream, even when the message is empty. Once the final message
// block has been processed, the controller runs Finalize (FINAL_PERMUTE)
// and advances to EMIT_OR_VERIFY_TAG.
//
// In decrypt mode, bytes returned here are not yet authenticated: per
// NIST SP 800-232 §4.4, callers must buffer them until WriteTag reports
// auth=1.
func (c *Controller) WriteMessage(data []byte, endOfType bool) []byte {
	c.mustBePhase(phaseProcessMsg)

	var out []byte
	buf := append(c.msgPending, data...)
	for len(buf) >= 16 {
		block := buf[:16]
		buf = buf[16:]
		out = append(out, c.processBlock(block)...)
		c.s.permute(roundsB)
	}

	if !endOfType {
		c.msgPending = buf
		return out
	}

	out = append(out, c.processFinalBlock(buf)...)
	c.msgPending = nil

	c.log.Tracef("FINAL_PERMUTE")
	c.computedTag = finalize(c.s, c.key[:])
	c.transition(phaseEmitOrVerifyTag)

	return out
}

// processBlock runs one full (non-final) message block through the rate,
// in the direction selected by c.mode, without permuting (the caller
// permutes once the block's output has been captured).
func (c *Controller) processBlock(block []byte) []byte {
	out := make([]byte, 16)
	if c.mode == ModeEncrypt {
		c.s.s0 ^= loadLE64(block[0:8])
		c.s.s1 ^= loadLE64(block[8:16])
		rb := c.s.rateBytes()
		copy(out, rb[:])
		return out
	}

	rb := c.s.rateBytes()
	for j := 0; j < 16; j++ {
		out[j] = block[j] ^ rb[j]
	}
	c.s.s0 = loadLE64(block[0:8])
	c.s.s1 = loadLE64(block[8:16])
	return out
}

// processFinalBlock runs the always-present final message block (0..15
// bytes) through the rate, without a trailing permutation.
func (c *Controller) processFinalBlock(remainder []byte) []byte {
	n := len(remainder)

	if c.mode == ModeEncrypt {
		var buf [RateSize]byte
		copy(buf[:], remainder)
		padded := pad(buf[:], n)
		c.s.s0 ^= loadLE64(padded[0:8])
		c.s.s1 ^= loadLE64(padded[8:16])
		rb := c.s.rateBytes()
		return append([]byte(nil), rb[:n]...)
	}

	rb := c.s.rateBytes()
	out := make([]byte, n)
	for j := 0; j < n; j++ {
		out[j] = remainder[j] ^ rb[j]
	}
	var ctBuf [RateSize]byte
	copy(ctBuf[:n], remainder)
	updated := pad2(ctBuf[:n], rb[:], n)
	c.s.s0 = loadLE64(updated[0:8])
	c.s.s1 = loadLE64(updated[8:16])
	return out
}

// WriteTag feeds the wire tag (decrypt mode only). Once TagSize bytes have
// been supplied with endOfType set, auth_valid fires: AuthValid returns
// true and Auth reports whether verification succeeded. The comparison is
// constant-time (NIST SP 800-232 §4.4).
func (c *Controller) WriteTag(word []byte, endOfType bool) {
	c.mustBePhase(phaseEmitOrVerifyTag)
	if c.mode != ModeDecrypt {
		panic("ascon: WriteTag is only valid in ModeDecrypt")
	}

	c.checkWordWidth(word)
	c.wireTagFilled = c.fillFixed(c.wireTag[:], c.wireTagFilled, word)
	if !endOfType {
		return
	}
	if c.wireTagFilled != TagSize {
		panic(ErrInvalidTagSize.Error())
	}

	c.authValid = true
	c.auth = subtle.ConstantTimeCompare(c.computedTag[:], c.wireTag[:]) == 1
	c.transition(phaseIdle)
	c.done = true
}

// Tag returns the computed tag (encrypt mode only), once WriteMessage's
// final call has run Finalize. Encrypt mode has no WriteTag step, so this
// is what drives the EMIT_OR_VERIFY_TAG -> IDLE transition on that side.
func (c *Controller) Tag() [TagSize]byte {
	if c.mode != ModeEncrypt {
		panic("ascon: Tag is only valid in ModeEncrypt")
	}
	c.mustBePhase(phaseEmitOrVerifyTag)
	c.transition(phaseIdle)
	c.done = true
	return c.computedTag
}

// AuthValid reports whether tag verification has completed (decrypt mode).
func (c *Controller) AuthValid() bool { return c.authValid }

// Auth reports the verification verdict once AuthValid is true: true iff
// the supplied tag matched.
func (c *Controller) Auth() bool { return c.auth }

// Done reports whether the operation has reached IDLE.
func (c *Controller) Done() bool { return c.done }

// checkWordWidth panics if word is wider than the configured bus width: the
// preamble streams (key, nonce, wire tag) are defined in terms of
// Config.BusWidth-sized transfers (NIST SP 800-232 §4.5), so a wider word
// would mean the caller isn't honoring the configuration it created the
// Controller with.
func (c *Controller) checkWordWidth(word []byte) {
	if max := c.cfg.wordBytes(); len(word) > max {
		panic(fmt.Sprintf("ascon: word of %d bytes exceeds configured bus width of %d bytes", len(word), max))
	}
}

// fillFixed copies word into dst starting at offset filled, panicking if
// word would overrun dst (a marker-discipline MisuseError), and returns the
// new fill count.
func (c *Controller) fillFixed(dst []byte, filled int, word []byte) int {
	if filled+len(word) > len(dst) {
		panic(fmt.Sprintf("ascon: preamble overrun: %d bytes already loaded, %d more would exceed %d", filled, len(word), len(dst)))
	}
	copy(dst[filled:], word)
	return filled + len(word)
}

// mustBePhase panics if the controller is not in phase want: calling
// methods out of sequence is a programming error (NIST SP 800-232 §7), not
// a recoverable condition.
func (c *Controller) mustBePhase(want phase) {
	if c.phase != want {
		panic(fmt.Sprintf("ascon: controller misuse: expected phase %s, got %s", want, c.phase))
	}
}

// transition logs and moves the controller to the next phase.
func (c *Controller) transition(next phase) {
	c.log.Tracef("%s -> %s", c.phase, next)
	c.phase = next
}
