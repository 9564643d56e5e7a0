package ascon

import "crypto/subtle"

// SealDetached runs the full encrypt pipeline (Initialize, AbsorbAD,
// EncryptP, Finalize) and returns the ciphertext and tag separately,
// mirroring NIST SP 800-232 §4.4's seal(K, N, A, P) -> (C, T). len(C) ==
// len(P); len(T) == TagSize.
//
// key and nonce must each be exactly KeySize/NonceSize bytes; this is a
// precondition the caller is responsible for (see New/AEAD.Seal for the
// panicking, cipher.AEAD-shaped entry point).
func SealDetached(key, nonce, ad, plaintext []byte) (ciphertext []byte, tag [TagSize]byte) {
	s := initialize(key, nonce)
	absorbAD(s, ad)
	ciphertext = encryptP(s, plaintext)
	tag = finalize(s, key)
	return ciphertext, tag
}

// OpenDetached runs the full decrypt pipeline and verifies the tag in
// constant time, mirroring NIST SP 800-232 §4.4's open(K, N, A, C, T) ->
// P or AuthFailure. On a tag mismatch it returns ErrAuthFailure and a nil
// plaintext slice: no recovered plaintext is ever released to the caller on
// authentication failure, even though the phase operators themselves
// produced rate bytes along the way.
func OpenDetached(key, nonce, ad, ciphertext []byte, tag [TagSize]byte) ([]byte, error) {
	s := initialize(key, nonce)
	absorbAD(s, ad)
	plaintext := decryptC(s, ciphertext)
	computed := finalize(s, key)

	if subtle.ConstantTimeCompare(computed[:], tag[:]) != 1 {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

// AEAD adapts SealDetached/OpenDetached to the standard library's
// crypto/cipher.AEAD interface, the same conformance
// github.com/pedroalbanese/go-ascon provides for the older Ascon-128/128a
// so that code already written against crypto/cipher.AEAD can use
// Ascon-AEAD128 as a drop-in.
type AEAD struct {
	key [KeySize]byte
}

// New returns an AEAD bound to key, which must be exactly KeySize bytes.
func New(key []byte) (*AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	a := &AEAD{}
	copy(a.key[:], key)
	return a, nil
}

// NonceSize returns NonceSize, as required by crypto/cipher.AEAD.
func (a *AEAD) NonceSize() int { return NonceSize }

// Overhead returns TagSize, as required by crypto/cipher.AEAD.
func (a *AEAD) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst, returning the updated slice. Seal panics
// if len(nonce) != NonceSize, matching crypto/cipher.AEAD's documented
// contract and NIST SP 800-232 §7's MisuseError class.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(ErrInvalidNonceSize.Error())
	}

	ciphertext, tag := SealDetached(a.key[:], nonce, additionalData, plaintext)

	ret, out := sliceForAppend(dst, len(ciphertext)+TagSize)
	copy(out, ciphertext)
	copy(out[len(ciphertext):], tag[:])
	return ret
}

// Open decrypts and authenticates ciphertext, authenticates additionalData,
// and appends the recovered plaintext to dst, returning the updated slice.
// Open panics if len(nonce) != NonceSize; it returns ErrAuthFailure if the
// message has been tampered with.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(ErrInvalidNonceSize.Error())
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuthFailure
	}

	ct := ciphertext[:len(ciphertext)-TagSize]
	var tag [TagSize]byte
	copy(tag[:], ciphertext[len(ciphertext)-TagSize:])

	plaintext, err := OpenDetached(a.key[:], nonce, additionalData, ct, tag)
	if err != nil {
		return nil, err
	}

	ret, out := sliceForAppend(dst, len(plaintext))
	copy(out, plaintext)
	return ret, nil
}

// sliceForAppend extends in-place when dst has spare capacity, and
// allocates otherwise, the same helper crypto/cipher's own AEAD
// implementations (e.g. GCM) use to avoid an extra copy on the common path.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return head, tail
}
