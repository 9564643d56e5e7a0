package ascon

import "encoding/binary"

// loadLE64 reads an 8-byte little-endian lane. b must have at least 8 bytes.
func loadLE64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// storeLE64 writes x into b as an 8-byte little-endian lane. b must have at
// least 8 bytes.
func storeLE64(b []byte, x uint64) {
	binary.LittleEndian.PutUint64(b, x)
}

// rateBytes serializes the 128-bit rate (S0||S1) to its little-endian byte
// form (NIST SP 800-232 §3, "Rate block").
func (s *state) rateBytes() [RateSize]byte {
	var out [RateSize]byte
	storeLE64(out[0:8], s.s0)
	storeLE64(out[8:16], s.s1)
	return out
}

// initialize implements Initialize(K, N): load the IV/key/nonce lanes,
// permute for roundsA rounds, then XOR the key back into S3/S4 (NIST SP
// 800-232 §4.3).
func initialize(key, nonce []byte) *state {
	kh := loadLE64(key[0:8])
	kl := loadLE64(key[8:16])
	nh := loadLE64(nonce[0:8])
	nl := loadLE64(nonce[8:16])

	s := &state{s0: iv, s1: kh, s2: kl, s3: nh, s4: nl}
	s.permute(roundsA)
	s.s3 ^= kh
	s.s4 ^= kl
	return s
}

// absorbAD implements AbsorbAD(A): absorb A in 16-byte blocks with 10*
// padding on the always-present final block, then flip S4's top bit for
// domain separation (NIST SP 800-232 §4.3). This runs even when ad is
// empty: the final padded block and the domain-separation XOR still fire.
func absorbAD(s *state, ad []byte) {
	i := 0
	for len(ad)-i >= 16 {
		block := ad[i : i+16]
		s.s0 ^= loadLE64(block[0:8])
		s.s1 ^= loadLE64(block[8:16])
		s.permute(roundsB)
		i += 16
	}

	n := len(ad) - i
	var buf [RateSize]byte
	copy(buf[:], ad[i:])
	padded := pad(buf[:], n)
	s.s0 ^= loadLE64(padded[0:8])
	s.s1 ^= loadLE64(padded[8:16])
	s.permute(roundsB)

	// Domain separation fires exactly once per operation, regardless of
	// whether ad was empty.
	s.s4 ^= 1 << 63
}

// encryptP implements EncryptP(P): absorb/emit P in 16-byte blocks,
// permuting after every full block, then absorb/emit the always-present
// final partial block (0..15 bytes, or 0 bytes when len(pt) is a multiple
// of 16) without a trailing permutation (NIST SP 800-232 §4.3).
func encryptP(s *state, pt []byte) []byte {
	ct := make([]byte, len(pt))

	i := 0
	for len(pt)-i >= 16 {
		block := pt[i : i+16]
		s.s0 ^= loadLE64(block[0:8])
		s.s1 ^= loadLE64(block[8:16])
		rb := s.rateBytes()
		copy(ct[i:i+16], rb[:])
		s.permute(roundsB)
		i += 16
	}

	l := len(pt) - i
	var buf [RateSize]byte
	copy(buf[:], pt[i:])
	padded := pad(buf[:], l)
	s.s0 ^= loadLE64(padded[0:8])
	s.s1 ^= loadLE64(padded[8:16])
	rb := s.rateBytes()
	copy(ct[i:], rb[:l])

	return ct
}

// decryptC implements DecryptC(C): the mirror image of encryptP. Full
// blocks are XORed out to plaintext and then overwrite the rate with the
// ciphertext itself before permuting; the always-present final partial
// block recovers 0..15 plaintext bytes and folds the ciphertext back into
// the rate via pad2, again with no trailing permutation.
func decryptC(s *state, ct []byte) []byte {
	pt := make([]byte, len(ct))

	i := 0
	for len(ct)-i >= 16 {
		block := ct[i : i+16]
		rb := s.rateBytes()
		for j := 0; j < 16; j++ {
			pt[i+j] = block[j] ^ rb[j]
		}
		s.s0 = loadLE64(block[0:8])
		s.s1 = loadLE64(block[8:16])
		s.permute(roundsB)
		i += 16
	}

	l := len(ct) - i
	finalCT := ct[i:]
	rb := s.rateBytes()
	for j := 0; j < l; j++ {
		pt[i+j] = finalCT[j] ^ rb[j]
	}

	var ctBuf [RateSize]byte
	copy(ctBuf[:l], finalCT)
	updated := pad2(ctBuf[:l], rb[:], l)
	s.s0 = loadLE64(updated[0:8])
	s.s1 = loadLE64(updated[8:16])

	return pt
}

// finalize implements Finalize(K): XOR the key into S2/S3, permute for
// roundsA rounds, then derive the 128-bit tag from S3/S4 (NIST SP 800-232
// §4.3).
func finalize(s *state, key []byte) [TagSize]byte {
	kh := loadLE64(key[0:8])
	kl := loadLE64(key[8:16])

	s.s2 ^= kh
	s.s3 ^= kl
	s.permute(roundsA)

	var tag [TagSize]byte
	storeLE64(tag[0:8], s.s3^kh)
	storeLE64(tag[8:16], s.s4^kl)
	return tag
}
