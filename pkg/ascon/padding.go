package ascon

// pad applies 10* padding to a width-byte window given n valid leading
// bytes (0 <= n <= len(in)): bytes before n are copied from in, byte n (if
// it exists) becomes the 0x01 trailer, and everything after that is zero
// (NIST SP 800-232 §4.2). It is used for both AD and plaintext absorption;
// streamed at the controller's bus width or called once per 16-byte block,
// the result is identical either way.
func pad(in []byte, n int) []byte {
	out := make([]byte, len(in))
	for i := range out {
		switch {
		case i < n:
			out[i] = in[i]
		case i == n:
			out[i] = 0x01
		default:
			out[i] = 0x00
		}
	}
	return out
}

// pad2 updates the rate bytes for the partial final block of a decryption,
// so that overlaying the received ciphertext and absorbing its 10* padding
// happen in one pass: bytes before n are overwritten with overlay (the
// ciphertext bytes of the final block), byte n (if present) is the state
// byte XORed with the 0x01 trailer, and bytes after n are left as the
// untouched state bytes (NIST SP 800-232 §4.2, 4.3 DecryptC).
func pad2(overlay, stateBytes []byte, n int) []byte {
	out := make([]byte, len(stateBytes))
	for i := range out {
		switch {
		case i < n:
			out[i] = overlay[i]
		case i == n:
			out[i] = stateBytes[i] ^ 0x01
		default:
			out[i] = stateBytes[i]
		}
	}
	return out
}
