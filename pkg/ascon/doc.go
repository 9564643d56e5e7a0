// Package ascon implements the Ascon-AEAD128 authenticated cipher as
// standardized in NIST SP 800-232.
//
// The package exposes two ways to drive the algorithm:
//
//   - Engine ([AEAD]), a non-streaming API shaped like crypto/cipher.AEAD,
//     for callers that already hold the whole message in memory.
//   - Controller, a word-oriented streaming state machine that mirrors the
//     hardware interface described in the spec (LOAD_KEY, LOAD_NONCE,
//     INIT_PERMUTE, ABSORB_AD, DOMAIN_SEP, PROCESS_MSG, FINAL_PERMUTE,
//     EMIT_OR_VERIFY_TAG, IDLE), for callers that want to feed the cipher in
//     small, fixed-width chunks (Config.BusWidth bits at a time).
//
// Both use the Initialize and Finalize operators in phases.go, the padding
// helpers in padding.go and the bit-sliced permutation in permutation.go;
// the Engine runs AD and message blocks through the phase operators, while
// Controller processes them itself as its buffered words complete. Neither
// the unroll factor nor the bus width selected via Config changes the bytes
// produced. The bus width limits the size of key, nonce and tag words; the
// unroll factor is validated and logged only.
package ascon
