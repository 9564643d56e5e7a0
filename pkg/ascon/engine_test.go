package ascon

import (
	"bytes"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	for i := range key {
		key[i] = byte(i * 3)
	}
	for i := range nonce {
		nonce[i] = byte(i * 7)
	}

	cases := []struct {
		ad []byte
		pt []byte
	}{
		{nil, nil},
		{[]byte("header"), []byte("hello, ascon")},
		{nil, make([]byte, 1000)},
		{make([]byte, 1000), nil},
		{[]byte{0x01}, []byte{0x02}},
	}

	for _, tc := range cases {
		ct, tag := SealDetached(key, nonce, tc.ad, tc.pt)
		if len(ct) != len(tc.pt) {
			t.Errorf("len(ciphertext) = %d, want %d", len(ct), len(tc.pt))
		}

		pt, err := OpenDetached(key, nonce, tc.ad, ct, tag)
		if err != nil {
			t.Fatalf("OpenDetached: %v", err)
		}
		if !bytes.Equal(pt, tc.pt) {
			t.Errorf("recovered plaintext mismatch\ngot:  %x\nwant: %x", pt, tc.pt)
		}
	}
}

func TestOpenRejectsTamperedTag(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	ad := []byte("ad")
	pt := []byte("secret message")

	ct, tag := SealDetached(key, nonce, ad, pt)
	tag[0] ^= 0x01

	if _, err := OpenDetached(key, nonce, ad, ct, tag); err != ErrAuthFailure {
		t.Errorf("OpenDetached with tampered tag: got %v, want ErrAuthFailure", err)
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	ad := []byte("ad")
	pt := []byte("secret message")

	ct, tag := SealDetached(key, nonce, ad, pt)
	ct[0] ^= 0x01

	if _, err := OpenDetached(key, nonce, ad, ct, tag); err != ErrAuthFailure {
		t.Errorf("OpenDetached with tampered ciphertext: got %v, want ErrAuthFailure", err)
	}
}

func TestOpenRejectsTamperedAD(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	pt := []byte("secret message")

	ct, tag := SealDetached(key, nonce, []byte("ad"), pt)

	if _, err := OpenDetached(key, nonce, []byte("ae"), ct, tag); err != ErrAuthFailure {
		t.Errorf("OpenDetached with tampered AD: got %v, want ErrAuthFailure", err)
	}
}

func TestOpenRejectsWrongKey(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	wrongKey := bytes.Repeat([]byte{0x43}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	pt := []byte("secret message")

	ct, tag := SealDetached(key, nonce, nil, pt)

	if _, err := OpenDetached(wrongKey, nonce, nil, ct, tag); err != ErrAuthFailure {
		t.Errorf("OpenDetached with wrong key: got %v, want ErrAuthFailure", err)
	}
}

func TestOpenRejectsWrongNonce(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	wrongNonce := bytes.Repeat([]byte{0x25}, NonceSize)
	pt := []byte("secret message")

	ct, tag := SealDetached(key, nonce, nil, pt)

	if _, err := OpenDetached(key, wrongNonce, nil, ct, tag); err != ErrAuthFailure {
		t.Errorf("OpenDetached with wrong nonce: got %v, want ErrAuthFailure", err)
	}
}

func TestOpenOnFailureReturnsNilPlaintext(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce := bytes.Repeat([]byte{0x24}, NonceSize)
	pt := []byte("secret message")

	ct, tag := SealDetached(key, nonce, nil, pt)
	tag[0] ^= 0x01

	got, err := OpenDetached(key, nonce, nil, ct, tag)
	if err == nil {
		t.Fatal("expected error on tampered tag")
	}
	if got != nil {
		t.Errorf("plaintext leaked on auth failure: %x", got)
	}
}

func TestNewRejectsBadKeySize(t *testing.T) {
	if _, err := New(make([]byte, 15)); err != ErrInvalidKeySize {
		t.Errorf("New with 15-byte key: got %v, want ErrInvalidKeySize", err)
	}
	if _, err := New(make([]byte, 17)); err != ErrInvalidKeySize {
		t.Errorf("New with 17-byte key: got %v, want ErrInvalidKeySize", err)
	}
}

func TestAEADSealPanicsOnBadNonceSize(t *testing.T) {
	a, err := New(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on bad nonce size")
		}
	}()
	a.Seal(nil, make([]byte, NonceSize-1), []byte("pt"), nil)
}

func TestAEADOpenPanicsOnBadNonceSize(t *testing.T) {
	a, err := New(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on bad nonce size")
		}
	}()
	_, _ = a.Open(nil, make([]byte, NonceSize+1), []byte("ct"), nil)
}

func TestAEADOpenRejectsShortCiphertext(t *testing.T) {
	a, err := New(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = a.Open(nil, make([]byte, NonceSize), make([]byte, TagSize-1), nil)
	if err != ErrAuthFailure {
		t.Errorf("Open with short ciphertext: got %v, want ErrAuthFailure", err)
	}
}

func TestAEADNonceSizeAndOverhead(t *testing.T) {
	a, err := New(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.NonceSize() != NonceSize {
		t.Errorf("NonceSize() = %d, want %d", a.NonceSize(), NonceSize)
	}
	if a.Overhead() != TagSize {
		t.Errorf("Overhead() = %d, want %d", a.Overhead(), TagSize)
	}
}

func TestSealAppendsToDst(t *testing.T) {
	a, err := New(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prefix := []byte("prefix:")
	out := a.Seal(prefix, make([]byte, NonceSize), []byte("pt"), nil)

	if !bytes.HasPrefix(out, prefix) {
		t.Errorf("Seal output %x does not retain dst prefix %x", out, prefix)
	}
	if len(out) != len(prefix)+len("pt")+TagSize {
		t.Errorf("len(out) = %d, want %d", len(out), len(prefix)+len("pt")+TagSize)
	}
}
