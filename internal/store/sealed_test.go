package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	plaintext := []byte(`{"authToken":"authcookie_x","clientToken":"JlE5Jldo"}`)

	sealed, err := Seal(plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if sealed == string(plaintext) {
		t.Fatal("Seal returned the plaintext")
	}

	opened, err := Open(sealed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("round trip changed the payload:\ngot  %s\nwant %s", opened, plaintext)
	}
}

func TestSealIsRandomized(t *testing.T) {
	a, err := Seal([]byte("same"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Seal([]byte("same"))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two seals of the same plaintext must differ (random nonce)")
	}
}

func TestOpenRejectsCorruptData(t *testing.T) {
	for _, blob := range []string{
		"not base64 !!!",
		"aGVsbG8=", // valid base64, too short for a nonce
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", // garbage ciphertext
	} {
		if _, err := Open(blob); !errors.Is(err, ErrDecrypt) {
			t.Errorf("Open(%q) = %v, want ErrDecrypt", blob, err)
		}
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	sealed, err := Seal([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	tampered := []byte(sealed)
	tampered[len(tampered)-5] ^= 'x'
	if _, err := Open(string(tampered)); !errors.Is(err, ErrDecrypt) {
		t.Errorf("tampered blob opened: %v", err)
	}
}
