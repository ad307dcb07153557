package store

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// sealKey is the fixed passphrase the session blob has always been sealed
// with. It is obfuscation, not a security boundary: anyone with the binary
// has it. Kept for wire compatibility with existing session files.
const sealKey = `*~(Iqzu[dwS0~8q&H"*^3x@jnSDa0h`

// ErrDecrypt is returned when a sealed blob cannot be opened, either because
// the data is corrupt or was sealed under a different key.
var ErrDecrypt = errors.New("sealed blob could not be decrypted")

func secretKey() *[32]byte {
	sum := sha256.Sum256([]byte(sealKey))
	return &sum
}

// Seal encrypts plaintext and returns it base64-encoded, with the random
// nonce prepended to the ciphertext inside the envelope.
func Seal(plaintext []byte) (string, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, secretKey())
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. A blob that fails to decode or authenticate yields
// ErrDecrypt; callers must treat that as fatal, never as an empty session.
func Open(encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(sealed) < 24 {
		return nil, ErrDecrypt
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plaintext, ok := secretbox.Open(nil, sealed[24:], &nonce, secretKey())
	if !ok {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
