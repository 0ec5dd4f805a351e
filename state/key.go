package state

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// KeyBytes is the number of digest bytes used for a derived key name,
// rendered as twice as many lowercase hex characters.
const KeyBytes = 20

// Digest constructs the hash used to derive key names from arguments.
type Digest func() hash.Hash

// SHA256 is the default Digest.
var SHA256 Digest = sha256.New

// NewDigest returns fn as a Digest after checking that it produces at
// least KeyBytes bytes.
func NewDigest(fn func() hash.Hash) (Digest, error) {
	if size := fn().Size(); size < KeyBytes {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrDigestTooShort, size, KeyBytes)
	}
	return Digest(fn), nil
}

// Key addresses a single state file.
type Key struct {
	Name        string
	PluginName  string
	DataVersion int

	// Path is fixed when the key is created.
	Path string
}

// DeriveKeyName returns explicit if it is set and valid. Otherwise it
// hashes the concatenation of argv with d and returns the first KeyBytes
// bytes as hex.
//
// Arguments are concatenated without separators, so ["ab", "c"] and
// ["a", "bc"] share a key.
func DeriveKeyName(explicit string, argv []string, d Digest) (string, error) {
	if explicit != "" {
		if err := validateKeyName(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}

	if d == nil {
		d = SHA256
	}
	h := d()
	if h.Size() < KeyBytes {
		return "", fmt.Errorf("%w: %d bytes, need %d", ErrDigestTooShort, h.Size(), KeyBytes)
	}

	for _, arg := range argv {
		_, _ = io.WriteString(h, arg)
	}
	sum := h.Sum(nil)

	return hex.EncodeToString(sum[:KeyBytes]), nil
}

func validateKeyName(name string) error {
	for i := 0; i < len(name); i++ {
		if !isKeyChar(name[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidKeyCharacter, name)
		}
	}
	return nil
}

func isKeyChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
