package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileSHA256 computes the SHA-256 checksum of the file at path and returns it
// hex-encoded. The file is streamed through the hasher, so arbitrarily large
// documents do not need to fit in memory.
//
// Returns an error if the file cannot be opened or read.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file contents: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashString computes the SHA-256 digest of the given string and returns it
// as a hex-encoded string. Suitable for one-off hashing of short values.
func HashString(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
