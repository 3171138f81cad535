package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewRunID returns a short random hex ID used to correlate the log lines of
// one CLI run.
func NewRunID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
