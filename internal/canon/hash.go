package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix leaves
// room for algorithm migration.
const (
	DomainResult = "froot/result/v1"
	DomainRun    = "froot/run/v1"
)

// Hash computes a domain-separated SHA-256 over data. The null byte between
// domain and payload prevents boundary ambiguity.
func Hash(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ResultID computes the content-addressed identity of one computed result:
// the command that produced it, its input, and its payload. Equal results
// hash equal across runs and platforms.
func ResultID(command, input string, payload map[string]any) (string, error) {
	canonical, err := Marshal(map[string]any{
		"command": command,
		"input":   input,
		"payload": payload,
	})
	if err != nil {
		return "", fmt.Errorf("ResultID: %w", err)
	}
	return Hash(DomainResult, canonical), nil
}
