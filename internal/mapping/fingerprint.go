package mapping

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint returns a stable content digest for a normalized payload.
// Serialization sorts object keys and carries no incidental whitespace
// (encoding/json does both for map values), so two payloads that differ only
// in key order produce the same digest.
func Fingerprint(payload interface{}) (string, error) {
	canonical, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
