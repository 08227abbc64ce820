package codec

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
)

// Fingerprint returns a content hash over the deterministic encoding.
// Equal specs always hash equal, so the fingerprint can key caches or
// detect theme changes without a deep compare.
func Fingerprint(s spec.Spec) (string, error) {
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
