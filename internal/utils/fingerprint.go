package utils

import (
	"encoding/hex"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a short, stable identifier for a run's inputs
// (pipeline chain, ciphertext, and dictionary), so two runs over the
// same inputs can be recognized as equivalent from the banner line
// alone. It is a convenience label, not a cryptographic commitment: the
// dictionary is sorted before hashing so key order in the source file
// doesn't change the fingerprint.
func Fingerprint(pipelineChain, ciphertext string, dictionary []string) string {
	sorted := make([]string, len(dictionary))
	copy(sorted, dictionary)
	sort.Strings(sorted)

	h := blake3.New()
	h.Write([]byte(pipelineChain))
	h.Write([]byte{0})
	h.Write([]byte(ciphertext))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sorted, "\n")))

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
