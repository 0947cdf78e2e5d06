package retrieval

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"

	"github.com/spf13/cast"
)

// computeFingerprint generates a stable hash of the document slice.
// The fingerprint changes when document content or metadata changes,
// enabling efficient cache invalidation for the Bleve index.
func computeFingerprint(docs []Document) string {
	h := sha256.New()

	for _, doc := range docs {
		h.Write([]byte(doc.Content))
		h.Write([]byte{0}) // separator

		// Metadata keys sorted for order-independence.
		keys := make([]string, 0, len(doc.Metadata))
		for key := range doc.Metadata {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			h.Write([]byte(key))
			h.Write([]byte{1})
			h.Write([]byte(cast.ToString(doc.Metadata[key])))
			h.Write([]byte{0})
		}
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
