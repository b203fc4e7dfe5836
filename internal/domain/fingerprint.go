package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// Fingerprint digests the sorted, normalized labels of tasks. Time ranges and
// order do not contribute, so reordering or retiming a plan keeps its key while
// any label edit changes it.
func Fingerprint(tasks []Task) string {
	keys := make([]string, len(tasks))
	for i, t := range tasks {
		keys[i] = t.Key()
	}
	sort.Strings(keys)

	// A []string always marshals.
	payload, _ := json.Marshal(keys)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
