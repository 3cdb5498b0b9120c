package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes the SHA-256 hex digest of data.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// FigureKey builds the cache key of one rendered figure: the content hashes
// of the three input files plus every option that affects the output.
// Changing any input byte or any option yields a new key.
func FigureKey(dataHash, bedHash, layoutHash string, opts any) string {
	optData, _ := json.Marshal(opts)
	h := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%s:%s", dataHash, bedHash, layoutHash, optData))
	return "figure:" + hex.EncodeToString(h[:])
}
