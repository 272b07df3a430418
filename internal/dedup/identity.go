// Package dedup derives stable identities for scraped postings so the
// same listing is never reported twice.
package dedup

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Identity digests (company, title, url) into a fixed-length hex key.
// Fields are length-prefixed before hashing so no combination of values
// can collide by shifting bytes between fields; any change to any field
// produces a different key.
func Identity(company, title, url string) string {
	h := sha256.New()
	for _, field := range []string{company, title, url} {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(field)))
		h.Write(n[:])
		h.Write([]byte(field))
	}
	return hex.EncodeToString(h.Sum(nil))
}
