// Package canonical computes deterministic digests over ordered field tuples.
//
// A digest is SHA-256 over the fields in their given order, each field
// followed by a single 0x00 separator byte (including the last). The layout
// is fixed so that any verifier can reproduce a digest with no access to the
// producing code: hash the fields, append 0x00 after each, take SHA-256,
// hex-encode lowercase.
//
// There is no salt or nonce. A digest is a content fingerprint, not an
// authentication tag. String fields are hashed as their UTF-8 bytes; binary
// fields are hashed as raw bytes and never text-re-encoded. Callers are
// responsible for pre-serializing structured payloads.
package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

// separator terminates every field, including the last. It makes the field
// boundaries unambiguous: ("ab","c") and ("a","bc") hash differently.
const separator = byte(0x00)

// DigestLen is the length of a hex-encoded digest string.
const DigestLen = 64

var digestPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Field is a single hash input: either a UTF-8 string or raw bytes.
type Field struct {
	s     string
	b     []byte
	isRaw bool
}

// String wraps a UTF-8 string as a hash field.
func String(s string) Field {
	return Field{s: s}
}

// Bytes wraps raw bytes as a hash field. The bytes are hashed as-is.
func Bytes(b []byte) Field {
	return Field{b: b, isRaw: true}
}

// Sum computes the canonical digest of the fields in order.
// An empty tuple is well-defined and hashes to SHA-256 of zero bytes.
func Sum(fields ...Field) string {
	h := sha256.New()
	for _, f := range fields {
		if f.isRaw {
			h.Write(f.b)
		} else {
			h.Write([]byte(f.s))
		}
		h.Write([]byte{separator})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IsDigest reports whether s is a well-formed canonical digest:
// exactly 64 lowercase hex characters.
func IsDigest(s string) bool {
	return digestPattern.MatchString(s)
}
