// Package recordid provides parsing, validation, and minting of ledger
// record identifiers.
//
// ID format: <PREFIX>-<hex>
//
// Examples:
//
//	EVIDENCE-aaaa1111           (observation evidence chain)
//	DECISION-7f3a90bc12de       (human-decision audit)
//	INTENT-00ff00ff00ff00ff     (intent-binding audit)
//
// PREFIX is a domain tag: uppercase letters, digits, and underscores,
// starting with a letter. The hex payload is at least 8 characters and
// case-insensitive; Parse preserves the original casing while Canonical
// lowercases it.
package recordid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// MinHexLen is the minimum length of the hex payload.
const MinHexLen = 8

var idPattern = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)-([0-9a-fA-F]{8,})$`)

// ID is a parsed record identifier.
type ID struct {
	Prefix string // e.g. "EVIDENCE" — the domain tag
	Hex    string // e.g. "aaaa1111" — unique hex payload, ≥8 chars
	raw    string
}

// Parse parses and validates a record identifier string.
func Parse(raw string) (ID, error) {
	m := idPattern.FindStringSubmatch(raw)
	if m == nil {
		return ID{}, fmt.Errorf("record id %q does not match <PREFIX>-<hex≥%d>", raw, MinHexLen)
	}
	return ID{Prefix: m[1], Hex: m[2], raw: raw}, nil
}

// MustParse parses an identifier and panics on error. Useful in tests.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether raw is a well-formed record identifier.
func Valid(raw string) bool {
	return idPattern.MatchString(raw)
}

// HasPrefix reports whether raw is a well-formed identifier carrying the
// given domain prefix.
func HasPrefix(raw, prefix string) bool {
	id, err := Parse(raw)
	return err == nil && id.Prefix == prefix
}

// New mints a fresh identifier under the given prefix. The hex payload is
// derived from a random UUID, giving 32 hex characters of uniqueness.
func New(prefix string) (ID, error) {
	if prefix == "" || !idPattern.MatchString(prefix+"-"+strings.Repeat("0", MinHexLen)) {
		return ID{}, fmt.Errorf("invalid record id prefix %q", prefix)
	}
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ID{Prefix: prefix, Hex: hex, raw: prefix + "-" + hex}, nil
}

// String returns the identifier as originally written.
func (id ID) String() string {
	if id.raw != "" {
		return id.raw
	}
	return id.Prefix + "-" + id.Hex
}

// Canonical returns the identifier with the hex payload lowercased.
func (id ID) Canonical() string {
	return id.Prefix + "-" + strings.ToLower(id.Hex)
}
