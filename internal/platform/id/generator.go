package id

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers for requests and pipeline runs.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs, optionally prefixed and shortened.
type UUIDGenerator struct {
	prefix string
	length int
}

// NewUUIDGenerator returns a generator whose ids look like "<prefix>_<hex>".
// A length of zero or less keeps the full 32 hex characters.
func NewUUIDGenerator(prefix string, length int) *UUIDGenerator {
	if length <= 0 || length > 32 {
		length = 32
	}
	return &UUIDGenerator{prefix: strings.TrimSpace(prefix), length: length}
}

func (g *UUIDGenerator) NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")[:g.length]
	if g.prefix == "" {
		return raw
	}
	return g.prefix + "_" + raw
}

// Valid reports whether a caller-supplied id is safe to echo back in headers and logs.
func Valid(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
