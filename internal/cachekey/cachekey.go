// Package cachekey derives stable cache keys for compiled component
// summaries. It is the direct descendant of withastro/compiler's
// internal/hash.go (HashFromSource), rehomed onto
// github.com/cespare/xxhash/v2 because the teacher's own internal/xxhash
// package is vendored code this pack does not carry.
package cachekey

import (
	"encoding/base32"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// FromSource returns a short, stable, filesystem-safe digest of source,
// suitable as a key in internal/compilecache's LRU.
func FromSource(source string) string {
	h := xxhash.Sum64String(source)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[7-i] = byte(h)
		h >>= 8
	}
	return strings.ToLower(base32.StdEncoding.EncodeToString(buf[:])[:13])
}

// FromFile combines a filename and its content digest into one key, so two
// identically-named components compiled from different roots never collide
// and a changed file never hits a stale entry.
func FromFile(filename, source string) string {
	return filename + "@" + FromSource(source)
}
