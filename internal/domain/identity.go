package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Normalize folds an artist/title pair into its canonical form: surrounding
// whitespace trimmed, case lowered, internal whitespace runs collapsed to a
// single space. Pure and deterministic.
func Normalize(artist, title string) (string, string) {
	return normalizeField(artist), normalizeField(title)
}

func normalizeField(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// IdentityFor derives the stable TrackID for an artist/title pair. Two pairs
// that normalize equally always map to the same ID, regardless of surface
// casing or whitespace.
func IdentityFor(artist, title string) TrackID {
	a, t := Normalize(artist, title)
	sum := md5.Sum([]byte(a + "\x1f" + t))
	return TrackID(hex.EncodeToString(sum[:])[:8])
}
