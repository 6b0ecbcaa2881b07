package discord

import "strings"

// Icon is a structured image hash. Discord prefixes the hash of animated
// assets with "a_"; the prefix is stripped and kept as a flag.
type Icon struct {
	Hash     string
	Animated bool
}

// ParseIcon builds an Icon from a raw wire hash. Empty input yields nil.
func ParseIcon(hash string) *Icon {
	if hash == "" {
		return nil
	}
	if rest, ok := strings.CutPrefix(hash, "a_"); ok {
		return &Icon{Hash: rest, Animated: true}
	}
	return &Icon{Hash: hash}
}

func (i *Icon) String() string {
	if i == nil {
		return ""
	}
	if i.Animated {
		return "a_" + i.Hash
	}
	return i.Hash
}
