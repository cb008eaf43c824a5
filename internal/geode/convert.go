package geode

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for resource or robot names that are not one of
// ore, clay, obsidian or geode.
var ErrUnknownKind = errors.New("geode: unknown resource kind")

// Kind is a resource kind. The robot of a kind produces one unit of it per
// minute.
type Kind int

// Kinds in increasing value.
const (
	Ore Kind = iota
	Clay
	Obsidian
	Geode
	NumKind = 4
)

var kindIn = map[string]Kind{
	"ore":      Ore,
	"clay":     Clay,
	"obsidian": Obsidian,
	"geode":    Geode,
}

var kindOut = map[Kind]string{}

func init() {
	for s, k := range kindIn {
		kindOut[k] = s
	}
}

// ParseKind converts a resource name into a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindIn[s]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) String() string {
	s, ok := kindOut[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return s
}

// Prerequisite returns the kind whose production is needed before a robot of
// kind k is worth considering.
func (k Kind) Prerequisite() (Kind, bool) {
	switch k {
	case Geode:
		return Obsidian, true
	case Obsidian:
		return Clay, true
	default:
		return 0, false
	}
}
