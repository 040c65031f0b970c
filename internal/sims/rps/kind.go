package rps

import (
	"fmt"
	"strings"
)

// Kind is one of the three cyclic entity types.
type Kind uint8

const (
	Rock Kind = iota
	Paper
	Scissors
)

// KindCount is the number of kinds.
const KindCount = 3

// Kinds lists every kind in declaration order.
var Kinds = [KindCount]Kind{Rock, Paper, Scissors}

func (k Kind) String() string {
	switch k {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind accepts the lowercase names produced by String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("rps: unknown kind %q", s)
}

// Prey returns the kind k beats.
func (k Kind) Prey() Kind {
	switch k {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// Predator returns the kind that beats k.
func (k Kind) Predator() Kind {
	switch k {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Beats reports whether k wins against other.
func (k Kind) Beats(other Kind) bool { return k.Prey() == other }

// ForceTable holds the signed magnitudes used by the flocking model.
type ForceTable struct {
	Hunt    float64 `yaml:"hunt"`
	Flee    float64 `yaml:"flee"`
	Neutral float64 `yaml:"neutral"`
}

// ForceFrom returns how strongly k is pulled toward (positive) or pushed away
// from (negative) an entity of kind other.
func (k Kind) ForceFrom(other Kind, f ForceTable) float64 {
	switch {
	case k.Beats(other):
		return f.Hunt
	case other.Beats(k):
		return f.Flee
	default:
		return f.Neutral
	}
}
