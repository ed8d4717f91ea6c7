package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSide is returned for any side or result other than over/under.
var ErrInvalidSide = errors.New("side must be 'over' or 'under'")

// Side identifies one outcome of an over/under market.
type Side string

const (
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// ParseSide normalizes input into a Side.
func ParseSide(input string) (Side, error) {
	side := Side(strings.ToLower(strings.TrimSpace(input)))
	if !side.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSide, input)
	}
	return side, nil
}

func (s Side) Valid() bool {
	return s == SideOver || s == SideUnder
}

// Opposite returns the other side. Invalid sides map to themselves.
func (s Side) Opposite() Side {
	switch s {
	case SideOver:
		return SideUnder
	case SideUnder:
		return SideOver
	default:
		return s
	}
}

func (s Side) String() string {
	return string(s)
}
