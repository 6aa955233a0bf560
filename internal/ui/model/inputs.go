package model

import (
	"slices"

	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
)

// KeyZoneGroup is a focus cycle of key zones.
type KeyZoneGroup []KeyZone

func (z KeyZoneGroup) Next(current KeyZone, dir input.Direction) KeyZone {
	index := slices.Index(z, current)
	if index == -1 {
		return z[0]
	}

	switch dir {
	case input.Previous:
		// Wrap into the last entry
		if index-1 < 0 {
			return z[len(z)-1]
		}

		return z[index-1]
	case input.Next:
		// Wrap into the first entry
		if index+1 >= len(z) {
			return z[0]
		}

		return z[index+1]
	default:
		return current
	}
}
