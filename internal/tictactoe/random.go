package tictactoe

import (
	"time"

	"golang.org/x/exp/rand"
)

// Chooser is the source of every random tie-break the engine makes.
type Chooser interface {
	Intn(n int) int
}

// NewChooser - returns a seeded uniform chooser. A zero seed means seed from the clock.
func NewChooser(seed uint64) Chooser {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly chosen element of items. Picking from an empty slice is a bug and panics.
func Pick[T any](chooser Chooser, items []T) T {
	if len(items) == 0 {
		panic("tictactoe: pick from empty candidate set")
	}

	return items[chooser.Intn(len(items))]
}
