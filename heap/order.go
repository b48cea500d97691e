package heap

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOrder = errors.New("unknown heap order")

// Order selects which end of the priority range sits at the root.
type Order int

const (
	// Max pops the highest priority first.
	Max Order = iota
	// Min pops the lowest priority first.
	Min
)

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	}
	return Max, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

func (me Order) String() string {
	switch me {
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return fmt.Sprintf("Order(%d)", int(me))
}

// before reports whether priority a must sit above priority b in the tree.
func (me Order) before(a, b int32) bool {
	if me == Min {
		return a < b
	}
	return a > b
}
