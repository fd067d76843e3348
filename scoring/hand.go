package scoring

import (
	"errors"
	"fmt"
)

// Dice hand shape: five dice, faces 1 through 6.
const (
	HandSize = 5
	FaceMin  = 1
	FaceMax  = 6
)

// ErrInvalidHand reports a hand that is not exactly 5 values in [1,6].
// It is surfaced to the caller, never coerced.
var ErrInvalidHand = errors.New("invalid hand")

// Hand is the five dice values being scored in a turn. It has no identity
// beyond its values and is never mutated by the engine.
type Hand []int

// Validate checks the structural shape of the hand.
func (h Hand) Validate() error {
	if len(h) != HandSize {
		return fmt.Errorf("%w: want %d dice, got %d", ErrInvalidHand, HandSize, len(h))
	}
	for _, v := range h {
		if v < FaceMin || v > FaceMax {
			return fmt.Errorf("%w: die value %d out of range [%d,%d]", ErrInvalidHand, v, FaceMin, FaceMax)
		}
	}
	return nil
}

// Sum returns the total of all dice.
func (h Hand) Sum() int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

// Count returns how many dice show the given face.
func (h Hand) Count(face int) int {
	n := 0
	for _, v := range h {
		if v == face {
			n++
		}
	}
	return n
}

// FaceCount is one entry of the frequency multiset.
type FaceCount struct {
	Face  int
	Count int
}

// Frequencies is the hand's frequency multiset: each distinct face mapped to
// its occurrence count, in first-seen order. Order is irrelevant to scoring
// but deterministic so tests can compare directly.
type Frequencies []FaceCount

// Frequencies derives the frequency multiset from the hand.
func (h Hand) Frequencies() Frequencies {
	f := make(Frequencies, 0, len(h))
	for _, v := range h {
		found := false
		for i := range f {
			if f[i].Face == v {
				f[i].Count++
				found = true
				break
			}
		}
		if !found {
			f = append(f, FaceCount{Face: v, Count: 1})
		}
	}
	return f
}

// Has reports whether the face appears at least once.
func (f Frequencies) Has(face int) bool {
	for _, e := range f {
		if e.Face == face {
			return true
		}
	}
	return false
}

// Max returns the highest occurrence count, 0 for an empty multiset.
func (f Frequencies) Max() int {
	max := 0
	for _, e := range f {
		if e.Count > max {
			max = e.Count
		}
	}
	return max
}

// Distinct returns the number of distinct faces.
func (f Frequencies) Distinct() int {
	return len(f)
}
