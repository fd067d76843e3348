package scoring

import "fmt"

// Kind selects one of the six matching policies a Rule can use.
type Kind int

const (
	// KindSingleValue scores Face times its occurrence count (ones..sixes).
	KindSingleValue Kind = iota
	// KindThresholdTotal scores the sum of all dice if any face occurs at
	// least Threshold times, else 0. Threshold 0 matches unconditionally.
	KindThresholdTotal
	// KindFullHouse pays Payout iff the counts are exactly one pair and one triple.
	KindFullHouse
	// KindSmallStraight pays Payout on the four-run condition (see Evaluate).
	KindSmallStraight
	// KindLargeStraight pays Payout iff all five faces are distinct and the
	// two extremes 1 and 6 are not both present.
	KindLargeStraight
	// KindAllSame pays Payout iff all five dice show the same face.
	KindAllSame
)

// Flat payouts for the fixed-award categories.
const (
	FullHousePayout     = 25
	SmallStraightPayout = 30
	LargeStraightPayout = 40
	YahtzeePayout       = 50
)

// Rule is a named scoring policy: a kind plus the kind-specific parameters
// fixed at construction. Rules are immutable and stateless; evaluating the
// same hand twice yields the same score.
type Rule struct {
	Kind      Kind `json:"kind"`
	Face      int  `json:"face,omitempty"`      // KindSingleValue target
	Threshold int  `json:"threshold,omitempty"` // KindThresholdTotal minimum count
	Payout    int  `json:"payout,omitempty"`    // flat award for binary kinds
}

// Evaluate computes the rule's score for the hand. It is a pure function of
// the hand: no side effects, no dependency on prior rolls or lock state.
// A malformed hand returns ErrInvalidHand.
func (r Rule) Evaluate(h Hand) (int, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}
	switch r.Kind {
	case KindSingleValue:
		return r.Face * h.Count(r.Face), nil
	case KindThresholdTotal:
		if h.Frequencies().Max() >= r.Threshold {
			return h.Sum(), nil
		}
		return 0, nil
	case KindFullHouse:
		f := h.Frequencies()
		if len(f) == 2 && (f[0].Count == 2 || f[0].Count == 3) {
			return r.Payout, nil
		}
		return 0, nil
	case KindSmallStraight:
		// Four consecutive faces present, with at most one of the two possible
		// flanking extremes. The boundary condition is deliberate: a run
		// around 2-3-4 is void when both 1 and 5 show, likewise 3-4-5 with
		// both 2 and 6.
		f := h.Frequencies()
		if f.Has(2) && f.Has(3) && f.Has(4) && !(f.Has(1) && f.Has(5)) {
			return r.Payout, nil
		}
		if f.Has(3) && f.Has(4) && f.Has(5) && !(f.Has(2) && f.Has(6)) {
			return r.Payout, nil
		}
		return 0, nil
	case KindLargeStraight:
		f := h.Frequencies()
		if f.Distinct() == HandSize && !(f.Has(FaceMin) && f.Has(FaceMax)) {
			return r.Payout, nil
		}
		return 0, nil
	case KindAllSame:
		f := h.Frequencies()
		if len(f) == 1 && f[0].Count == HandSize {
			return r.Payout, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("scoring: unknown rule kind %d", r.Kind)
}
