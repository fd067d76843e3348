package scoring

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCategory reports a category name not present in the registry.
// The engine never guesses or falls back to a default category.
var ErrUnknownCategory = errors.New("unknown category")

// The thirteen standard score-sheet categories. The names are part of the
// external contract and match what game clients send.
const (
	CategoryOnes          = "ones"
	CategoryTwos          = "twos"
	CategoryThrees        = "threes"
	CategoryFours         = "fours"
	CategoryFives         = "fives"
	CategorySixes         = "sixes"
	CategoryThreeOfKind   = "threeOfKind"
	CategoryFourOfKind    = "fourOfKind"
	CategoryFullHouse     = "fullHouse"
	CategorySmallStraight = "smallStraight"
	CategoryLargeStraight = "largeStraight"
	CategoryYahtzee       = "yahtzee"
	CategoryChance        = "chance"
)

// Registry maps category names to their configured Rule. Reads are safe from
// any goroutine; the standard registry is built once at init and never
// mutated afterwards.
type Registry struct {
	mu    sync.RWMutex
	order []string
	rules map[string]Rule
}

// NewRegistry returns a registry pre-configured with the thirteen standard
// categories in score-sheet order.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	r.Register(CategoryOnes, Rule{Kind: KindSingleValue, Face: 1})
	r.Register(CategoryTwos, Rule{Kind: KindSingleValue, Face: 2})
	r.Register(CategoryThrees, Rule{Kind: KindSingleValue, Face: 3})
	r.Register(CategoryFours, Rule{Kind: KindSingleValue, Face: 4})
	r.Register(CategoryFives, Rule{Kind: KindSingleValue, Face: 5})
	r.Register(CategorySixes, Rule{Kind: KindSingleValue, Face: 6})
	r.Register(CategoryThreeOfKind, Rule{Kind: KindThresholdTotal, Threshold: 3})
	r.Register(CategoryFourOfKind, Rule{Kind: KindThresholdTotal, Threshold: 4})
	r.Register(CategoryFullHouse, Rule{Kind: KindFullHouse, Payout: FullHousePayout})
	r.Register(CategorySmallStraight, Rule{Kind: KindSmallStraight, Payout: SmallStraightPayout})
	r.Register(CategoryLargeStraight, Rule{Kind: KindLargeStraight, Payout: LargeStraightPayout})
	r.Register(CategoryYahtzee, Rule{Kind: KindAllSame, Payout: YahtzeePayout})
	r.Register(CategoryChance, Rule{Kind: KindThresholdTotal, Threshold: 0})
	return r
}

// Register adds or replaces a category's rule, preserving first-registration order.
func (r *Registry) Register(name string, rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[name]; !ok {
		r.order = append(r.order, name)
	}
	r.rules[name] = rule
}

// Get returns the rule for a category name.
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	return rule, ok
}

// Categories returns the category names in registration (sheet) order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Score looks the category up and evaluates its rule against the hand.
func (r *Registry) Score(category string, h Hand) (int, error) {
	rule, ok := r.Get(category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return rule.Evaluate(h)
}

// std is the process-wide read-only registry, initialized once.
var std = NewRegistry()

// Score evaluates a category from the standard registry against the hand.
func Score(category string, h Hand) (int, error) {
	return std.Score(category, h)
}

// Lookup returns the standard rule for a category name.
func Lookup(category string) (Rule, bool) {
	return std.Get(category)
}

// Categories returns the thirteen standard category names in sheet order.
func Categories() []string {
	return std.Categories()
}
