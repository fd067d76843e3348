package yahtzee

import (
	"errors"

	"github.com/dicecrafter/yahtzee-game-server/scoring"
)

// Upper-section bonus: 35 points once ones..sixes total 63 or more.
const (
	UpperBonusThreshold = 63
	UpperBonus          = 35
)

// ErrCategoryFilled reports an attempt to score a category twice.
var ErrCategoryFilled = errors.New("category already filled")

var upperCategories = []string{
	scoring.CategoryOnes, scoring.CategoryTwos, scoring.CategoryThrees,
	scoring.CategoryFours, scoring.CategoryFives, scoring.CategorySixes,
}

// Sheet is one player's score sheet. A category is filled when it has an
// entry in Scores; each category can be filled once.
type Sheet struct {
	Scores map[string]int `json:"scores"`
}

func NewSheet() Sheet {
	return Sheet{Scores: make(map[string]int)}
}

// Filled reports whether the category has been committed.
func (s Sheet) Filled(category string) bool {
	_, ok := s.Scores[category]
	return ok
}

// Apply commits a score to a category. The map is created lazily so sheets
// decoded from JSON with no scores still work.
func (s *Sheet) Apply(category string, score int) error {
	if s.Filled(category) {
		return ErrCategoryFilled
	}
	if s.Scores == nil {
		s.Scores = make(map[string]int)
	}
	s.Scores[category] = score
	return nil
}

// UpperTotal sums the committed upper-section categories (ones..sixes).
func (s Sheet) UpperTotal() int {
	total := 0
	for _, cat := range upperCategories {
		total += s.Scores[cat]
	}
	return total
}

// Bonus returns the upper-section bonus earned so far.
func (s Sheet) Bonus() int {
	if s.UpperTotal() >= UpperBonusThreshold {
		return UpperBonus
	}
	return 0
}

// Total returns the grand total: all committed scores plus the upper bonus.
func (s Sheet) Total() int {
	total := s.Bonus()
	for _, v := range s.Scores {
		total += v
	}
	return total
}

// Complete reports whether every standard category has been filled.
func (s Sheet) Complete() bool {
	return len(s.Scores) == len(scoring.Categories())
}
