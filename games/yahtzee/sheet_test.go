package yahtzee

import (
	"errors"
	"testing"

	"github.com/dicecrafter/yahtzee-game-server/scoring"
)

func TestSheetApplyOnce(t *testing.T) {
	s := NewSheet()
	if err := s.Apply(scoring.CategoryOnes, 3); err != nil {
		t.Fatal(err)
	}
	if !s.Filled(scoring.CategoryOnes) {
		t.Error("ones should be filled")
	}
	if err := s.Apply(scoring.CategoryOnes, 5); !errors.Is(err, ErrCategoryFilled) {
		t.Errorf("second apply: error %v, want ErrCategoryFilled", err)
	}
	if s.Scores[scoring.CategoryOnes] != 3 {
		t.Errorf("score overwritten: %d", s.Scores[scoring.CategoryOnes])
	}
}

func TestSheetApplyZeroStillFills(t *testing.T) {
	s := NewSheet()
	if err := s.Apply(scoring.CategoryYahtzee, 0); err != nil {
		t.Fatal(err)
	}
	if !s.Filled(scoring.CategoryYahtzee) {
		t.Error("zero score should still fill the category")
	}
}

func TestSheetUpperBonus(t *testing.T) {
	s := NewSheet()
	// Three of each upper face: 3+6+9+12+15+18 = 63, exactly the threshold.
	_ = s.Apply(scoring.CategoryOnes, 3)
	_ = s.Apply(scoring.CategoryTwos, 6)
	_ = s.Apply(scoring.CategoryThrees, 9)
	_ = s.Apply(scoring.CategoryFours, 12)
	_ = s.Apply(scoring.CategoryFives, 15)
	if got := s.Bonus(); got != 0 {
		t.Errorf("bonus before threshold: %d", got)
	}
	_ = s.Apply(scoring.CategorySixes, 18)
	if got := s.UpperTotal(); got != 63 {
		t.Errorf("upper total: %d want 63", got)
	}
	if got := s.Bonus(); got != UpperBonus {
		t.Errorf("bonus: %d want %d", got, UpperBonus)
	}
	if got := s.Total(); got != 63+UpperBonus {
		t.Errorf("total: %d want %d", got, 63+UpperBonus)
	}
}

func TestSheetTotalIncludesLower(t *testing.T) {
	s := NewSheet()
	_ = s.Apply(scoring.CategoryFullHouse, 25)
	_ = s.Apply(scoring.CategoryChance, 17)
	if got := s.Total(); got != 42 {
		t.Errorf("total: %d want 42", got)
	}
}

func TestSheetComplete(t *testing.T) {
	s := NewSheet()
	for _, cat := range scoring.Categories() {
		if s.Complete() {
			t.Fatal("sheet complete before all categories filled")
		}
		_ = s.Apply(cat, 1)
	}
	if !s.Complete() {
		t.Error("sheet should be complete with all 13 filled")
	}
}

func TestSheetApplyNilMap(t *testing.T) {
	var s Sheet // zero value, as after decoding an empty JSON object
	if err := s.Apply(scoring.CategoryChance, 10); err != nil {
		t.Fatal(err)
	}
	if s.Scores[scoring.CategoryChance] != 10 {
		t.Errorf("scores: %v", s.Scores)
	}
}
