package yahtzee

import (
	"errors"

	"github.com/dicecrafter/yahtzee-game-server/scoring"
)

// RollsPerTurn is how many rolls a turn allows, the first included.
const RollsPerTurn = 3

var (
	ErrNoRollsLeft  = errors.New("no rolls left this turn")
	ErrNotRolled    = errors.New("dice not rolled yet this turn")
	ErrGameComplete = errors.New("game already complete")
)

// Game is one single-player game in progress: the dice on the table, the
// rolls remaining this turn, and the score sheet. JSON-serializable so
// session stores can persist it as-is.
type Game struct {
	Dice      [NumDice]int `json:"dice"`
	RollsLeft int          `json:"rollsLeft"`
	Turn      int          `json:"turn"`
	Sheet     Sheet        `json:"sheet"`
	Done      bool         `json:"done"`
}

func New() *Game {
	return &Game{
		RollsLeft: RollsPerTurn,
		Turn:      1,
		Sheet:     NewSheet(),
	}
}

// Rolled reports whether at least one roll happened this turn.
func (g *Game) Rolled() bool {
	return g.RollsLeft < RollsPerTurn
}

// Roll rolls the dice. Holds are ignored on a turn's first roll since there
// is nothing on the table to keep.
func (g *Game) Roll(hold [NumDice]bool) error {
	if g.Done {
		return ErrGameComplete
	}
	if g.RollsLeft <= 0 {
		return ErrNoRollsLeft
	}
	if g.Rolled() {
		g.Dice = Reroll(g.Dice, hold)
	} else {
		g.Dice = RollAll()
	}
	g.RollsLeft--
	return nil
}

// Hand returns the current dice as a scoring hand.
func (g *Game) Hand() scoring.Hand {
	return scoring.Hand(g.Dice[:])
}

// ScoreCategory commits the current dice to a category and ends the turn.
// Returns the committed score.
func (g *Game) ScoreCategory(category string) (int, error) {
	if g.Done {
		return 0, ErrGameComplete
	}
	if !g.Rolled() {
		return 0, ErrNotRolled
	}
	if g.Sheet.Filled(category) {
		return 0, ErrCategoryFilled
	}
	score, err := scoring.Score(category, g.Hand())
	if err != nil {
		return 0, err
	}
	if err := g.Sheet.Apply(category, score); err != nil {
		return 0, err
	}
	if g.Sheet.Complete() {
		g.Done = true
		g.RollsLeft = 0
		return score, nil
	}
	g.Turn++
	g.RollsLeft = RollsPerTurn
	g.Dice = [NumDice]int{}
	return score, nil
}

// Previews returns the candidate score for every unscored category against
// the current dice, for score-sheet preview. Empty before the first roll of
// a turn and once the game is done.
func (g *Game) Previews() map[string]int {
	out := make(map[string]int)
	if g.Done || !g.Rolled() {
		return out
	}
	h := g.Hand()
	for _, cat := range scoring.Categories() {
		if g.Sheet.Filled(cat) {
			continue
		}
		score, err := scoring.Score(cat, h)
		if err != nil {
			continue
		}
		out[cat] = score
	}
	return out
}
