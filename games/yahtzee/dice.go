package yahtzee

import (
	"crypto/rand"
	"math/big"

	"github.com/dicecrafter/yahtzee-game-server/scoring"
)

// NumDice is the number of dice positions on the table.
const NumDice = scoring.HandSize

// secureIntn returns a uniform random int in [0, n) using crypto/rand (CSPRNG).
func secureIntn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// rollDie returns a random face in [1,6].
func rollDie() int {
	return scoring.FaceMin + secureIntn(scoring.FaceMax-scoring.FaceMin+1)
}

// RollAll rolls all five dice.
func RollAll() [NumDice]int {
	var d [NumDice]int
	for i := range d {
		d[i] = rollDie()
	}
	return d
}

// Reroll rolls every die position that is not held.
func Reroll(dice [NumDice]int, hold [NumDice]bool) [NumDice]int {
	for i := range dice {
		if !hold[i] {
			dice[i] = rollDie()
		}
	}
	return dice
}
