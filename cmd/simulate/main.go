package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/dicecrafter/yahtzee-game-server/games/yahtzee"
	"github.com/dicecrafter/yahtzee-game-server/scoring"
)

// simulate plays full games offline with a simple hold-the-mode strategy and
// prints the resulting score distribution. Useful for sanity-checking the
// rule configuration without running the server.
func main() {
	games := flag.Int("games", 1000, "Number of games to simulate")
	verbose := flag.Bool("v", false, "Print every game's final total")
	flag.Parse()

	if *games <= 0 {
		fmt.Fprintln(os.Stderr, "-games must be positive")
		os.Exit(1)
	}

	totals := make([]int, 0, *games)
	bonuses := 0
	yahtzees := 0
	for i := 0; i < *games; i++ {
		g := playGame()
		total := g.Sheet.Total()
		totals = append(totals, total)
		if g.Sheet.Bonus() > 0 {
			bonuses++
		}
		if g.Sheet.Scores[scoring.CategoryYahtzee] > 0 {
			yahtzees++
		}
		if *verbose {
			fmt.Printf("game %d: total %d (upper %d, bonus %d)\n", i+1, total, g.Sheet.UpperTotal(), g.Sheet.Bonus())
		}
	}

	sort.Ints(totals)
	sum := 0
	for _, t := range totals {
		sum += t
	}
	n := len(totals)
	fmt.Printf("games:    %d\n", n)
	fmt.Printf("mean:     %.1f\n", float64(sum)/float64(n))
	fmt.Printf("median:   %d\n", totals[n/2])
	fmt.Printf("min/max:  %d / %d\n", totals[0], totals[n-1])
	fmt.Printf("bonus:    %.1f%%\n", 100*float64(bonuses)/float64(n))
	fmt.Printf("yahtzees: %.1f%%\n", 100*float64(yahtzees)/float64(n))
}

// playGame runs one game to completion: each turn rolls three times holding
// the most frequent face, then commits the best-paying open category.
func playGame() *yahtzee.Game {
	g := yahtzee.New()
	for !g.Done {
		var hold [yahtzee.NumDice]bool
		if err := g.Roll(hold); err != nil {
			panic(err)
		}
		for g.RollsLeft > 0 {
			hold = holdMode(g.Dice)
			if err := g.Roll(hold); err != nil {
				panic(err)
			}
		}
		if _, err := g.ScoreCategory(bestCategory(g)); err != nil {
			panic(err)
		}
	}
	return g
}

// holdMode holds every die showing the most frequent face, highest face on ties.
func holdMode(dice [yahtzee.NumDice]int) [yahtzee.NumDice]bool {
	counts := map[int]int{}
	for _, v := range dice {
		counts[v]++
	}
	mode, best := 0, 0
	for face, n := range counts {
		if n > best || (n == best && face > mode) {
			mode, best = face, n
		}
	}
	var hold [yahtzee.NumDice]bool
	for i, v := range dice {
		hold[i] = v == mode
	}
	return hold
}

// bestCategory returns the open category with the highest preview score,
// earliest on the sheet on ties.
func bestCategory(g *yahtzee.Game) string {
	previews := g.Previews()
	bestCat, bestScore := "", -1
	for _, cat := range scoring.Categories() {
		score, ok := previews[cat]
		if !ok {
			continue
		}
		if score > bestScore {
			bestCat, bestScore = cat, score
		}
	}
	return bestCat
}
