package hangman

// stages holds the gallows drawing for each wrong-guess count (0..8).
var stages = []string{
	"",
	"  |\n  |\n  |\n  |\n__|",
	"  +---+\n  |   |\n      |\n      |\n      |\n______|",
	"  +---+\n  |   |\n  O   |\n      |\n      |\n______|",
	"  +---+\n  |   |\n  O   |\n  |   |\n      |\n______|",
	"  +---+\n  |   |\n  O   |\n /|   |\n      |\n______|",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n      |\n______|",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n /    |\n______|",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n / \\  |\n______|",
}

// Stage returns the drawing index for the current wrong-guess count.
// With a threshold other than 8 the count is scaled onto the nine drawings.
func (g *Game) Stage() int {
	last := len(stages) - 1
	if g.Incorrect <= 0 {
		return 0
	}
	if g.MaxWrong <= 0 || g.MaxWrong == last {
		return min(g.Incorrect, last)
	}
	return min(g.Incorrect*last/g.MaxWrong, last)
}

// Drawing returns the gallows art for the current stage.
func (g *Game) Drawing() string {
	return stages[g.Stage()]
}
