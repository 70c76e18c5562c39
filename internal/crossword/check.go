package crossword

import "strings"

// Entries holds the player's letters, indexed [row][col]. "" means empty.
type Entries [][]string

// NewEntries returns an empty size×size entry matrix.
func NewEntries(size int) Entries {
	e := make(Entries, size)
	for r := range e {
		e[r] = make([]string, size)
	}
	return e
}

// At returns the entry at c, or "" when c is outside the matrix.
func (e Entries) At(c Coord) string {
	if c.Row < 0 || c.Row >= len(e) || c.Col < 0 || c.Col >= len(e[c.Row]) {
		return ""
	}
	return e[c.Row][c.Col]
}

// Complete reports whether every placement's in-grid letters match the
// entries. Letters clipped off the grid cannot be entered and are skipped.
// A grid with no placements is never complete.
func Complete(g *Grid, e Entries) bool {
	if g == nil || len(g.Placements) == 0 {
		return false
	}
	for _, p := range g.Placements {
		letters := []rune(p.Answer)
		for i, at := range p.Coords() {
			if !g.InBounds(at) {
				continue
			}
			if strings.ToUpper(e.At(at)) != string(letters[i]) {
				return false
			}
		}
	}
	return true
}

// Advance returns the cell after from along placement p, provided it is in
// the grid, unblocked and still part of p.
func Advance(g *Grid, p Placement, from Coord) (Coord, bool) {
	next := Coord{Row: from.Row, Col: from.Col + 1}
	if p.Direction == Down {
		next = Coord{Row: from.Row + 1, Col: from.Col}
	}
	cell, ok := g.Cell(next)
	if !ok || cell.Blocked || !cell.HasMember(p.ID) {
		return from, false
	}
	return next, true
}

// ResolveSelection picks the active clue after a click on cell.
// The current clue is kept when it contains the cell, otherwise the cell's
// first member wins. ok is false for blocked cells.
func ResolveSelection(cell Cell, current int) (int, bool) {
	if cell.Blocked || len(cell.Members) == 0 {
		return current, false
	}
	if current != 0 && cell.HasMember(current) {
		return current, true
	}
	return cell.Members[0], true
}
