// internal/crossword/types.go
//
// Core type definitions for crossword puzzles.
// Defines:
//   - Placement: one clue with its answer, start cell and direction.
//   - Cell: one grid square (expected letter, blocked flag, clue number, members).
//   - Grid: the synthesized N×N board plus derived across/down clue groups.

package crossword

import "errors"

var (
	ErrOutOfBounds      = errors.New("placement out of bounds")
	ErrConflict         = errors.New("conflicting letters at overlap")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrUnknownClue      = errors.New("unknown clue")
	ErrBlockedCell      = errors.New("cell is blocked")
	ErrInvalidLetter    = errors.New("entry must be a single letter A-Z")
)

// Direction is the reading direction of a placement.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// Coord addresses a grid cell.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is a clue placed on the grid.
// Length may be left zero in source data; Build derives it from Answer.
type Placement struct {
	ID        int       `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Answer    string    `json:"-" yaml:"answer"`
	Row       int       `json:"row" yaml:"row"`
	Col       int       `json:"col" yaml:"col"`
	Direction Direction `json:"direction" yaml:"direction"`
	Length    int       `json:"length" yaml:"length,omitempty"`
}

// Coord returns the coordinate of the i-th letter.
func (p Placement) Coord(i int) Coord {
	if p.Direction == Down {
		return Coord{Row: p.Row + i, Col: p.Col}
	}
	return Coord{Row: p.Row, Col: p.Col + i}
}

// Coords returns every coordinate the placement covers, in letter order.
func (p Placement) Coords() []Coord {
	out := make([]Coord, p.Length)
	for i := range out {
		out[i] = p.Coord(i)
	}
	return out
}

// Cell is one grid square.
type Cell struct {
	Letter  string `json:"-"`                // expected letter, "" when unused
	Blocked bool   `json:"blocked"`          // no placement covers the cell
	Number  int    `json:"number,omitempty"` // clue number shown in the corner, 0 for none
	Members []int  `json:"members,omitempty"`
}

// HasMember reports whether placement id covers the cell.
func (c Cell) HasMember(id int) bool {
	for _, m := range c.Members {
		if m == id {
			return true
		}
	}
	return false
}

// Conflict records an overlap where two placements disagree on a letter.
// Letter is the value that was kept (the later placement's).
type Conflict struct {
	Coord
	Previous    string `json:"previous"`
	Letter      string `json:"letter"`
	PlacementID int    `json:"placementId"`
}

// Grid is a synthesized crossword board.
type Grid struct {
	Size       int
	Cells      [][]Cell
	Placements []Placement // normalized, in source order
	Across     []Placement
	Down       []Placement
	Conflicts  []Conflict
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// Cell returns the cell at c; ok is false when c is outside the grid.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.Cells[c.Row][c.Col], true
}

// Placement looks up a placement by id.
func (g *Grid) Placement(id int) (Placement, bool) {
	for _, p := range g.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}
