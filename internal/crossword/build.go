// internal/crossword/build.go
//
// Grid synthesis from a list of placements.
//
// Rules:
//   - Every cell starts blocked; a cell covered by any placement is unblocked.
//   - When placements overlap, the later placement's letter is the one kept.
//   - The clue number of a cell is set by the first placement that starts there.
//   - Cell membership lists placement ids in source order.
//   - Out-of-bounds letters are skipped (BoundsClip) or rejected (BoundsStrict).
//   - Disagreeing overlaps are recorded in Grid.Conflicts (ConflictWarn) or
//     rejected (ConflictFail).

package crossword

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BoundsPolicy decides what happens to letters that fall outside the grid.
type BoundsPolicy int

const (
	BoundsClip BoundsPolicy = iota
	BoundsStrict
)

// ConflictPolicy decides what happens when overlapping placements disagree.
type ConflictPolicy int

const (
	ConflictWarn ConflictPolicy = iota
	ConflictFail
)

type buildOptions struct {
	bounds    BoundsPolicy
	conflicts ConflictPolicy
}

// Option configures Build.
type Option func(*buildOptions)

// WithBounds sets the out-of-bounds policy. Default BoundsClip.
func WithBounds(p BoundsPolicy) Option {
	return func(o *buildOptions) { o.bounds = p }
}

// WithConflicts sets the overlap conflict policy. Default ConflictWarn.
func WithConflicts(p ConflictPolicy) Option {
	return func(o *buildOptions) { o.conflicts = p }
}

// Strict is shorthand for BoundsStrict plus ConflictFail.
func Strict() Option {
	return func(o *buildOptions) {
		o.bounds = BoundsStrict
		o.conflicts = ConflictFail
	}
}

// Build synthesizes a size×size grid from placements.
func Build(placements []Placement, size int, opts ...Option) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size %d", ErrInvalidPlacement, size)
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		Size:       size,
		Cells:      make([][]Cell, size),
		Placements: make([]Placement, 0, len(placements)),
	}
	for r := range g.Cells {
		g.Cells[r] = make([]Cell, size)
		for c := range g.Cells[r] {
			g.Cells[r][c].Blocked = true
		}
	}

	seen := make(map[int]bool, len(placements))
	for _, p := range placements {
		p, err := normalize(p)
		if err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidPlacement, p.ID)
		}
		seen[p.ID] = true

		letters := []rune(p.Answer)
		for i, at := range p.Coords() {
			if !g.InBounds(at) {
				if o.bounds == BoundsStrict {
					return nil, fmt.Errorf("%w: clue %d letter %d at (%d,%d)", ErrOutOfBounds, p.ID, i, at.Row, at.Col)
				}
				continue
			}
			cell := &g.Cells[at.Row][at.Col]
			letter := string(letters[i])
			if cell.Letter != "" && cell.Letter != letter {
				if o.conflicts == ConflictFail {
					return nil, fmt.Errorf("%w: clue %d wants %s at (%d,%d), found %s",
						ErrConflict, p.ID, letter, at.Row, at.Col, cell.Letter)
				}
				g.Conflicts = append(g.Conflicts, Conflict{Coord: at, Previous: cell.Letter, Letter: letter, PlacementID: p.ID})
			}
			cell.Blocked = false
			cell.Letter = letter
			cell.Members = append(cell.Members, p.ID)
			if i == 0 && cell.Number == 0 {
				cell.Number = p.ID
			}
		}

		g.Placements = append(g.Placements, p)
		if p.Direction == Across {
			g.Across = append(g.Across, p)
		} else {
			g.Down = append(g.Down, p)
		}
	}
	return g, nil
}

// normalize uppercases the answer, fills in Length and validates the placement.
func normalize(p Placement) (Placement, error) {
	p.Answer = strings.ToUpper(strings.TrimSpace(p.Answer))
	p.Direction = Direction(strings.ToLower(string(p.Direction)))
	n := utf8.RuneCountInString(p.Answer)

	switch {
	case p.ID <= 0:
		return p, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidPlacement, p.ID)
	case n == 0:
		return p, fmt.Errorf("%w: clue %d has an empty answer", ErrInvalidPlacement, p.ID)
	case p.Direction != Across && p.Direction != Down:
		return p, fmt.Errorf("%w: clue %d has direction %q", ErrInvalidPlacement, p.ID, p.Direction)
	case p.Length != 0 && p.Length != n:
		return p, fmt.Errorf("%w: clue %d length %d does not match answer length %d", ErrInvalidPlacement, p.ID, p.Length, n)
	}
	for _, r := range p.Answer {
		if r < 'A' || r > 'Z' {
			return p, fmt.Errorf("%w: clue %d answer %q is not A-Z", ErrInvalidPlacement, p.ID, p.Answer)
		}
	}
	p.Length = n
	return p, nil
}
