package crossword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Small 5×5 fixture:
//
//	C A T . .
//	A . O . .
//	R Y E . .
func fixture() []Placement {
	return []Placement{
		{ID: 1, Text: "Pet", Answer: "cat", Row: 0, Col: 0, Direction: Across},
		{ID: 2, Text: "Vehicle", Answer: "CAR", Row: 0, Col: 0, Direction: Down},
		{ID: 3, Text: "Foot digit", Answer: "TOE", Row: 0, Col: 2, Direction: Down},
		{ID: 4, Text: "Grain", Answer: "RYE", Row: 2, Col: 0, Direction: Across},
	}
}

func mustBuild(t *testing.T, ps []Placement, opts ...Option) *Grid {
	t.Helper()
	g, err := Build(ps, 5, opts...)
	require.NoError(t, err)
	return g
}

func solve(t *testing.T, s *Session) {
	t.Helper()
	for _, p := range s.Grid.Placements {
		for i, at := range p.Coords() {
			_, _, err := s.Enter(at.Row, at.Col, string(p.Answer[i]))
			require.NoError(t, err)
		}
	}
}

func TestBuildLayout(t *testing.T) {
	g := mustBuild(t, fixture())

	require.Equal(t, 5, g.Size)
	require.Empty(t, g.Conflicts)

	c, _ := g.Cell(Coord{0, 0})
	require.Equal(t, "C", c.Letter)
	require.Equal(t, 1, c.Number, "first placement starting at a cell numbers it")
	require.Equal(t, []int{1, 2}, c.Members)

	c, _ = g.Cell(Coord{2, 2})
	require.Equal(t, "E", c.Letter)
	require.Equal(t, []int{3, 4}, c.Members)
	require.Zero(t, c.Number)

	c, _ = g.Cell(Coord{2, 0})
	require.Equal(t, 4, c.Number)

	c, _ = g.Cell(Coord{1, 1})
	require.True(t, c.Blocked)
	require.Empty(t, c.Members)

	_, ok := g.Cell(Coord{5, 0})
	require.False(t, ok)

	open := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if !cell.Blocked {
				open++
			}
		}
	}
	require.Equal(t, 8, open)

	ids := func(ps []Placement) []int {
		var out []int
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}
	require.Equal(t, []int{1, 4}, ids(g.Across))
	require.Equal(t, []int{2, 3}, ids(g.Down))

	p, ok := g.Placement(1)
	require.True(t, ok)
	require.Equal(t, "CAT", p.Answer)
	require.Equal(t, 3, p.Length)
}

func TestBuildNumberingIsFirstWins(t *testing.T) {
	ps := fixture()
	ps[0], ps[1] = ps[1], ps[0]
	g := mustBuild(t, ps)
	c, _ := g.Cell(Coord{0, 0})
	require.Equal(t, 2, c.Number)
	require.Equal(t, []int{2, 1}, c.Members)
}

func TestBuildConflicts(t *testing.T) {
	ps := append(fixture(), Placement{ID: 5, Text: "x", Answer: "DO", Row: 1, Col: 0, Direction: Across})

	g := mustBuild(t, ps)
	require.Len(t, g.Conflicts, 1)
	require.Equal(t, Conflict{Coord: Coord{1, 0}, Previous: "A", Letter: "D", PlacementID: 5}, g.Conflicts[0])
	c, _ := g.Cell(Coord{1, 0})
	require.Equal(t, "D", c.Letter, "later placement overwrites")
	c, _ = g.Cell(Coord{1, 1})
	require.False(t, c.Blocked)

	_, err := Build(ps, 5, WithConflicts(ConflictFail))
	require.ErrorIs(t, err, ErrConflict)
}

func TestBuildBounds(t *testing.T) {
	ps := []Placement{{ID: 1, Text: "x", Answer: "LONGER", Row: 4, Col: 2, Direction: Across}}

	g := mustBuild(t, ps)
	for col, want := range map[int]string{2: "L", 3: "O", 4: "N"} {
		c, _ := g.Cell(Coord{4, col})
		require.Equal(t, want, c.Letter)
	}

	_, err := Build(ps, 5, WithBounds(BoundsStrict))
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Build(ps, 5, Strict())
	require.ErrorIs(t, err, ErrOutOfBounds)

	neg := []Placement{{ID: 1, Text: "x", Answer: "AB", Row: -1, Col: 0, Direction: Down}}
	g = mustBuild(t, neg)
	c, _ := g.Cell(Coord{0, 0})
	require.Equal(t, "B", c.Letter)
	require.Zero(t, c.Number, "start cell was clipped")
}

func TestBuildRejectsInvalidPlacements(t *testing.T) {
	cases := map[string][]Placement{
		"length mismatch": {{ID: 1, Answer: "CAT", Length: 4, Direction: Across}},
		"duplicate id":    {{ID: 1, Answer: "CAT", Direction: Across}, {ID: 1, Answer: "DOG", Row: 2, Direction: Across}},
		"bad direction":   {{ID: 1, Answer: "CAT", Direction: "diagonal"}},
		"zero id":         {{ID: 0, Answer: "CAT", Direction: Across}},
		"empty answer":    {{ID: 1, Answer: " ", Direction: Across}},
		"non letters":     {{ID: 1, Answer: "C4T", Direction: Across}},
	}
	for name, ps := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build(ps, 5)
			require.ErrorIs(t, err, ErrInvalidPlacement)
		})
	}

	_, err := Build(fixture(), 0)
	require.ErrorIs(t, err, ErrInvalidPlacement)

	g, err := Build([]Placement{{ID: 1, Answer: "cat", Length: 3, Direction: "ACROSS"}}, 5)
	require.NoError(t, err)
	require.Equal(t, Across, g.Placements[0].Direction)
}

func TestComplete(t *testing.T) {
	g := mustBuild(t, fixture())
	e := NewEntries(5)
	require.False(t, Complete(g, e))

	for _, p := range g.Placements {
		for i, at := range p.Coords() {
			e[at.Row][at.Col] = string(p.Answer[i])
		}
	}
	require.True(t, Complete(g, e))

	e[2][1] = "X"
	require.False(t, Complete(g, e), "one wrong letter")
	e[2][1] = "y"
	require.True(t, Complete(g, e), "case-insensitive")

	e[1][2] = ""
	require.False(t, Complete(g, e))

	empty, err := Build(nil, 5)
	require.NoError(t, err)
	require.False(t, Complete(empty, NewEntries(5)))
	require.False(t, Complete(nil, e))
}

func TestCompleteSkipsClippedLetters(t *testing.T) {
	g := mustBuild(t, []Placement{{ID: 1, Answer: "LONGER", Row: 0, Col: 2, Direction: Across}})
	e := NewEntries(5)
	e[0][2], e[0][3], e[0][4] = "L", "O", "N"
	require.True(t, Complete(g, e))
}

func TestAdvanceAndResolveSelection(t *testing.T) {
	g := mustBuild(t, fixture())
	cat, _ := g.Placement(1)
	car, _ := g.Placement(2)

	next, ok := Advance(g, cat, Coord{0, 0})
	require.True(t, ok)
	require.Equal(t, Coord{0, 1}, next)

	next, ok = Advance(g, cat, Coord{0, 2})
	require.False(t, ok)
	require.Equal(t, Coord{0, 2}, next)

	next, ok = Advance(g, car, Coord{0, 0})
	require.True(t, ok)
	require.Equal(t, Coord{1, 0}, next)

	next, ok = Advance(g, car, Coord{2, 0})
	require.False(t, ok, "(3,0) is blocked")
	require.Equal(t, Coord{2, 0}, next)

	corner, _ := g.Cell(Coord{0, 0})
	id, ok := ResolveSelection(corner, 0)
	require.True(t, ok)
	require.Equal(t, 1, id)
	id, _ = ResolveSelection(corner, 2)
	require.Equal(t, 2, id, "current clue kept when it contains the cell")
	id, _ = ResolveSelection(corner, 4)
	require.Equal(t, 1, id)

	blocked, _ := g.Cell(Coord{1, 1})
	id, ok = ResolveSelection(blocked, 4)
	require.False(t, ok)
	require.Equal(t, 4, id)
}

func TestSessionSelection(t *testing.T) {
	s := NewSession(mustBuild(t, fixture()), nil)

	clue, ok := s.SelectCell(0, 0)
	require.True(t, ok)
	require.Equal(t, 1, clue)

	clue, ok = s.SelectCell(1, 0)
	require.True(t, ok)
	require.Equal(t, 2, clue)

	clue, _ = s.SelectCell(0, 0)
	require.Equal(t, 2, clue)

	clue, ok = s.SelectCell(1, 1)
	require.False(t, ok)
	require.Equal(t, 2, clue)
	cur, _ := s.Cursor()
	require.Equal(t, Coord{0, 0}, cur, "blocked click does not move the cursor")

	_, ok = s.SelectCell(9, 9)
	require.False(t, ok)

	start, err := s.SelectClue(4)
	require.NoError(t, err)
	require.Equal(t, Coord{2, 0}, start)
	require.Equal(t, 4, s.Selected())

	_, err = s.SelectClue(42)
	require.ErrorIs(t, err, ErrUnknownClue)
}

func TestSessionSelectClippedClue(t *testing.T) {
	g := mustBuild(t, []Placement{
		{ID: 1, Text: "x", Answer: "ABC", Row: -1, Col: 2, Direction: Down},
		{ID: 2, Text: "y", Answer: "XY", Row: -4, Col: 0, Direction: Down},
	})
	s := NewSession(g, nil)

	start, err := s.SelectClue(1)
	require.NoError(t, err)
	require.Equal(t, Coord{0, 2}, start, "first cell was clipped")
	cur, ok := s.Cursor()
	require.True(t, ok)
	require.Equal(t, start, cur)

	_, err = s.SelectClue(2)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, 1, s.Selected(), "selection unchanged")
}

func TestSessionEnterAutoAdvance(t *testing.T) {
	s := NewSession(mustBuild(t, fixture()), nil)
	_, err := s.SelectClue(1)
	require.NoError(t, err)

	next, moved, err := s.Enter(0, 0, "c")
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, Coord{0, 1}, next)

	next, moved, err = s.Enter(0, 1, "A")
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, Coord{0, 2}, next)

	next, moved, err = s.Enter(0, 2, "T")
	require.NoError(t, err)
	require.False(t, moved, "end of the clue")
	require.Equal(t, Coord{0, 2}, next)

	require.Equal(t, "C", s.Entries()[0][0])

	// Cell outside the active clue: written but no advance.
	next, moved, err = s.Enter(1, 2, "O")
	require.NoError(t, err)
	require.False(t, moved)
	require.Equal(t, Coord{1, 2}, next)

	// Clearing never advances.
	_, moved, err = s.Enter(0, 0, "")
	require.NoError(t, err)
	require.False(t, moved)
	require.Equal(t, "", s.Entries()[0][0])

	_, _, err = s.Enter(1, 1, "A")
	require.ErrorIs(t, err, ErrBlockedCell)
	_, _, err = s.Enter(-1, 0, "A")
	require.ErrorIs(t, err, ErrBlockedCell)
	for _, bad := range []string{"1", "AB", "é"} {
		_, _, err = s.Enter(0, 0, bad)
		require.ErrorIs(t, err, ErrInvalidLetter, bad)
	}
}

func TestSessionWinFiresOnce(t *testing.T) {
	wins := 0
	s := NewSession(mustBuild(t, fixture()), func() { wins++ })

	solve(t, s)
	require.Equal(t, StatusWon, s.Status())
	require.Equal(t, 1, wins)

	require.NoError(t, s.Clear(0, 0))
	_, _, err := s.Enter(0, 0, "C")
	require.NoError(t, err)
	require.Equal(t, 1, wins)
	require.Equal(t, StatusWon, s.Status(), "won is one-way")

	s.Reset()
	require.Equal(t, StatusPlaying, s.Status())
	require.Zero(t, s.Selected())
	require.Equal(t, "", s.Entries()[0][0])

	solve(t, s)
	require.Equal(t, 2, wins, "reset starts a new instance")
}

func TestSessionWinCallbackMayUseSession(t *testing.T) {
	var s *Session
	var seen Status
	s = NewSession(mustBuild(t, fixture()), func() { seen = s.Status() })
	solve(t, s)
	require.Equal(t, StatusWon, seen)
}

func TestSessionHintsAndSnapshot(t *testing.T) {
	s := NewSession(mustBuild(t, fixture()), nil)

	shown, answer, err := s.ToggleHint(3)
	require.NoError(t, err)
	require.True(t, shown)
	require.Equal(t, "TOE", answer)

	_, _, err = s.Enter(0, 0, "C")
	require.NoError(t, err)

	v := s.Snapshot()
	require.Equal(t, s.ID, v.ID)
	require.Equal(t, StatusPlaying, v.Status)
	require.Equal(t, map[int]string{3: "TOE"}, v.Hints)
	require.Equal(t, map[string]int{"filled": 1, "total": 8}, v.Progress)
	require.Len(t, v.Across, 2)

	shown, answer, err = s.ToggleHint(3)
	require.NoError(t, err)
	require.False(t, shown)
	require.Empty(t, answer)
	require.Empty(t, s.Snapshot().Hints)

	_, _, err = s.ToggleHint(99)
	require.ErrorIs(t, err, ErrUnknownClue)
}
