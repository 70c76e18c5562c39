// internal/crossword/session.go
//
// Interactive crossword session.
// Responsibilities:
//   - Hold the player's entries, the selected clue, the cursor and revealed hints.
//   - Apply clicks (SelectCell / SelectClue) and letter input with auto-advance.
//   - Detect completion after every edit and fire onWin at most once.
//
// A Session is safe for concurrent use. onWin runs after the lock is released.

package crossword

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Status is the lifecycle of one puzzle instance. playing → won is one-way
// until Reset starts a fresh instance.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
)

// Session is one player's attempt at a grid.
type Session struct {
	ID        string
	Grid      *Grid
	StartedAt time.Time

	mu       sync.Mutex
	entries  Entries
	selected int // active clue id, 0 for none
	cursor   *Coord
	hints    map[int]bool
	status   Status
	onWin    func()
}

// View is a point-in-time copy of the session for rendering.
type View struct {
	ID        string         `json:"id"`
	Status    Status         `json:"status"`
	Selected  int            `json:"selectedClue,omitempty"`
	Cursor    *Coord         `json:"cursor,omitempty"`
	Entries   Entries        `json:"entries"`
	Hints     map[int]string `json:"hints,omitempty"` // clue id → revealed answer
	Cells     [][]Cell       `json:"cells"`
	Across    []Placement    `json:"across"`
	Down      []Placement    `json:"down"`
	ElapsedMs int64          `json:"elapsedMs"`
	Progress  map[string]int `json:"progress"`
}

// NewSession starts a session on g. onWin may be nil.
func NewSession(g *Grid, onWin func()) *Session {
	return &Session{
		ID:        ulid.Make().String(),
		Grid:      g,
		StartedAt: time.Now(),
		entries:   NewEntries(g.Size),
		hints:     make(map[int]bool),
		status:    StatusPlaying,
		onWin:     onWin,
	}
}

// Status reports the session lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Selected returns the active clue id, 0 when none.
func (s *Session) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Cursor returns the focused cell, if any.
func (s *Session) Cursor() (Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == nil {
		return Coord{}, false
	}
	return *s.cursor, true
}

// SelectCell handles a click on (row, col). Blocked and out-of-grid cells are
// ignored and ok is false.
func (s *Session) SelectCell(row, col int) (clue int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := Coord{Row: row, Col: col}
	cell, in := s.Grid.Cell(at)
	if !in {
		return s.selected, false
	}
	clue, ok = ResolveSelection(cell, s.selected)
	if !ok {
		return s.selected, false
	}
	s.selected = clue
	s.cursor = &at
	return clue, true
}

// SelectClue makes id the active clue and moves the cursor to its first
// in-grid cell. A clue clipped entirely off the grid cannot be selected.
func (s *Session) SelectClue(id int) (Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.Grid.Placement(id)
	if !ok {
		return Coord{}, fmt.Errorf("%w: %d", ErrUnknownClue, id)
	}
	for _, at := range p.Coords() {
		if s.Grid.InBounds(at) {
			s.selected = id
			s.cursor = &at
			return at, nil
		}
	}
	return Coord{}, fmt.Errorf("%w: clue %d has no cell in the grid", ErrOutOfBounds, id)
}

// Enter writes letter at (row, col). An empty letter clears the cell.
// After a non-empty entry the cursor advances along the active clue when the
// next cell belongs to it; moved reports whether that happened.
func (s *Session) Enter(row, col int, letter string) (next Coord, moved bool, err error) {
	var won func()
	defer func() {
		if won != nil {
			won()
		}
	}()
	s.mu.Lock()
	defer s.mu.Unlock()

	at := Coord{Row: row, Col: col}
	cell, in := s.Grid.Cell(at)
	if !in || cell.Blocked {
		return at, false, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, row, col)
	}
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if letter != "" && (len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z') {
		return at, false, ErrInvalidLetter
	}

	s.entries[row][col] = letter
	next = at
	if letter != "" && s.selected != 0 {
		if p, ok := s.Grid.Placement(s.selected); ok && cell.HasMember(p.ID) {
			next, moved = Advance(s.Grid, p, at)
		}
	}
	s.cursor = &next
	if s.checkLocked() {
		won = s.onWin
	}
	return next, moved, nil
}

// Clear empties the cell at (row, col).
func (s *Session) Clear(row, col int) error {
	_, _, err := s.Enter(row, col, "")
	return err
}

// ToggleHint flips the revealed state of clue id. When shown, answer holds
// the clue's answer.
func (s *Session) ToggleHint(id int) (shown bool, answer string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.Grid.Placement(id)
	if !ok {
		return false, "", fmt.Errorf("%w: %d", ErrUnknownClue, id)
	}
	shown = !s.hints[id]
	if shown {
		s.hints[id] = true
		return true, p.Answer, nil
	}
	delete(s.hints, id)
	return false, "", nil
}

// Reset clears entries, selection and hints and starts a new puzzle instance.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = NewEntries(s.Grid.Size)
	s.selected = 0
	s.cursor = nil
	s.hints = make(map[int]bool)
	s.status = StatusPlaying
	s.StartedAt = time.Now()
}

// Entries returns a copy of the current entries.
func (s *Session) Entries() Entries {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyEntries()
}

// Snapshot returns a render-ready copy of the session.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:        s.ID,
		Status:    s.status,
		Selected:  s.selected,
		Entries:   s.copyEntries(),
		Cells:     s.Grid.Cells,
		Across:    s.Grid.Across,
		Down:      s.Grid.Down,
		ElapsedMs: time.Since(s.StartedAt).Milliseconds(),
		Progress:  s.progressLocked(),
	}
	if s.cursor != nil {
		c := *s.cursor
		v.Cursor = &c
	}
	if len(s.hints) > 0 {
		v.Hints = make(map[int]string, len(s.hints))
		for id := range s.hints {
			if p, ok := s.Grid.Placement(id); ok {
				v.Hints[id] = p.Answer
			}
		}
	}
	return v
}

func (s *Session) copyEntries() Entries {
	out := make(Entries, len(s.entries))
	for r := range s.entries {
		out[r] = append([]string(nil), s.entries[r]...)
	}
	return out
}

// progressLocked counts filled and total open cells.
func (s *Session) progressLocked() map[string]int {
	filled, total := 0, 0
	for r, row := range s.Grid.Cells {
		for c, cell := range row {
			if cell.Blocked {
				continue
			}
			total++
			if s.entries[r][c] != "" {
				filled++
			}
		}
	}
	return map[string]int{"filled": filled, "total": total}
}

// checkLocked moves playing → won when the grid is complete and reports
// whether the transition happened on this call.
func (s *Session) checkLocked() bool {
	if s.status != StatusPlaying || !Complete(s.Grid, s.entries) {
		return false
	}
	s.status = StatusWon
	return true
}
