// internal/puzzles/puzzles.go
//
// Themed crossword catalog.
// Responsibilities:
//   - Decode the YAML catalog (embedded by default) into typed puzzles.
//   - Validate every puzzle by building it strictly (in bounds, no conflicts).
//   - Pick the puzzle of the day by rotating through the list.
//
// The catalog is read-only after Load and safe to share between goroutines.

package puzzles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/sachgames/assets"
	"github.com/robalobadob/sachgames/internal/crossword"
	"github.com/robalobadob/sachgames/internal/daily"
)

var ErrEmptyCatalog = errors.New("puzzle catalog is empty")

// Puzzle is one themed crossword.
type Puzzle struct {
	Theme string                `yaml:"theme" json:"theme"`
	Clues []crossword.Placement `yaml:"clues" json:"clues"`
}

// Catalog is the ordered list of puzzles sharing one grid size.
type Catalog struct {
	GridSize int      `yaml:"gridSize"`
	Puzzles  []Puzzle `yaml:"puzzles"`
}

// Load decodes and validates a YAML catalog. defaultSize is used when the
// document does not set gridSize.
func Load(data []byte, defaultSize int) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if c.GridSize == 0 {
		c.GridSize = defaultSize
	}
	if len(c.Puzzles) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, p := range c.Puzzles {
		if strings.TrimSpace(p.Theme) == "" {
			return nil, fmt.Errorf("puzzle %d: missing theme", i)
		}
		if _, err := crossword.Build(p.Clues, c.GridSize, crossword.Strict()); err != nil {
			return nil, fmt.Errorf("puzzle %d (%s): %w", i, p.Theme, err)
		}
	}
	return &c, nil
}

// LoadEmbedded loads the catalog shipped in the assets package.
func LoadEmbedded(defaultSize int) (*Catalog, error) {
	data, err := assets.Puzzles()
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Load(data, defaultSize)
}

// Len reports the number of puzzles.
func (c *Catalog) Len() int { return len(c.Puzzles) }

// Get returns puzzle i; i is reduced modulo the catalog length.
func (c *Catalog) Get(i int) Puzzle {
	n := len(c.Puzzles)
	return c.Puzzles[((i%n)+n)%n]
}

// Theme returns the theme name of puzzle i.
func (c *Catalog) Theme(i int) string { return c.Get(i).Theme }

// ForDay returns the index and puzzle for the day containing t.
func (c *Catalog) ForDay(t, epoch time.Time) (int, Puzzle) {
	i := daily.DayIndex(t, epoch, len(c.Puzzles))
	return i, c.Puzzles[i]
}

// Grid builds puzzle i. Catalog puzzles were validated at load time.
func (c *Catalog) Grid(i int) (*crossword.Grid, error) {
	return crossword.Build(c.Get(i).Clues, c.GridSize, crossword.Strict())
}
