package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Direction indicates whether a slot runs across or down.
type Direction int

const (
	Across Direction = iota
	Down
)

// String returns "across" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// MarshalJSON encodes the direction as its string name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes "across" or "down".
func (d *Direction) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"across"`:
		*d = Across
	case `"down"`:
		*d = Down
	default:
		return fmt.Errorf("invalid direction: %s", data)
	}
	return nil
}

// Variable identifies one word slot: starting cell, direction and
// length. It is comparable and used as a map key, so all four fields
// participate in equality.
type Variable struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (v Variable) Cell(k int) (row, col int) {
	if v.Direction == Down {
		return v.Row + k, v.Col
	}
	return v.Row, v.Col + k
}

// Overlap is a pair of character offsets where two slots cross:
// letter I of the first word must equal letter J of the second.
type Overlap struct {
	I, J int
}

// Crossword is the immutable puzzle model: grid structure, word
// slots, precomputed overlaps and the candidate vocabulary.
type Crossword struct {
	Height    int
	Width     int
	Structure [][]bool // true = open cell
	Words     []string
	Variables []Variable

	overlaps map[[2]Variable]Overlap
}

// NewCrossword builds a puzzle from structure rows and a vocabulary.
// In a structure row, '_' marks an open cell; any other character is
// blocked. Rows may have different lengths; missing cells are blocked.
// Words are uppercased and deduplicated.
func NewCrossword(structure, words []string) (*Crossword, error) {
	if len(structure) == 0 {
		return nil, fmt.Errorf("empty structure")
	}

	height := len(structure)
	width := 0
	for _, row := range structure {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("structure has no cells")
	}

	cells := make([][]bool, height)
	for i, row := range structure {
		cells[i] = make([]bool, width)
		for j := 0; j < len(row); j++ {
			cells[i][j] = row[j] == '_'
		}
	}

	c := &Crossword{
		Height:    height,
		Width:     width,
		Structure: cells,
		Words:     normalizeWords(words),
		overlaps:  make(map[[2]Variable]Overlap),
	}
	if len(c.Words) == 0 {
		return nil, fmt.Errorf("empty word list")
	}

	c.findVariables()
	if len(c.Variables) == 0 {
		return nil, fmt.Errorf("structure has no word slots")
	}
	c.computeOverlaps()

	return c, nil
}

// LoadCrossword reads a structure file and a word list file.
func LoadCrossword(structurePath, wordsPath string) (*Crossword, error) {
	structure, err := readLines(structurePath)
	if err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}
	words, err := readLines(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return NewCrossword(structure, words)
}

// Overlap returns the crossing offsets between x and y, or false if
// the two slots do not intersect.
func (c *Crossword) Overlap(x, y Variable) (Overlap, bool) {
	o, ok := c.overlaps[[2]Variable{x, y}]
	return o, ok
}

// Neighbors returns every slot crossing v, in declaration order.
func (c *Crossword) Neighbors(v Variable) []Variable {
	var neighbors []Variable
	for _, other := range c.Variables {
		if other == v {
			continue
		}
		if _, ok := c.Overlap(v, other); ok {
			neighbors = append(neighbors, other)
		}
	}
	return neighbors
}

// open reports whether (row, col) is an open cell.
func (c *Crossword) open(row, col int) bool {
	return row >= 0 && row < c.Height && col >= 0 && col < c.Width && c.Structure[row][col]
}

// findVariables scans the grid for maximal runs of open cells of
// length >= 2, across and down, in row-major order.
func (c *Crossword) findVariables() {
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.Structure[i][j] {
				continue
			}
			// An across slot starts where the cell to the left is blocked.
			if !c.open(i, j-1) {
				length := 0
				for c.open(i, j+length) {
					length++
				}
				if length >= 2 {
					c.Variables = append(c.Variables, Variable{Row: i, Col: j, Direction: Across, Length: length})
				}
			}
			// A down slot starts where the cell above is blocked.
			if !c.open(i-1, j) {
				length := 0
				for c.open(i+length, j) {
					length++
				}
				if length >= 2 {
					c.Variables = append(c.Variables, Variable{Row: i, Col: j, Direction: Down, Length: length})
				}
			}
		}
	}
}

// computeOverlaps records, for every ordered pair of distinct slots
// sharing a cell, the character offsets at which their words must
// agree. Two slots cross in at most one cell.
func (c *Crossword) computeOverlaps() {
	for _, x := range c.Variables {
		for _, y := range c.Variables {
			if x == y {
				continue
			}
			for i := 0; i < x.Length; i++ {
				xr, xc := x.Cell(i)
				for j := 0; j < y.Length; j++ {
					yr, yc := y.Cell(j)
					if xr == yr && xc == yc {
						c.overlaps[[2]Variable{x, y}] = Overlap{I: i, J: j}
					}
				}
			}
		}
	}
}

// normalizeWords uppercases, trims and deduplicates a word list,
// preserving first-seen order. Slots and rendering index words by
// byte, so anything outside A-Z is dropped.
func normalizeWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] || !asciiUpper(w) {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func asciiUpper(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	return lines, scanner.Err()
}
