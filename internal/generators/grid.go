package generators

import "github.com/retrograde-labs/pixelforge/internal/apperr"

// Grid is a fixed-size 2D array of integer cells, addressed
// (column, row) with a configurable default value (spec §4.6
// util.grid).
type Grid struct {
	Width, Height int
	cells         []int
}

// NewGrid creates a width x height grid filled with fill.
func NewGrid(width, height, fill int) *Grid {
	g := &Grid{Width: width, Height: height, cells: make([]int, width*height)}
	g.Fill(fill)
	return g
}

func (g *Grid) index(col, row int) (int, error) {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return 0, apperr.Wrap(apperr.ErrResource, "grid cell out of bounds", nil)
	}
	return row*g.Width + col, nil
}

// Get returns the cell at (col, row).
func (g *Grid) Get(col, row int) (int, error) {
	i, err := g.index(col, row)
	if err != nil {
		return 0, err
	}
	return g.cells[i], nil
}

// Set writes the cell at (col, row).
func (g *Grid) Set(col, row, value int) error {
	i, err := g.index(col, row)
	if err != nil {
		return err
	}
	g.cells[i] = value
	return nil
}

// Fill overwrites every cell with value.
func (g *Grid) Fill(value int) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

// Stride returns the row length, used by script code to walk cells
// linearly without going through Get/Set.
func (g *Grid) Stride() int { return g.Width }

// IsValid reports whether (col, row) addresses a cell inside the grid.
func (g *Grid) IsValid(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// gridPoint is one A* search node.
type gridPoint struct{ col, row int }

// Path runs an A* search from (startCol, startRow) to (goalCol,
// goalRow), treating any cell whose value equals blocked as
// impassable, and returns the sequence of points from start to goal
// inclusive. It returns nil if no path exists (spec §4.6 util.grid
// "pathfinding over the blocked-value convention").
func (g *Grid) Path(startCol, startRow, goalCol, goalRow, blocked int) []struct{ Col, Row int } {
	start := gridPoint{startCol, startRow}
	goal := gridPoint{goalCol, goalRow}
	if !g.IsValid(start.col, start.row) || !g.IsValid(goal.col, goal.row) {
		return nil
	}

	heuristic := func(p gridPoint) int {
		dx, dy := p.col-goal.col, p.row-goal.row
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx + dy
	}

	open := map[gridPoint]bool{start: true}
	cameFrom := map[gridPoint]gridPoint{}
	gScore := map[gridPoint]int{start: 0}
	fScore := map[gridPoint]int{start: heuristic(start)}

	neighbors := [4]gridPoint{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for len(open) > 0 {
		var current gridPoint
		best := int(^uint(0) >> 1)
		for p := range open {
			if fScore[p] < best {
				best = fScore[p]
				current = p
			}
		}
		if current == goal {
			path := []struct{ Col, Row int }{{current.col, current.row}}
			for current != start {
				current = cameFrom[current]
				path = append([]struct{ Col, Row int }{{current.col, current.row}}, path...)
			}
			return path
		}
		delete(open, current)

		for _, d := range neighbors {
			next := gridPoint{current.col + d.col, current.row + d.row}
			if !g.IsValid(next.col, next.row) {
				continue
			}
			if v, _ := g.Get(next.col, next.row); v == blocked {
				continue
			}
			tentative := gScore[current] + 1
			if existing, ok := gScore[next]; !ok || tentative < existing {
				cameFrom[next] = current
				gScore[next] = tentative
				fScore[next] = tentative + heuristic(next)
				open[next] = true
			}
		}
	}
	return nil
}
