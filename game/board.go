package game

// Board is the grid of cells, indexed [x][y].
type Board [][]Cell

// NewBoard creates a width x height board of fresh cells.
func NewBoard(width, height int) Board {
	board := make(Board, width)
	for x := range board {
		column := make([]Cell, height)
		for y := range column {
			column[y] = NewCell(Coordinates{X: x, Y: y})
		}
		board[x] = column
	}
	return board
}

func (b Board) Width() int {
	return len(b)
}

func (b Board) Height() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// InBounds reports whether c addresses a cell of the board.
func (b Board) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < b.Width() && c.Y >= 0 && c.Y < b.Height()
}

// Copy returns a deep copy of the board.
func (b Board) Copy() Board {
	boardCopy := make(Board, len(b))
	for x, column := range b {
		columnCopy := make([]Cell, len(column))
		copy(columnCopy, column)
		boardCopy[x] = columnCopy
	}
	return boardCopy
}

// CastShade shades up to sunAngle cells to the right of every angled cell.
// Shadows falling past the right edge are dropped. Existing shade is kept.
func CastShade(b Board, sunAngle int) {
	width := b.Width()
	for x, column := range b {
		for y := range column {
			if !column[y].IsAngled {
				continue
			}
			for i := 1; i <= sunAngle && x+i < width; i++ {
				b[x+i][y].IsShaded = true
			}
		}
	}
}

// ClearShade marks every cell as lit.
func ClearShade(b Board) {
	for x := range b {
		for y := range b[x] {
			b[x][y].IsShaded = false
		}
	}
}

// Score counts, for each player, the lit cells they have claimed.
func Score(b Board) (player0, player1 int) {
	for x := range b {
		for y := range b[x] {
			cell := &b[x][y]
			if cell.IsShaded || !cell.Claimed() {
				continue
			}
			switch cell.ClaimedBy {
			case Player0:
				player0++
			case Player1:
				player1++
			}
		}
	}
	return player0, player1
}

// ShadedCells returns the coordinates of every shaded cell in column order.
func ShadedCells(b Board) []Coordinates {
	shaded := []Coordinates{}
	for x := range b {
		for y := range b[x] {
			if b[x][y].IsShaded {
				shaded = append(shaded, Coordinates{X: x, Y: y})
			}
		}
	}
	return shaded
}
