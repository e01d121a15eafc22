package game

import "fmt"

// Player identifies one of the two seats at the board.
type Player int

const (
	NoPlayer Player = iota - 1 // Unclaimed cell or drawn game
	Player0
	Player1
)

// Players lists the seats in turn order.
var Players = [2]Player{Player0, Player1}

func (p Player) String() string {
	switch p {
	case Player0:
		return "player 0"
	case Player1:
		return "player 1"
	default:
		return "nobody"
	}
}

// Valid reports whether p is one of the two seats.
func (p Player) Valid() bool {
	return p == Player0 || p == Player1
}

// Coordinates locate a cell on the board. X is the column, Y the row.
type Coordinates struct {
	X int
	Y int
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
