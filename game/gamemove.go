package game

// Move is a single successful claim made by a player.
type Move struct {
	Coordinates
	Player Player
	Angled bool // Angled state of the cell after the toggle
}
