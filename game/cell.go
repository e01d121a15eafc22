package game

// Cell is a single solar panel on the board.
type Cell struct {
	Coordinates Coordinates
	IsAngled    bool   // Turned towards the sun and casting a shadow
	IsShaded    bool   // Covered by another cell's shadow
	Claimable   bool   // Any player may toggle the cell
	ClaimedBy   Player // Last player to toggle the cell, NoPlayer if never toggled
}

// NewCell returns a flat, unshaded, unclaimed cell.
func NewCell(c Coordinates) Cell {
	return Cell{
		Coordinates: c,
		Claimable:   true,
		ClaimedBy:   NoPlayer,
	}
}

// Claimed reports whether any player has toggled the cell.
func (c *Cell) Claimed() bool {
	return c.ClaimedBy != NoPlayer
}

// ToggleAngle flips the cell's angle on behalf of player and claims it.
// The cell is left untouched when it is not claimable and belongs to someone else.
func (c *Cell) ToggleAngle(player Player) (bool, error) {
	if !c.Claimable && c.ClaimedBy != player {
		return c.IsAngled, &PermissionDeniedError{
			Coordinates: c.Coordinates,
			Player:      player,
			Owner:       c.ClaimedBy,
		}
	}

	c.IsAngled = !c.IsAngled
	c.ClaimedBy = player
	return c.IsAngled, nil
}
