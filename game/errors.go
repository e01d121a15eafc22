package game

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// PermissionDeniedError is returned when a player toggles a cell that is
// neither claimable nor already theirs.
type PermissionDeniedError struct {
	Coordinates Coordinates
	Player      Player
	Owner       Player
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s cannot toggle cell %s owned by %s", e.Player, e.Coordinates, e.Owner)
}

func (e *PermissionDeniedError) Is(target error) bool {
	return target == ErrPermissionDenied
}

// InvalidConfigurationError is returned when a game setting is out of range.
type InvalidConfigurationError struct {
	Setting string
	Value   int
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %d", e.Setting, e.Value)
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
