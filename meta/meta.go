// meta/meta.go
package meta

// GAME_WIDTH defines the default number of board columns.
const GAME_WIDTH = 8

// GAME_HEIGHT defines the default number of board rows.
const GAME_HEIGHT = 8

// SHADE_SIZE defines the default maximum shadow length strategies plan around.
const SHADE_SIZE = 3

// DEFAULT_SUN_ANGLE is the shadow throw a new game starts with.
const DEFAULT_SUN_ANGLE = 4

// TURNS_PER_GAME defines the number of plies in a game.
const TURNS_PER_GAME = 16

// MAX_RETRIES bounds the proposals requested from an agent for a single move.
const MAX_RETRIES = 1000

// GAMES_PER_MATCHUP defines the default number of games per experiment matchup.
const GAMES_PER_MATCHUP = 100
