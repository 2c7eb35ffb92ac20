package config

// GameState is the top-level screen the game is on.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}
