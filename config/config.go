package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EntityConfig contains the fixed sprite/collision size shared by every character
type EntityConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HeroConfig contains all hero-related configuration values
type HeroConfig struct {
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	InvulnFrames int     `yaml:"invulnFrames"`

	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`

	Frames []string `yaml:"frames"`
}

// DirectionSet selects which directions an enemy may roll
type DirectionSet int

const (
	DirectionsCardinal DirectionSet = iota // up, down, left, right
	DirectionsOctal                        // cardinal plus the four diagonals
)

// BounceMode selects what an enemy does when a step ends on the arena edge
type BounceMode int

const (
	BounceNone    BounceMode = iota // slide along the wall
	BounceReverse                   // reverse the whole direction
	BounceReflect                   // flip only the component of the wall that was hit
)

// SpawnPoint is a fixed top-left spawn coordinate
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Speed           float64      `yaml:"speed"`
	MoveIntervalMin int          `yaml:"moveIntervalMin"`
	MoveIntervalMax int          `yaml:"moveIntervalMax"`
	DirectionSet    DirectionSet `yaml:"directionSet"`
	Bounce          BounceMode   `yaml:"bounce"`

	Spawns []SpawnPoint `yaml:"spawns"`
	Frames []string     `yaml:"frames"`
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Ticks spent on each frame before advancing.
	Speed int `yaml:"speed"`
}

// CombatConfig contains contact damage configuration
type CombatConfig struct {
	ContactDamage int `yaml:"contactDamage"`
}

// CollisionConfig sizes the resolv spatial hash
type CollisionConfig struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
}

// ButtonConfig is copied into every button; buttons never share colour state.
type ButtonConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Margin      int        `yaml:"margin"`
	HoverDarken uint8      `yaml:"hoverDarken"`
	FontSize    float64    `yaml:"fontSize"`
	Color       color.RGBA `yaml:"color"`
	TextColor   color.RGBA `yaml:"textColor"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA `yaml:"backgroundColor"`
	TitleColor      color.RGBA `yaml:"titleColor"`
	TitleFontSize   float64    `yaml:"titleFontSize"`
	StartLabel      string     `yaml:"startLabel"`
	MusicOnLabel    string     `yaml:"musicOnLabel"`
	MusicOffLabel   string     `yaml:"musicOffLabel"`
	ExitLabel       string     `yaml:"exitLabel"`

	// Title is drawn at (W/2+TitleOffsetX, H/4).
	TitleOffsetX int `yaml:"titleOffsetX"`

	// Vertical offsets from the screen centre for each button's top edge.
	StartOffsetY int `yaml:"startOffsetY"`
	MusicOffsetY int `yaml:"musicOffsetY"`
	ExitOffsetY  int `yaml:"exitOffsetY"`
}

// PlayingConfig contains arena configuration values
type PlayingConfig struct {
	BackgroundColor color.RGBA `yaml:"backgroundColor"`
}

// HUDConfig sizes the health bar
type HUDConfig struct {
	HealthBarX        float64    `yaml:"healthBarX"`
	HealthBarY        float64    `yaml:"healthBarY"`
	HealthBarHeight   float64    `yaml:"healthBarHeight"`
	HealthBarPerPoint float64    `yaml:"healthBarPerPoint"`
	HealthBarColor    color.RGBA `yaml:"healthBarColor"`
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA `yaml:"backgroundColor"`
	TextColor       color.RGBA `yaml:"textColor"`
	Message         string     `yaml:"message"`
	FontSize        float64    `yaml:"fontSize"`

	// Message is drawn at (W/2+MessageOffsetX, H/2).
	MessageOffsetX int `yaml:"messageOffsetX"`

	// Seconds for the message to fade in.
	FadeDuration float32 `yaml:"fadeDuration"`
}

// AssetsConfig locates the on-disk asset tree
type AssetsConfig struct {
	Dir       string `yaml:"dir"`
	ImagesDir string `yaml:"imagesDir"`
}

// Global configuration instances
var C *Config
var Entity EntityConfig
var Hero HeroConfig
var Enemy EnemyConfig
var Animation AnimationConfig
var Combat CombatConfig
var Collision CollisionConfig
var Button ButtonConfig
var Menu MenuConfig
var Playing PlayingConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Assets AssetsConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Frame rate Ebitengine drives Update at.
const TPS = 60

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Forest Adventure",
	}

	Entity = EntityConfig{
		Width:  50,
		Height: 50,
	}

	Hero = HeroConfig{
		Health:       100,
		Speed:        5,
		InvulnFrames: 30,
		SpawnX:       400,
		SpawnY:       300,
		Frames:       []string{"hero_idle1", "hero_idle2", "hero_walk1", "hero_walk2"},
	}

	Enemy = EnemyConfig{
		Speed:           2,
		MoveIntervalMin: 50,
		MoveIntervalMax: 150,
		DirectionSet:    DirectionsOctal,
		Bounce:          BounceReverse,
		Spawns: []SpawnPoint{
			{X: 100, Y: 100},
			{X: 700, Y: 500},
		},
		Frames: []string{"enemy_idle1", "enemy_idle2", "enemy_walk1", "enemy_walk2"},
	}

	Animation = AnimationConfig{
		Speed: 10,
	}

	Combat = CombatConfig{
		ContactDamage: 1,
	}

	Collision = CollisionConfig{
		CellWidth:  10,
		CellHeight: 10,
	}

	Button = ButtonConfig{
		Width:       200,
		Height:      50,
		Margin:      10,
		HoverDarken: 50,
		FontSize:    24,
		Color:       Blue,
		TextColor:   White,
	}

	Menu = MenuConfig{
		BackgroundColor: Black,
		TitleColor:      White,
		TitleFontSize:   50,
		TitleOffsetX:    -100,
		StartLabel:      "Start Game",
		MusicOnLabel:    "Music: On",
		MusicOffLabel:   "Music: Off",
		ExitLabel:       "Exit",
		StartOffsetY:    -50,
		MusicOffsetY:    50,
		ExitOffsetY:     150,
	}

	Playing = PlayingConfig{
		BackgroundColor: Green,
	}

	HUD = HUDConfig{
		HealthBarX:        10,
		HealthBarY:        10,
		HealthBarHeight:   20,
		HealthBarPerPoint: 2,
		HealthBarColor:    Red,
	}

	GameOver = GameOverConfig{
		BackgroundColor: Black,
		TextColor:       White,
		Message:         "Game Over!",
		FontSize:        50,
		MessageOffsetX:  -100,
		FadeDuration:    1,
	}

	Assets = AssetsConfig{
		Dir:       ".",
		ImagesDir: "images",
	}
}
