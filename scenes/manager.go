package scenes

import (
	"image"
	"math/rand/v2"

	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
	"github.com/automoto/forest-adventure/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// scene is one screen of the game. The manager forwards ticks, drawing and
// pointer input to whichever scene matches the current state.
type scene interface {
	update()
	draw(surface platform.Surface)
	click(pt image.Point)
	pointerMove(pt image.Point)
}

// Manager owns the game state, the running world and the menu widgets.
type Manager struct {
	state   cfg.GameState
	current scene

	input  platform.InputSource
	audio  platform.Audio
	rng    *rand.Rand
	quit   func()
	logger *log.Logger

	musicOn     bool
	startButton *ui.Button
	musicButton *ui.Button
	exitButton  *ui.Button

	// game is kept after the hero dies so the last frame stays inspectable.
	game *playingScene
}

type Option func(*Manager)

// WithRand sets the random source used for enemy movement.
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) { m.rng = rng }
}

// WithQuit sets the routine invoked when the player asks to exit.
func WithQuit(quit func()) Option {
	return func(m *Manager) { m.quit = quit }
}

func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager builds the menu and starts the background music. A music
// failure is logged and the game carries on without it.
func NewManager(input platform.InputSource, audio platform.Audio, opts ...Option) *Manager {
	m := &Manager{
		input:   input,
		audio:   audio,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		quit:    func() {},
		logger:  log.Default(),
		musicOn: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.createButtons()
	m.changeScene(cfg.StateMenu, &menuScene{m: m})

	if err := m.audio.PlayMusic(cfg.Sound.Music); err != nil {
		m.logger.Warn("could not start music", "path", cfg.Sound.Music, "error", err)
	}
	return m
}

func (m *Manager) createButtons() {
	x := cfg.C.Width/2 - cfg.Button.Width/2
	centerY := cfg.C.Height / 2
	m.startButton = ui.NewButton(x, centerY+cfg.Menu.StartOffsetY, cfg.Menu.StartLabel, cfg.Button)
	m.musicButton = ui.NewButton(x, centerY+cfg.Menu.MusicOffsetY, cfg.Menu.MusicOnLabel, cfg.Button)
	m.exitButton = ui.NewButton(x, centerY+cfg.Menu.ExitOffsetY, cfg.Menu.ExitLabel, cfg.Button)
}

func (m *Manager) changeScene(state cfg.GameState, s scene) {
	if state != m.state {
		m.logger.Info("state changed", "from", m.state, "to", state)
	}
	m.state = state
	m.current = s
}

func (m *Manager) State() cfg.GameState { return m.state }

func (m *Manager) MusicOn() bool { return m.musicOn }

// Hero returns the current hero, or nil before the first game starts.
func (m *Manager) Hero() *donburi.Entry {
	if m.game == nil {
		return nil
	}
	return m.game.hero
}

// Enemies returns the current enemies in spawn order.
func (m *Manager) Enemies() []*donburi.Entry {
	if m.game == nil {
		return nil
	}
	return m.game.enemies
}

// HeroHealth returns the hero's current health, or 0 when there is no hero.
func (m *Manager) HeroHealth() int {
	hero := m.Hero()
	if hero == nil {
		return 0
	}
	return components.Health.Get(hero).Current
}

func (m *Manager) StartButton() *ui.Button { return m.startButton }
func (m *Manager) MusicButton() *ui.Button { return m.musicButton }
func (m *Manager) ExitButton() *ui.Button  { return m.exitButton }

// Tick advances the current scene by one frame.
func (m *Manager) Tick() {
	m.current.update()
}

func (m *Manager) Render(surface platform.Surface) {
	m.current.draw(surface)
}

func (m *Manager) HandleClick(pt image.Point) {
	m.current.click(pt)
}

func (m *Manager) HandlePointerMove(pt image.Point) {
	m.current.pointerMove(pt)
}

// HandleKey quits on an exit key regardless of state.
func (m *Manager) HandleKey(key ebiten.Key) {
	if cfg.IsExitKey(key) {
		m.Quit()
	}
}

func (m *Manager) Quit() {
	m.logger.Info("exit requested", "state", m.state)
	m.quit()
}

// StartGame discards any previous world and begins a fresh round.
func (m *Manager) StartGame() {
	m.game = newPlayingScene(m)
	m.changeScene(cfg.StatePlaying, m.game)
}

func (m *Manager) toggleMusic() {
	m.musicOn = !m.musicOn
	if m.musicOn {
		m.musicButton.SetLabel(cfg.Menu.MusicOnLabel)
		m.audio.ResumeMusic()
	} else {
		m.musicButton.SetLabel(cfg.Menu.MusicOffLabel)
		m.audio.PauseMusic()
	}
	m.logger.Debug("music toggled", "on", m.musicOn)
}
