package scenes

import (
	"image"

	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
	"github.com/automoto/forest-adventure/systems"
	"github.com/automoto/forest-adventure/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// playingScene runs the arena: one hero, the enemies and the health bar.
type playingScene struct {
	m       *Manager
	ecs     *ecs.ECS
	hero    *donburi.Entry
	enemies []*donburi.Entry
}

func newPlayingScene(m *Manager) *playingScene {
	ps := &playingScene{m: m}
	ps.configure()
	return ps
}

func (ps *playingScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, cfg.Collision.CellWidth, cfg.Collision.CellHeight)

	// Order matters: input, hero, enemies, then collisions against the new positions.
	ps.ecs.AddSystem(systems.NewUpdateInput(ps.m.input))
	ps.ecs.AddSystem(systems.UpdateHero)
	ps.ecs.AddSystem(systems.NewUpdateEnemies(ps.m.rng))
	ps.ecs.AddSystem(systems.UpdateCollisions)
	ps.ecs.AddSystem(systems.UpdateAnimations)

	systems.HeroDamagedEvent.Subscribe(ps.ecs.World, ps.onHeroDamaged)
	systems.HeroDefeatedEvent.Subscribe(ps.ecs.World, ps.onHeroDefeated)

	ps.hero = factory.CreateHero(ps.ecs, cfg.Hero.SpawnX, cfg.Hero.SpawnY)
	ps.enemies = factory.CreateEnemies(ps.ecs, ps.m.rng)
	ps.m.logger.Info("game started", "enemies", len(ps.enemies))
}

func (ps *playingScene) onHeroDamaged(_ donburi.World, ev systems.HeroDamaged) {
	ps.m.audio.PlaySFX(cfg.SoundDamage)
	ps.m.logger.Debug("hero damaged", "amount", ev.Amount, "health", ev.Remaining)
}

func (ps *playingScene) onHeroDefeated(_ donburi.World, _ systems.HeroDefeated) {
	// Only the first defeat counts.
	if ps.m.state != cfg.StatePlaying || ps.m.game != ps {
		return
	}
	ps.m.changeScene(cfg.StateGameOver, newGameOverScene(ps.m))
}

func (ps *playingScene) update() {
	ps.ecs.Update()
	events.ProcessAllEvents(ps.ecs.World)
}

func (ps *playingScene) draw(surface platform.Surface) {
	surface.Fill(cfg.Playing.BackgroundColor)
	systems.DrawEntities(ps.ecs, surface)
	systems.DrawHUD(ps.ecs, surface)
}

func (ps *playingScene) click(image.Point) {}

func (ps *playingScene) pointerMove(image.Point) {}

// health is a convenience for logging and tests.
func (ps *playingScene) health() int {
	return components.Health.Get(ps.hero).Current
}
