package systems

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/gamemath"
	"github.com/automoto/forest-adventure/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeInput map[cfg.ActionID]bool

func (f fakeInput) Pressed(action cfg.ActionID) bool { return f[action] }

type spriteCall struct {
	name string
	x, y float64
}

type recordingSurface struct {
	sprites []spriteCall
	rects   []gamemath.Rect
}

func (s *recordingSurface) Fill(color.Color) {}

func (s *recordingSurface) FillRect(x, y, w, h float64, _ color.Color) {
	s.rects = append(s.rects, gamemath.Rect{X: x, Y: y, W: w, H: h})
}

func (s *recordingSurface) DrawText(string, float64, float64, color.Color, float64) {}

func (s *recordingSurface) DrawSprite(name string, x, y float64) {
	s.sprites = append(s.sprites, spriteCall{name, x, y})
}

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Collision.CellWidth, cfg.Collision.CellHeight)
	return e
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func position(entry *donburi.Entry) (float64, float64) {
	o := components.Object.Get(entry)
	return o.X, o.Y
}

func TestMoveHero(t *testing.T) {
	diag := cfg.Hero.Speed / math.Sqrt2
	maxX := float64(cfg.C.Width) - cfg.Entity.Width
	maxY := float64(cfg.C.Height) - cfg.Entity.Height

	tests := []struct {
		name         string
		startX       float64
		startY       float64
		dx, dy       float64
		wantX, wantY float64
	}{
		{"no input", 400, 300, 0, 0, 400, 300},
		{"right", 400, 300, 1, 0, 405, 300},
		{"up", 400, 300, 0, -1, 400, 295},
		{"diagonal normalized", 400, 300, 1, 1, 400 + diag, 300 + diag},
		{"clamp top left", 2, 3, -1, -1, 0, 0},
		{"clamp right", maxX - 1, 300, 1, 0, maxX, 300},
		{"clamp bottom", 400, maxY, 0, 1, 400, maxY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			hero := factory.CreateHero(e, tt.startX, tt.startY)

			MoveHero(hero, tt.dx, tt.dy)

			x, y := position(hero)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("position = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUpdateHeroReadsInputAndCountsDownInvulnerability(t *testing.T) {
	e := newTestECS()
	hero := factory.CreateHero(e, 400, 300)
	components.Hero.Get(hero).InvulnFrames = 2

	NewUpdateInput(fakeInput{cfg.ActionMoveLeft: true})(e)
	UpdateHero(e)

	if x, _ := position(hero); x != 395 {
		t.Errorf("x = %v, want 395", x)
	}
	if got := components.Hero.Get(hero).InvulnFrames; got != 1 {
		t.Errorf("InvulnFrames = %d, want 1", got)
	}

	// Opposite keys cancel out.
	NewUpdateInput(fakeInput{cfg.ActionMoveLeft: true, cfg.ActionMoveRight: true})(e)
	UpdateHero(e)
	UpdateHero(e)

	if x, _ := position(hero); x != 395 {
		t.Errorf("x = %v, want 395", x)
	}
	if got := components.Hero.Get(hero).InvulnFrames; got != 0 {
		t.Errorf("InvulnFrames = %d, want 0", got)
	}
}

func TestDamageHeroIgnoredWhileInvulnerable(t *testing.T) {
	e := newTestECS()
	hero := factory.CreateHero(e, 400, 300)

	if !DamageHero(e.World, hero, 1) {
		t.Fatal("first DamageHero() = false, want true")
	}
	if got := components.Health.Get(hero).Current; got != 99 {
		t.Errorf("health = %d, want 99", got)
	}
	if got := components.Hero.Get(hero).InvulnFrames; got != cfg.Hero.InvulnFrames {
		t.Errorf("InvulnFrames = %d, want %d", got, cfg.Hero.InvulnFrames)
	}

	for i := 0; i < 5; i++ {
		if DamageHero(e.World, hero, 10) {
			t.Fatalf("DamageHero() while invulnerable = true, want false")
		}
	}
	if got := components.Health.Get(hero).Current; got != 99 {
		t.Errorf("health = %d, want 99", got)
	}
}

func TestDamageHeroPublishesEvents(t *testing.T) {
	e := newTestECS()
	hero := factory.CreateHero(e, 400, 300)
	components.Health.Get(hero).Current = 2

	var damaged []HeroDamaged
	defeated := 0
	HeroDamagedEvent.Subscribe(e.World, func(_ donburi.World, ev HeroDamaged) {
		damaged = append(damaged, ev)
	})
	HeroDefeatedEvent.Subscribe(e.World, func(donburi.World, HeroDefeated) {
		defeated++
	})

	DamageHero(e.World, hero, 1)
	components.Hero.Get(hero).InvulnFrames = 0
	DamageHero(e.World, hero, 1)
	events.ProcessAllEvents(e.World)

	if len(damaged) != 2 {
		t.Fatalf("damaged events = %d, want 2", len(damaged))
	}
	if damaged[1].Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", damaged[1].Remaining)
	}
	if defeated != 1 {
		t.Errorf("defeated events = %d, want 1", defeated)
	}
}

func TestUpdateEnemyBouncesOffWalls(t *testing.T) {
	maxX := float64(cfg.C.Width) - cfg.Entity.Width
	maxY := float64(cfg.C.Height) - cfg.Entity.Height
	upRight := gamemath.Normalize(dmath.Vec2{X: 1, Y: -1})
	downLeft := gamemath.Normalize(dmath.Vec2{X: -1, Y: 1})
	downRight := gamemath.Normalize(dmath.Vec2{X: 1, Y: 1})

	tests := []struct {
		name    string
		mode    cfg.BounceMode
		x, y    float64
		dir     dmath.Vec2
		wantDir dmath.Vec2
	}{
		{"left wall", cfg.BounceReverse, 1, 300, dmath.Vec2{X: -1, Y: 0}, dmath.Vec2{X: 1, Y: 0}},
		{"right wall", cfg.BounceReverse, maxX, 300, dmath.Vec2{X: 1, Y: 0}, dmath.Vec2{X: -1, Y: 0}},
		{"top wall reverses both axes", cfg.BounceReverse, 300, 0, upRight, downLeft},
		{"bottom wall", cfg.BounceReverse, 300, maxY, dmath.Vec2{X: 0, Y: 1}, dmath.Vec2{X: 0, Y: -1}},
		{"open field", cfg.BounceReverse, 300, 300, dmath.Vec2{X: 0, Y: 1}, dmath.Vec2{X: 0, Y: 1}},
		{"reflect keeps x", cfg.BounceReflect, 300, 0, upRight, downRight},
		{"no bounce", cfg.BounceNone, 300, 0, upRight, upRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := cfg.Enemy.Bounce
			cfg.Enemy.Bounce = tt.mode
			t.Cleanup(func() { cfg.Enemy.Bounce = old })

			e := newTestECS()
			rng := newTestRand()
			enemy := factory.CreateEnemy(e, tt.x, tt.y, rng)
			data := components.Enemy.Get(enemy)
			data.Direction = tt.dir
			data.MoveTimer = 0
			data.MoveInterval = 1000

			UpdateEnemy(enemy, rng)

			if math.Abs(data.Direction.X-tt.wantDir.X) > 1e-9 || math.Abs(data.Direction.Y-tt.wantDir.Y) > 1e-9 {
				t.Errorf("Direction = %v, want %v", data.Direction, tt.wantDir)
			}
			x, y := position(enemy)
			if x < 0 || x > maxX || y < 0 || y > maxY {
				t.Errorf("position (%v, %v) left the arena", x, y)
			}
		})
	}
}

func TestUpdateEnemyRerollsDirection(t *testing.T) {
	e := newTestECS()
	rng := newTestRand()
	enemy := factory.CreateEnemy(e, 300, 300, rng)

	for i := 0; i < 200; i++ {
		data := components.Enemy.Get(enemy)
		data.MoveTimer = data.MoveInterval - 1

		UpdateEnemy(enemy, rng)

		if data.MoveTimer != 0 {
			t.Fatalf("MoveTimer = %d, want 0 after reroll", data.MoveTimer)
		}
		if data.MoveInterval < cfg.Enemy.MoveIntervalMin || data.MoveInterval > cfg.Enemy.MoveIntervalMax {
			t.Fatalf("MoveInterval = %d, want within [%d, %d]",
				data.MoveInterval, cfg.Enemy.MoveIntervalMin, cfg.Enemy.MoveIntervalMax)
		}
		if l := math.Hypot(data.Direction.X, data.Direction.Y); math.Abs(l-1) > 1e-9 {
			t.Fatalf("|Direction| = %v, want 1", l)
		}
		// Keep it away from the walls so bounces don't interfere.
		components.Object.Get(enemy).MoveTo(300, 300)
	}
}

func TestUpdateCollisions(t *testing.T) {
	tests := []struct {
		name       string
		enemies    [][2]float64
		wantHealth int
	}{
		{"no enemies", nil, 100},
		{"one overlapping", [][2]float64{{420, 320}}, 99},
		{"two overlapping hit once", [][2]float64{{420, 320}, {380, 280}}, 99},
		{"touching edge only", [][2]float64{{450, 300}}, 100},
		{"sub-pixel overlap", [][2]float64{{449.75, 300.5}}, 99},
		{"far away", [][2]float64{{100, 100}}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			rng := newTestRand()
			hero := factory.CreateHero(e, 400, 300)
			for _, p := range tt.enemies {
				factory.CreateEnemy(e, p[0], p[1], rng)
			}

			UpdateCollisions(e)

			if got := components.Health.Get(hero).Current; got != tt.wantHealth {
				t.Errorf("health = %d, want %d", got, tt.wantHealth)
			}
		})
	}
}

func TestEnemiesInSpaceFollowsSpawnOrder(t *testing.T) {
	e := newTestECS()
	rng := newTestRand()
	// Spawned bottom-right first so cell order and spawn order disagree.
	first := factory.CreateEnemy(e, 700, 500, rng)
	second := factory.CreateEnemy(e, 100, 100, rng)
	factory.CreateHero(e, 400, 300)

	spaceEntry, _ := components.Space.First(e.World)
	got := EnemiesInSpace(components.Space.Get(spaceEntry))

	if len(got) != 2 || got[0].Entity() != first.Entity() || got[1].Entity() != second.Entity() {
		t.Errorf("EnemiesInSpace() = %v, want [first second]", got)
	}
}

func TestUpdateCollisionsOnlySeesObjectsInSpace(t *testing.T) {
	e := newTestECS()
	rng := newTestRand()
	hero := factory.CreateHero(e, 400, 300)
	enemy := factory.CreateEnemy(e, 420, 320, rng)

	spaceEntry, _ := components.Space.First(e.World)
	components.Space.Get(spaceEntry).Remove(components.Object.Get(enemy).Object)

	UpdateCollisions(e)

	if got := components.Health.Get(hero).Current; got != 100 {
		t.Errorf("health = %d, want 100 for an enemy outside the space", got)
	}
}

func TestUpdateEnemyRerollRestartsAnimation(t *testing.T) {
	e := newTestECS()
	rng := newTestRand()
	enemy := factory.CreateEnemy(e, 300, 300, rng)
	anim := components.Animation.Get(enemy).CurrentAnimation
	for i := 0; i < cfg.Animation.Speed+3; i++ {
		anim.Update()
	}
	if anim.Frame() != 1 {
		t.Fatalf("Frame() = %d, want 1 before the reroll", anim.Frame())
	}

	data := components.Enemy.Get(enemy)
	data.MoveTimer = data.MoveInterval - 1
	UpdateEnemy(enemy, rng)

	if anim.Frame() != 0 {
		t.Errorf("Frame() after reroll = %d, want 0", anim.Frame())
	}
}

func TestUpdateAnimationsAdvancesFrames(t *testing.T) {
	e := newTestECS()
	hero := factory.CreateHero(e, 400, 300)
	anim := components.Animation.Get(hero).CurrentAnimation

	for i := 0; i < cfg.Animation.Speed; i++ {
		UpdateAnimations(e)
	}
	if anim.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", anim.Frame())
	}
}

func TestDrawEntitiesAndHUD(t *testing.T) {
	e := newTestECS()
	rng := newTestRand()
	factory.CreateHero(e, 400, 300)
	factory.CreateEnemies(e, rng)

	s := &recordingSurface{}
	DrawEntities(e, s)
	DrawHUD(e, s)

	want := []spriteCall{
		{cfg.Hero.Frames[0], 400, 300},
		{cfg.Enemy.Frames[0], 100, 100},
		{cfg.Enemy.Frames[0], 700, 500},
	}
	if len(s.sprites) != len(want) {
		t.Fatalf("sprites = %v, want %v", s.sprites, want)
	}
	for i := range want {
		if s.sprites[i] != want[i] {
			t.Errorf("sprite[%d] = %v, want %v", i, s.sprites[i], want[i])
		}
	}

	if len(s.rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(s.rects))
	}
	if s.rects[0].W != 200 || s.rects[0].H != cfg.HUD.HealthBarHeight {
		t.Errorf("health bar = %+v, want width 200", s.rects[0])
	}
}

func TestHealthBarWidth(t *testing.T) {
	tests := []struct {
		health int
		want   float64
	}{
		{100, 200},
		{37, 74},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := HealthBarWidth(tt.health); got != tt.want {
			t.Errorf("HealthBarWidth(%d) = %v, want %v", tt.health, got, tt.want)
		}
	}
}
