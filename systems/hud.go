package systems

import (
	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
	"github.com/automoto/forest-adventure/tags"
	"github.com/yohamta/donburi/ecs"
)

// HealthBarWidth is the bar width for the given health. It never goes negative.
func HealthBarWidth(health int) float64 {
	if health <= 0 {
		return 0
	}
	return float64(health) * cfg.HUD.HealthBarPerPoint
}

func DrawHUD(e *ecs.ECS, surface platform.Surface) {
	heroEntry, ok := tags.Hero.First(e.World)
	if !ok {
		return
	}
	health := components.Health.Get(heroEntry)
	surface.FillRect(cfg.HUD.HealthBarX, cfg.HUD.HealthBarY,
		HealthBarWidth(health.Current), cfg.HUD.HealthBarHeight, cfg.HUD.HealthBarColor)
}
