package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/forest-adventure/components"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions damages the hero once for every overlapping enemy, in
// spawn order. Invulnerability from the first hit absorbs the rest.
func UpdateCollisions(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	heroes := EntriesInSpace(space, tags.ResolvHero)
	if len(heroes) == 0 {
		return
	}
	heroEntry := heroes[0]

	// The space's cell lookup snaps bounds to whole cells and can miss
	// sub-pixel overlaps, so every enemy gets the exact box test.
	heroRect := components.Object.Get(heroEntry).Rect()
	for _, enemyEntry := range EnemiesInSpace(space) {
		if !heroRect.Overlaps(components.Object.Get(enemyEntry).Rect()) {
			continue
		}
		DamageHero(e.World, heroEntry, cfg.Combat.ContactDamage)
	}
}

// EntriesInSpace returns the entries behind every live object in space
// carrying tag.
func EntriesInSpace(space *resolv.Space, tag string) []*donburi.Entry {
	var entries []*donburi.Entry
	for _, obj := range space.Objects() {
		if !obj.HasTags(tag) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// EnemiesInSpace returns the enemies registered in space in spawn order.
// The space itself yields them in cell order.
func EnemiesInSpace(space *resolv.Space) []*donburi.Entry {
	enemies := EntriesInSpace(space, tags.ResolvEnemy)
	slices.SortFunc(enemies, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Enemy.Get(a).Order, components.Enemy.Get(b).Order)
	})
	return enemies
}
