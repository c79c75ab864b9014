package systems

import (
	"github.com/automoto/shawarma/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Red tint multiplier of the hit pulse
const (
	hitTintR = 1
	hitTintG = 0.25
	hitTintB = 0.25
)

// UpdateEffects processes visual effect components
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs, GetClock(ecs).Delta)
}

// updateFlashEffects counts flash timers down on frame time and restores the
// untinted color when a pulse ends.
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if !flash.Active() {
			return
		}
		flash.Remaining -= dt
		if flash.Remaining <= 0 {
			flash.Remaining = 0
			flash.R, flash.G, flash.B = 1, 1, 1
		}
	})
}

// TriggerHitFlash starts, or restarts, a red pulse lasting duration seconds.
func TriggerHitFlash(entry *donburi.Entry, duration float64) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Remaining = duration
	flash.R, flash.G, flash.B = hitTintR, hitTintG, hitTintB
}
