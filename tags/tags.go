package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Projectile = donburi.NewTag().SetName("Projectile")
	Adversary  = donburi.NewTag().SetName("Adversary")
	Station    = donburi.NewTag().SetName("Station")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
	ResolvAdversary  = "Adversary"
	ResolvStation    = "Station"
)
