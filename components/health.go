package components

import "github.com/yohamta/donburi"

// HealthData counts hit points. Current never increases.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
