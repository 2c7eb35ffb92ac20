package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
}

var Health = donburi.NewComponentType[HealthData]()
