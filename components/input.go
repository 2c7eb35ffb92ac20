package components

import (
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/yohamta/donburi"
)

// InputData stores this tick's pressed state for all actions.
type InputData struct {
	Current [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
