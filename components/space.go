package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton resolv spatial hash every collision object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
