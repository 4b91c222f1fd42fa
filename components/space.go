package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space of the current session.
var Space = donburi.NewComponentType[resolv.Space]()
