package components

import (
	"github.com/automoto/skyward/lifecycle"
	"github.com/yohamta/donburi"
)

// LifecycleData owns the process-wide application mode.
type LifecycleData struct {
	Machine *lifecycle.Machine
	Entered bool // the current mode was entered this tick
}

var Lifecycle = donburi.NewComponentType[LifecycleData]()
