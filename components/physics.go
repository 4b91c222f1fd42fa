package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64 // positive is up
	Gravity      float64
	Friction     float64
	MaxSpeed     float64
	MaxFallSpeed float64
	OnGround     *resolv.Object // platform landed on this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
