package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// LevelGenData drives procedural platform generation for a session.
type LevelGenData struct {
	NextY float64 // y of the next platform to generate
	Width float64 // playfield width, fixed for the session
	Top   float64 // no platforms are generated above this
	Rand  *rand.Rand
}

var LevelGen = donburi.NewComponentType[LevelGenData]()
