package components

import "github.com/yohamta/donburi"

// ScoreData tracks climb height. It lives for the whole process so the best
// height survives across sessions.
type ScoreData struct {
	StartY float64 // player y at spawn
	Height float64 // best height reached this session
	Best   float64 // best height ever, restored from disk
	Dirty  bool    // Best changed and has not been saved
}

var Score = donburi.NewComponentType[ScoreData]()
