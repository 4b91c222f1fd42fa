package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore records the best height the player has climbed this session.
func UpdateScore(ecs *ecs.ECS) {
	score, ok := getScore(ecs)
	if !ok {
		return
	}
	pos, ok := playerPosition(ecs.World)
	if !ok {
		return
	}

	if h := pos.Y - score.StartY; h > score.Height {
		score.Height = h
	}
	if score.Height > score.Best {
		score.Best = score.Height
		score.Dirty = true
	}
}

// UpdateFallCheck ends the run once the player has fallen FallLimit below
// the best height of the session.
func UpdateFallCheck(ecs *ecs.ECS) {
	score, ok := getScore(ecs)
	if !ok {
		return
	}
	pos, ok := playerPosition(ecs.World)
	if !ok {
		return
	}

	if pos.Y < score.StartY+score.Height-cfg.Player.FallLimit {
		RequestMode(ecs.World, cfg.GameOver)
	}
}

func getScore(ecs *ecs.ECS) (*components.ScoreData, bool) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Score.Get(entry), true
}
