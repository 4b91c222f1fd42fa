package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/skyward/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const progressKey = "progress"

// SavedProgress represents the data stored on disk between runs
type SavedProgress struct {
	WindowWidth  int     `json:"windowWidth"`
	WindowHeight int     `json:"windowHeight"`
	BestHeight   float64 `json:"bestHeight"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skyward",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress loads saved progress from disk. It returns nil when nothing
// has been saved yet or persistence is unavailable.
func LoadProgress() (*SavedProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// CurrentProgress collects what is worth saving from the world.
func CurrentProgress(ecs *ecs.ECS) *SavedProgress {
	p := &SavedProgress{}
	if window := windowSize(ecs.World); window != nil {
		p.WindowWidth = int(window.Width)
		p.WindowHeight = int(window.Height)
	}
	if score, ok := getScore(ecs); ok {
		p.BestHeight = score.Best
	}
	return p
}

// saveScore writes the progress when the best height changed this session.
func saveScore(ecs *ecs.ECS) {
	score, ok := getScore(ecs)
	if !ok || !score.Dirty {
		return
	}
	if err := SaveProgress(CurrentProgress(ecs)); err == nil {
		score.Dirty = false
	}
}

// BestHeight returns the best height recorded so far.
func BestHeight(ecs *ecs.ECS) float64 {
	if entry, ok := components.Score.First(ecs.World); ok {
		return components.Score.Get(entry).Best
	}
	return 0
}
