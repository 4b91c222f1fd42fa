package systems

import (
	"log"

	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup tears the session down during the single GameCleanup tick and
// then asks for the mode recorded with the cleanup request. It runs last, so
// the camera has already been reset this tick.
func UpdateCleanup(ecs *ecs.ECS) {
	entry, ok := components.Lifecycle.First(ecs.World)
	if !ok {
		return
	}
	m := components.Lifecycle.Get(entry).Machine
	if _, cleaning := m.CleanupTarget(); !cleaning {
		return
	}
	if _, pending := m.Pending(); pending {
		return
	}

	factory.DespawnSession(ecs)
	if err := m.CompleteCleanup(); err != nil {
		log.Printf("Warning: could not complete cleanup: %v", err)
	}
}
