package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")

	// Session marks every entity despawned by GameCleanup.
	Session = donburi.NewTag().SetName("Session")
)

// Resolv tags for physics collision
const (
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
)
