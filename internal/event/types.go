// internal/event/types.go
package event

const (
	TileDestroyed  EventType = "TileDestroyed"  // Data: component.Position of the tile
	PaddleHit      EventType = "PaddleHit"      // ball bounced off the paddle
	WallBounce     EventType = "WallBounce"     // ball bounced off a side or the top
	LifeLost       EventType = "LifeLost"       // ball left through the bottom
	LevelStarted   EventType = "LevelStarted"   // Data: int level index
	StateChanged   EventType = "StateChanged"   // Data: state.Change
	CommandApplied EventType = "CommandApplied" // Data: input.Stamped
)
