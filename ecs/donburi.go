package ecs

import (
	"github.com/phanxgames/rowan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for rowan interaction events.
var InteractionEventType = events.NewEventType[rowan.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued until InteractionEventType.ProcessEvents (or
// events.ProcessAllEvents) runs.
func NewDonburiStore(world donburi.World) rowan.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event rowan.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
