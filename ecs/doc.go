// Package ecs provides ECS adapters for rowan's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges rowan interaction
// events (hover, click, drag, wheel, keys, focus) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them. Only nodes with a non-zero EntityID are forwarded.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	manager.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
