package ecs

// System represents a behavior that operates on entities with specific components.
// Systems may declare Query and Singleton fields, which the Scheduler
// initializes, as well as plain fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
