package ecs

// EntityId packs a slot index (lower 32 bits) with the generation of that
// slot (upper 32 bits). Generations start at 1, so the zero EntityId never
// refers to a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a generation and slot index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

type entitySlot struct {
	generation uint32
	live       bool
}
