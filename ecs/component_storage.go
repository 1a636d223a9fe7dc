package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// componentStore is a type-erased sparse set holding every instance of one
// component type.
type componentStore interface {
	add(id EntityId, value any) bool
	remove(id EntityId)
	has(id EntityId) bool
	get(id EntityId) any
	pointer(id EntityId) unsafe.Pointer
	entities() []EntityId
}

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS worlds to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStore
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStore),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStore {
		return newDenseStore[T]()
	}
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStore {
	return r.factories[t]
}

// denseStore keeps components packed in a slice. The sparse index maps an
// entity to its position in values; removal swaps the last element into
// the hole.
type denseStore[T any] struct {
	index  *intmap.Map[EntityId, int]
	ids    []EntityId
	values []T
}

func newDenseStore[T any]() *denseStore[T] {
	return &denseStore[T]{
		index: intmap.New[EntityId, int](64),
	}
}

func (cs *denseStore[T]) add(id EntityId, item any) bool {
	var value T
	if ptr, ok := item.(*T); ok {
		value = *ptr
	} else if val, ok := item.(T); ok {
		value = val
	} else {
		return false
	}

	if pos, ok := cs.index.Get(id); ok {
		cs.values[pos] = value
		return true
	}

	cs.index.Put(id, len(cs.values))
	cs.ids = append(cs.ids, id)
	cs.values = append(cs.values, value)
	return true
}

func (cs *denseStore[T]) remove(id EntityId) {
	pos, ok := cs.index.Get(id)
	if !ok {
		return
	}

	last := len(cs.values) - 1
	if pos != last {
		cs.ids[pos] = cs.ids[last]
		cs.values[pos] = cs.values[last]
		cs.index.Put(cs.ids[pos], pos)
	}

	var zero T
	cs.values[last] = zero
	cs.ids = cs.ids[:last]
	cs.values = cs.values[:last]
	cs.index.Del(id)
}

func (cs *denseStore[T]) has(id EntityId) bool {
	_, ok := cs.index.Get(id)
	return ok
}

func (cs *denseStore[T]) get(id EntityId) any {
	pos, ok := cs.index.Get(id)
	if !ok {
		return nil
	}
	return &cs.values[pos]
}

func (cs *denseStore[T]) pointer(id EntityId) unsafe.Pointer {
	pos, ok := cs.index.Get(id)
	if !ok {
		return nil
	}
	return unsafe.Pointer(&cs.values[pos])
}

func (cs *denseStore[T]) entities() []EntityId {
	return cs.ids
}
