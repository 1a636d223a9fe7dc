package ecs

import (
	"reflect"
	"slices"
	"unsafe"
)

// Storage is the main ECS storage interface
type Storage struct {
	registry   *ComponentRegistry
	stores     map[reflect.Type]componentStore
	slots      []entitySlot
	free       []uint32
	live       int
	singletons map[reflect.Type]reflect.Value
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]componentStore),
		singletons: make(map[reflect.Type]reflect.Value),
	}
}

// Spawn creates a new entity with the provided components. Components may be
// passed by value or by pointer; pointers are copied.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	stores := make([]componentStore, len(components))
	for i, component := range components {
		stores[i] = s.store(componentType(component))
	}

	id := s.allocate()
	for i, component := range components {
		stores[i].add(id, component)
	}
	return id
}

// Delete removes all data related to the entity ID. Deleting a stale or
// unknown ID is a no-op.
func (s *Storage) Delete(id EntityId) {
	if !s.Alive(id) {
		return
	}

	for _, store := range s.stores {
		store.remove(id)
	}

	index := id.Index()
	s.slots[index].live = false
	s.slots[index].generation++
	s.free = append(s.free, index)
	s.live--
}

// Alive reports whether id refers to an entity that has not been deleted.
func (s *Storage) Alive(id EntityId) bool {
	index := id.Index()
	if int(index) >= len(s.slots) {
		return false
	}
	slot := s.slots[index]
	return slot.live && slot.generation == id.Generation()
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.live
}

// AddComponent attaches a component to an existing entity, replacing any
// component of the same type.
func (s *Storage) AddComponent(id EntityId, component any) {
	if !s.Alive(id) {
		return
	}
	s.store(componentType(component)).add(id, component)
}

// RemoveComponent detaches the component of the given type. An entity left
// with no components is deleted.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	store, ok := s.stores[compType]
	if !ok || !s.Alive(id) {
		return
	}
	store.remove(id)

	for _, other := range s.stores {
		if other.has(id) {
			return
		}
	}
	s.Delete(id)
}

// GetComponent returns a pointer to the component for the given entity, or
// nil when the entity does not have one.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	store, ok := s.stores[compType]
	if !ok || !s.Alive(id) {
		return nil
	}
	return store.get(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return s.Alive(id) && store.has(id)
}

// AddSingleton stores value as the single instance of its type. Adding a
// singleton that already exists overwrites it in place, so pointers handed
// out earlier stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if existing, ok := s.singletons[v.Type()]; ok {
		existing.Elem().Set(v)
		return
	}

	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = ptr
}

// ReadSingleton points *target at the stored singleton. target must be a
// pointer to a pointer, e.g. `var state *GameState; storage.ReadSingleton(&state)`.
func (s *Storage) ReadSingleton(target any) bool {
	t := reflect.ValueOf(target)
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	ptr, ok := s.singletons[t.Elem().Type().Elem()]
	if !ok {
		return false
	}
	t.Elem().Set(ptr)
	return true
}

func (s *Storage) singletonPointer(t reflect.Type) unsafe.Pointer {
	ptr, ok := s.singletons[t]
	if !ok {
		return nil
	}
	return ptr.UnsafePointer()
}

func (s *Storage) allocate() EntityId {
	s.live++
	if n := len(s.free); n > 0 {
		index := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[index].live = true
		return NewEntityId(s.slots[index].generation, index)
	}

	index := uint32(len(s.slots))
	s.slots = append(s.slots, entitySlot{generation: 1, live: true})
	return NewEntityId(1, index)
}

// store returns the sparse set for t, creating it on first use.
func (s *Storage) store(t reflect.Type) componentStore {
	if store, ok := s.stores[t]; ok {
		return store
	}

	factory := s.registry.getFactory(t)
	if factory == nil {
		panic("component type " + t.String() + " not registered")
	}
	store := factory()
	s.stores[t] = store
	return store
}

// liveEntities returns every live entity in slot order.
func (s *Storage) liveEntities() []EntityId {
	ids := make([]EntityId, 0, s.live)
	for index, slot := range s.slots {
		if slot.live {
			ids = append(ids, NewEntityId(slot.generation, uint32(index)))
		}
	}
	return ids
}

// componentType returns the value type of a component, panicking on kinds
// that cannot be stored by value.
func componentType(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("components cannot be nil")
	}

	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	if slices.Contains([]reflect.Kind{reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func}, compType.Kind()) {
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return compType
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent is a typed GetComponent. It returns nil when the entity does
// not have a T.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	component, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return component
}
