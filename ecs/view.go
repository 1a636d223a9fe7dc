package ecs

import (
	"iter"
	"reflect"
	"slices"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components.
// The type T should be a struct with embedded pointer fields for each component type.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag.
// An EntityId field, if present, receives the id of the entity being visited.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	idOffset    uintptr
	hasId       bool
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is dead or missing any required component.
// Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.Alive(id) {
		return false
	}

	structPtr := unsafe.Pointer(ptr)
	for i, componentType := range v.types {
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])

		var component unsafe.Pointer
		if store, ok := v.storage.stores[componentType]; ok {
			component = store.pointer(id)
		}

		if component == nil && !v.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = component
	}

	if v.hasId {
		*(*EntityId)(unsafe.Add(structPtr, v.idOffset)) = id
	}
	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// candidates picks the smallest set of entities that could match: the
// members of the rarest required component, or every live entity when all
// components are optional. The slice is a copy, so entities may be deleted
// while iterating.
func (v *View[T]) candidates() []EntityId {
	var smallest []EntityId
	required := false

	for i, componentType := range v.types {
		if v.optional[i] {
			continue
		}

		store, ok := v.storage.stores[componentType]
		if !ok {
			return nil
		}

		ids := store.entities()
		if !required || len(ids) < len(smallest) {
			smallest = ids
			required = true
		}
	}

	if !required {
		return v.storage.liveEntities()
	}
	return slices.Clone(smallest)
}

// Iter returns an iterator over all entities that have all the required components for this view.
// The iterator yields (EntityId, T) pairs where T is the populated view struct.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var result T
		for _, id := range v.candidates() {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}
