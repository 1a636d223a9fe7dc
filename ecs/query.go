package ecs

import "iter"

// Query is a View declared as a System field. The Scheduler initializes it
// on Register, so systems only need to name the component set they want.
type Query[T any] struct {
	view *View[T]
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the Query to a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
}

// Iter returns an iterator over entity IDs and component data.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustInit()
	return q.view.Iter()
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	q.mustInit()
	return q.view.Values()
}

// First returns the first matching entity. It is meant for components that
// only ever have one owner, such as the ball.
func (q *Query[T]) First() (T, bool) {
	q.mustInit()
	for value := range q.view.Values() {
		return value, true
	}
	var zero T
	return zero, false
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	q.mustInit()
	return q.view.Count()
}

func (q *Query[T]) mustInit() {
	if q.view == nil {
		panic("Query used before Init; register the system with a Scheduler first")
	}
}
