package hangar

import (
	"iter"
	"slices"
)

// Hangar is a bounded, ordered collection of parked vehicles. The capacity is
// derived from the drawing area it is rendered into and never changes.
//
// A Hangar is not safe for concurrent use.
type Hangar[T Element[T]] struct {
	places   []T // grows on Add, never preallocated
	maxCount int
	width    int
	height   int
}

func New[T Element[T]](width, height int) *Hangar[T] {
	maxCount := maxPlaces(width, height)
	return &Hangar[T]{
		maxCount: maxCount,
		width:    width,
		height:   height,
	}
}

func (h *Hangar[T]) Capacity() int { return h.maxCount }
func (h *Hangar[T]) Len() int      { return len(h.places) }
func (h *Hangar[T]) Width() int    { return h.width }
func (h *Hangar[T]) Height() int   { return h.height }

// Add parks v in the next free place and returns its index.
func (h *Hangar[T]) Add(v T) (int, error) {
	if len(h.places) == h.maxCount {
		return 0, ErrCapacityExceeded
	}
	if h.contains(v) {
		return 0, ErrDuplicateElement
	}
	h.places = append(h.places, v)
	return len(h.places) - 1, nil
}

// RemoveAt takes the vehicle at index out of the hangar. Vehicles behind it
// move up one place.
func (h *Hangar[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(h.places) {
		var zero T
		return zero, &IndexNotFoundError{Index: index, Count: len(h.places)}
	}
	v := h.places[index]
	h.places = slices.Delete(h.places, index, index+1)
	return v, nil
}

// GetAt returns the vehicle at index, or false if there is none.
func (h *Hangar[T]) GetAt(index int) (T, bool) {
	if index < 0 || index >= len(h.places) {
		var zero T
		return zero, false
	}
	return h.places[index], true
}

// Sort reorders the hangar in place. The sort is not stable.
func (h *Hangar[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(h.places, cmp)
}

// Draw renders the place markings and then every vehicle. Each vehicle's
// position is updated to match its current index before it draws itself.
func (h *Hangar[T]) Draw(s Surface) {
	drawMarking(s, h.width, h.height)
	for i, v := range h.places {
		x, y := PlacePosition(i)
		v.SetPosition(x, y, h.width, h.height)
		v.DrawTransport(s)
	}
}

// Iterator returns a new cursor over the current contents.
func (h *Hangar[T]) Iterator() *Iterator[T] {
	return newIterator(h.places)
}

// All yields every vehicle in storage order.
func (h *Hangar[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := h.Iterator()
		for it.MoveNext() {
			v, _ := it.Current()
			if !yield(v) {
				return
			}
		}
	}
}

func (h *Hangar[T]) contains(v T) bool {
	for _, p := range h.places {
		if p.Equal(v) {
			return true
		}
	}
	return false
}
