package hangar

// Iterator walks a read-only view of a hangar's places. It sits before the
// first element until MoveNext is called, and falls back there once the end is
// reached. Mutating the hangar during a walk is not detected.
type Iterator[T any] struct {
	items  []T
	cursor int
}

func newIterator[T any](items []T) *Iterator[T] {
	return &Iterator[T]{items: items, cursor: -1}
}

func (it *Iterator[T]) MoveNext() bool {
	if it.cursor+1 < len(it.items) {
		it.cursor++
		return true
	}
	it.Reset()
	return false
}

func (it *Iterator[T]) Current() (T, error) {
	if it.cursor < 0 || it.cursor >= len(it.items) {
		var zero T
		return zero, ErrNoCurrent
	}
	return it.items[it.cursor], nil
}

func (it *Iterator[T]) Reset() {
	it.cursor = -1
}
