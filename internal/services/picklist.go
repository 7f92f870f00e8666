package services

// PickList is an insertion-ordered list of choices keyed for
// insert-if-absent de-duplication. Positions are 1-based.
type PickList[T any] struct {
	index map[string]int
	items []T
}

// NewPickList creates an empty PickList
func NewPickList[T any]() *PickList[T] {
	return &PickList[T]{index: make(map[string]int)}
}

// Add appends item under key unless key was already added.
// It reports whether the item was appended.
func (l *PickList[T]) Add(key string, item T) bool {
	if _, ok := l.index[key]; ok {
		return false
	}
	l.items = append(l.items, item)
	l.index[key] = len(l.items)
	return true
}

// Len returns the number of choices
func (l *PickList[T]) Len() int {
	return len(l.items)
}

// At returns the choice at 1-based position n
func (l *PickList[T]) At(n int) (T, bool) {
	if n < 1 || n > len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[n-1], true
}

// Items returns the choices in insertion order
func (l *PickList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
