package hatch

// oneShot holds a value that can be taken out exactly once.
//
// Components carrying a payload share the slot between all copies the
// storage makes of them. Taking the value through one copy empties it for
// every other copy, which is what makes consuming a payload a move and not
// a read.
type oneShot[T any] struct {
	value *T
}

func newOneShot[T any](value T) *oneShot[T] {
	return &oneShot[T]{value: &value}
}

func (o *oneShot[T]) take() (T, bool) {
	if o == nil || o.value == nil {
		var zero T
		return zero, false
	}

	value := *o.value
	o.value = nil
	return value, true
}
