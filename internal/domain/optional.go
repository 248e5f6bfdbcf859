package domain

// Optional is a payload field that may be absent, present as null, or present
// with a value.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Set reports whether the field was present in the payload, null included.
func (o Optional[T]) Set() bool { return o.set }

func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether a non-null value is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}
