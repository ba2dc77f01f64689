package caps

// Unit is the result of computations run for their effect only.
type Unit struct{}

// Option is an optional value. Lookups yield None rather than a zero value
// that could be mistaken for stored data.
type Option[V any] struct {
	value V
	some  bool
}

// Some wraps a present value.
func Some[V any](v V) Option[V] {
	return Option[V]{value: v, some: true}
}

// None is the absent value.
func None[V any]() Option[V] {
	return Option[V]{}
}

func (o Option[V]) IsSome() bool { return o.some }

func (o Option[V]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.some
}

// OrElse returns the value when present, fallback otherwise.
func (o Option[V]) OrElse(fallback V) V {
	if o.some {
		return o.value
	}
	return fallback
}
