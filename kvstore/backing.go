package kvstore

// Backing is a mutable cell the direct store keeps its data in. Absent keys
// are reported through the ok flag, never as an error.
type Backing[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Set(key K, value V)
	Delete(key K)
}

// FallibleBacking is a backing whose operations can fail, as real storage
// engines do. The direct raising store turns these errors into raised
// computations.
type FallibleBacking[K comparable, V any] interface {
	Get(key K) (value V, ok bool, err error)
	Set(key K, value V) error
	Delete(key K) error
}

// PlainBacking adapts an infallible Backing to the FallibleBacking shape.
type PlainBacking[K comparable, V any] struct {
	Backing[K, V]
}

func (b PlainBacking[K, V]) Get(key K) (V, bool, error) {
	v, ok := b.Backing.Get(key)
	return v, ok, nil
}

func (b PlainBacking[K, V]) Set(key K, value V) error {
	b.Backing.Set(key, value)
	return nil
}

func (b PlainBacking[K, V]) Delete(key K) error {
	b.Backing.Delete(key)
	return nil
}
