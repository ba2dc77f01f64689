// Package kvstore is a key-value store written once against capability
// interfaces and runnable under every representation. The variants differ in
// where the data lives (an injected backing cell, the threaded state) and in
// which capabilities they demand; the calling code differs in nothing but
// the capability value it passes.
package kvstore

import (
	"fmt"

	"github.com/on-the-ground/cap_able_go/caps"
)

// ErrNoSuchKey is an error indicating that the key was not found.
var ErrNoSuchKey = fmt.Errorf("key not found")

// Store is the key-value abstraction every variant implements. Operations
// return computations; nothing observable happens until the caller peels
// them with the owning representation's run function.
type Store[K comparable, V any] interface {
	Put(key K, value V) caps.Comp[caps.Unit]
	Get(key K) caps.Comp[caps.Option[V]]
	Delete(key K) caps.Comp[caps.Unit]
}
