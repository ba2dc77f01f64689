// Package caps provides capability-polymorphic computations for Go.
//
// Cap-able Go separates what an effectful program needs, its capabilities,
// from how those needs are discharged, its representation. Logic is written
// once against capability interfaces (sequencing, state, failure) and peeled
// later by whichever representation the caller picked.
//
// # What is a capability?
//
// A capability is an interface describing one effect a computation may use:
//   - Sequencer: inject values, sequence dependent steps,
//   - Stateful: read and replace a single state cell,
//   - Raiser: abort with an error.
//
// StatefulRaiser combines them all.
//
// # Why pass capabilities as values?
//
// Go has no sum types and no higher-kinded generics, but it does have
// interfaces, generics over plain types, and explicit arguments. Cap-able Go
// leans on those: every capability is an ordinary value passed to the
// function that needs it. A function asking for a Stateful cannot run against
// a representation without state, and the compiler says so.
//
// Benefits include:
//   - One body of logic, many executions (pure value, state threading, failure)
//   - Requirements visible in the signature, not discovered at run time
//   - No global handler registry, no context smuggling
//
// # How does it work?
//
// Representations live in subpackages (identity, threaded, fallible,
// stacked, traced). Each implements the capability interfaces over its own
// erased payload and exports run functions that peel a Comp back into plain
// Go values. The typed front ends in this package (Pure, Chain, Map,
// GetState, Raise, ...) recover static types at the boundary.
//
// Computations are descriptions. Values cross representations never: a Comp
// built by one representation and peeled by another panics with the name of
// the representation that rejected it.
//
// Example:
//
//	func bump(fx caps.Stateful) caps.Comp[int] {
//	    return caps.Chain(fx, caps.ModifyState(fx, func(n int) int { return n + 1 }),
//	        func(caps.Unit) caps.Comp[int] { return caps.GetState[int](fx) })
//	}
//
//	v, s := threaded.Run(bump(threaded.Repr{}), 41) // v == 42, s == 42
package caps
