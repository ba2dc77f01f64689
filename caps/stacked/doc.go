// Package stacked builds combined representations by layering one capability
// over an inner representation, instead of hand-writing one representation
// per combination.
//
// Two layerings exist:
//   - FallibleOver: an inner computation of ok-or-error. Adds Raiser.
//   - ThreadedOver: a state function into an inner computation. Adds Stateful.
//
// Each comes in a second flavor (FallibleOverStateful, ThreadedOverRaiser)
// that forwards the inner representation's other capability through the new
// layer via Lift, yielding a full StatefulRaiser.
//
// # Layer order is semantics
//
// The same two capabilities stacked in opposite orders produce observably
// different programs. With the failure layer outermost
// (NewFallibleOverStateful over threaded.Repr{}), the state is threaded
// underneath every outcome, so a failed run still has a final state. With
// the state layer outermost (NewThreadedOverRaiser over fallible.Repr{}),
// each step's state is trapped inside the fallible payload, so a failed run
// has no state to return. RunFallibleOverThreaded and
// RunThreadedOverFallible peel the two stacks and make the difference
// visible in their results.
//
// Choosing an order is therefore part of a program's meaning, not plumbing.
// Pick the first stack for transactional logs that must survive failures,
// the second for all-or-nothing updates.
package stacked
