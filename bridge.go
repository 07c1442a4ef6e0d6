package keyclick

import "sync/atomic"

// A PendingCompletion represents one registered consumer of the next event
// on a [Bridge].
//
// A [Bridge] invokes exactly one of the two methods, exactly once, unless
// the consumer withdraws first with [Bridge.Unregister].
// Either method may be invoked from any goroutine and must not block.
type PendingCompletion[T any] interface {
	// Complete resolves the consumer with a value.
	Complete(v T)
	// Cancel resolves the consumer with a stopped outcome.
	Cancel()
}

// A Bridge is a single-slot hand-off structure connecting a push-style event
// source to one pull-style consumer at a time.
//
// The zero Bridge is empty and ready for use.
// A Bridge may be reused for any number of register/resolve cycles, but only
// one consumer may be registered at any moment.
//
// All methods are non-blocking, safe for concurrent use, and perform at most
// one atomic exchange; when two of them race for the same registered
// consumer, the first exchange wins and the other observes an empty slot.
type Bridge[T any] struct {
	slot atomic.Pointer[registration[T]]
}

// registration boxes the interface value so that the slot can be a typed
// atomic pointer.
type registration[T any] struct {
	pc PendingCompletion[T]
}

// Register installs pc as the current consumer of the next event.
//
// The slot must be empty.
// Registering while another consumer is still registered means two consumers
// raced to await the same Bridge, which the single-slot contract forbids;
// Register panics rather than overwrite the pending one.
func (b *Bridge[T]) Register(pc PendingCompletion[T]) {
	if pc == nil {
		panic("keyclick: Register called with nil completion")
	}
	if prev := b.slot.Swap(&registration[T]{pc}); prev != nil {
		panic("keyclick: a completion is already registered")
	}
}

// Unregister withdraws pc without resolving it, and reports whether pc was
// still the registered consumer.
//
// A false return means pc was never registered, already resolved, or is
// being resolved concurrently; in the last case one of pc's methods fires
// normally.
func (b *Bridge[T]) Unregister(pc PendingCompletion[T]) bool {
	r := b.slot.Load()
	if r == nil || r.pc != pc {
		return false
	}
	return b.slot.CompareAndSwap(r, nil)
}

// Deliver resolves the registered consumer, if any, with v, and reports
// whether a consumer was resolved.
//
// If no consumer is registered, v is dropped.
// There is no buffering; an event nobody asked for is lost.
func (b *Bridge[T]) Deliver(v T) bool {
	r := b.slot.Swap(nil)
	if r == nil {
		return false
	}
	r.pc.Complete(v)
	return true
}

// Stop resolves the registered consumer, if any, with a stopped outcome, and
// reports whether a consumer was resolved.
//
// If no consumer is registered, the stop is dropped.
func (b *Bridge[T]) Stop() bool {
	r := b.slot.Swap(nil)
	if r == nil {
		return false
	}
	r.pc.Cancel()
	return true
}
