package keyclick

import "github.com/b97tsk/async"

// Read returns a task that awaits the next event pushed into b and then
// makes a transition to the task returned by f.
//
// f receives either the delivered value, or stopped == true when the
// consumer was resolved by [Bridge.Stop].
// Each run of the returned task registers a fresh one-shot operation; to
// read repeatedly, run it repeatedly, e.g. with [github.com/b97tsk/async.Loop].
//
// The returned task must be run by a coroutine spawned on e, and at most one
// read may be outstanding on b at a time.
// If the coroutine is canceled while the operation is outstanding, the
// operation withdraws from b and f is never called.
func Read[T any](e *async.Executor, b *Bridge[T], f func(v T, stopped bool) async.Task) async.Task {
	return func(co *async.Coroutine) async.Result {
		op := &readOperation[T]{executor: e, bridge: b}
		// The withdrawal hook must be in place before the operation
		// becomes visible to the push side; otherwise a cancelation
		// arriving in between could leave the slot occupied by
		// a consumer that is already gone.
		co.Cleanup(op)
		b.Register(op)
		return co.Await(&op.signal).Then(func(co *async.Coroutine) async.Result {
			return co.Transition(f(op.value, op.stopped))
		})
	}
}

// A readOperation is the per-read state: the [PendingCompletion] registered
// with the [Bridge], and the [github.com/b97tsk/async.Signal] that resumes
// the consumer.
//
// Complete and Cancel run on the push side's goroutine; they hand the
// outcome to the executor with Spawn, whose task owns op.value, op.stopped
// and the signal from then on.
type readOperation[T any] struct {
	executor *async.Executor
	bridge   *Bridge[T]
	signal   async.Signal
	value    T
	stopped  bool
}

func (op *readOperation[T]) Complete(v T) {
	op.executor.Spawn(async.Do(func() {
		op.value = v
		op.signal.Notify()
	}))
}

func (op *readOperation[T]) Cancel() {
	op.executor.Spawn(async.Do(func() {
		op.stopped = true
		op.signal.Notify()
	}))
}

// Cleanup implements [github.com/b97tsk/async.Cleanup]. It runs when the consuming coroutine
// resumes, ends or is canceled; withdrawing after the slot was already
// exchanged empty is a no-op.
func (op *readOperation[T]) Cleanup() {
	op.bridge.Unregister(op)
}
