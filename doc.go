// Package keyclick bridges push-style input callbacks into one-shot async
// read operations.
//
// A keyboard, or any other device that announces events by invoking
// a callback, is a poor match for code that wants to ask for the next event
// and suspend until it arrives.
// This package connects the two with a [Bridge]: a single-slot, lock-free
// hand-off structure that holds at most one registered consumer at a time.
// The push side resolves whoever is registered; the pull side is an async
// [github.com/b97tsk/async.Task] that registers itself, yields, and resumes
// when resolved.
//
// # The Bridge
//
// A [Bridge] has one slot, manipulated only by atomic exchanges.
// The push side calls [Bridge.Deliver] to resolve the registered consumer
// with a value, or [Bridge.Stop] to resolve it with a stopped outcome.
// An event arriving while no consumer is registered is dropped, not queued;
// a Bridge supports "give me the next event" semantics, never "give me every
// event".
// Registering a consumer while another is still registered is a programming
// error and panics.
//
// When Deliver and Stop race against one registered consumer, the first
// exchange wins and the loser observes an empty slot.
// A registered [PendingCompletion] is therefore resolved exactly once,
// through exactly one of its two methods, unless the consumer withdraws
// first with [Bridge.Unregister].
//
// # Reading
//
// [Read] produces the pull side: a task that awaits the next event pushed
// into a Bridge and then makes a transition to a follow-up task.
// The per-operation bookkeeping fans event delivery into the executor with
// [github.com/b97tsk/async.Executor.Spawn], so the push side may run on any
// goroutine, including signal-handling ones.
// If the coroutine running a read is canceled while the operation is
// outstanding, the operation withdraws from the Bridge and neither
// completion method fires.
//
// # Devices
//
// [OpenKeyboard] starts the push side for a console: a goroutine that reads
// standard input in raw mode, one byte at a time, delivering each byte into
// a Bridge.
// [InstallInterrupts] does the same for the process's interrupt signal,
// feeding a second Bridge so that an interrupt can be awaited like any other
// event, typically as the canceling branch of
// a [github.com/b97tsk/async.Select].
//
// [Echo], and the program in cmd/keyclick-echo, show the intended shape:
// a loop of one read operation at a time, terminated by a stopped outcome or
// by the interrupt byte.
package keyclick
