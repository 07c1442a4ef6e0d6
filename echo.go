package keyclick

import (
	"fmt"
	"io"

	"github.com/b97tsk/async"
)

// Echo returns a task that reads bytes pushed into b, one at a time, and
// echoes each one to w, until a stopped outcome or [CtrlC] breaks the loop.
//
// Each iteration arms a fresh one-shot [Read]; the next read is registered
// only after the previous one resolved, so at most one consumer is ever
// outstanding on b.
func Echo(e *async.Executor, b *Bridge[byte], w io.Writer) async.Task {
	return async.Loop(Read(e, b, func(ch byte, stopped bool) async.Task {
		return func(co *async.Coroutine) async.Result {
			if stopped || ch == CtrlC {
				fmt.Fprintln(w, "Interrupt!")
				return co.Break()
			}
			fmt.Fprintf(w, "Read a character! %c\n", ch)
			return co.End()
		}
	}))
}
