package keyclick

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// CtrlC is the interrupt byte a raw-mode console produces for Ctrl-C.
//
// A [Keyboard] delivers it like any other byte; deciding that it means
// "stop" is the consumer's business. See [Echo].
const CtrlC byte = 0x03

// A Keyboard polls an input device on its own goroutine, delivering each
// byte it reads into a [Bridge].
//
// The polling goroutine exits after delivering [CtrlC], or when a read
// fails. A failed read also resolves any registered consumer with a stopped
// outcome, so teardown cannot strand an awaiting coroutine.
type Keyboard struct {
	bridge  *Bridge[byte]
	input   io.Reader
	restore func() error
	done    chan struct{}
}

// OpenKeyboard puts the process's standard input into raw mode and starts
// polling it into b.
//
// Close restores the terminal. Note that Close does not interrupt a read in
// progress; the polling goroutine lingers until the next byte or read error.
func OpenKeyboard(b *Bridge[byte]) (*Keyboard, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("keyclick: entering raw mode: %w", err)
	}
	k := newKeyboard(os.Stdin, b)
	k.restore = func() error { return term.Restore(fd, oldState) }
	return k, nil
}

func newKeyboard(input io.Reader, b *Bridge[byte]) *Keyboard {
	k := &Keyboard{bridge: b, input: input, done: make(chan struct{})}
	go k.poll()
	return k
}

func (k *Keyboard) poll() {
	defer close(k.done)

	var buf [1]byte
	for {
		n, err := k.input.Read(buf[:])
		if n > 0 {
			ch := buf[0]
			k.bridge.Deliver(ch)
			if ch == CtrlC {
				return
			}
		}
		if err != nil {
			k.bridge.Stop()
			return
		}
	}
}

// Wait blocks until the polling goroutine has exited.
func (k *Keyboard) Wait() {
	<-k.done
}

// Close restores the terminal state, if [OpenKeyboard] changed it.
func (k *Keyboard) Close() error {
	if k.restore != nil {
		return k.restore()
	}
	return nil
}
