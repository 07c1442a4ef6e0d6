package keyclick

import (
	"io"
	"testing"
	"time"
)

// A chanCompletion resolves into channels, for synchronizing with the
// polling goroutine.
type chanCompletion struct {
	values  chan byte
	stopped chan struct{}
}

func newChanCompletion() *chanCompletion {
	return &chanCompletion{
		values:  make(chan byte, 1),
		stopped: make(chan struct{}),
	}
}

func (c *chanCompletion) Complete(v byte) { c.values <- v }
func (c *chanCompletion) Cancel()         { close(c.stopped) }

func recvByte(t *testing.T, ch <-chan byte) byte {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a delivered byte")
		return 0
	}
}

func TestKeyboardPoll(t *testing.T) {
	var b Bridge[byte]

	pr, pw := io.Pipe()
	defer pw.Close()

	k := newKeyboard(pr, &b)

	c1 := newChanCompletion()
	b.Register(c1)

	if _, err := pw.Write([]byte{'x'}); err != nil {
		t.Fatal(err)
	}
	if got := recvByte(t, c1.values); got != 'x' {
		t.Errorf("got %q, want %q", got, 'x')
	}

	c2 := newChanCompletion()
	b.Register(c2)

	if _, err := pw.Write([]byte{CtrlC}); err != nil {
		t.Fatal(err)
	}
	if got := recvByte(t, c2.values); got != CtrlC {
		t.Errorf("got %#x, want %#x", got, CtrlC)
	}

	// The interrupt byte ends the poller.
	k.Wait()

	if err := k.Close(); err != nil {
		t.Error(err)
	}
}

func TestKeyboardReadError(t *testing.T) {
	var b Bridge[byte]

	pr, pw := io.Pipe()

	k := newKeyboard(pr, &b)

	c := newChanCompletion()
	b.Register(c)

	// A failing read must not strand the pending consumer.
	pw.Close()

	select {
	case <-c.stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("pending consumer was not resolved on read error")
	}

	k.Wait()
}
