// Command keyclick-echo echoes console keystrokes until Ctrl-C or SIGINT.
//
// Keystrokes are read in raw mode, so Ctrl-C usually arrives as the byte
// 0x03 and ends the echo loop from inside; a SIGINT sent from elsewhere
// (kill -INT) cancels the loop from outside instead. Both paths print
// "Interrupt!" and exit.
package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"sync"

	"github.com/b97tsk/async"
	"github.com/b97tsk/keyclick"
)

func main() {
	log.SetFlags(0)

	var wg sync.WaitGroup

	var myExecutor async.Executor

	myExecutor.Autorun(func() { wg.Go(myExecutor.Run) })

	var keys keyclick.Bridge[byte]

	keyboard, err := keyclick.OpenKeyboard(&keys)
	if err != nil {
		log.Fatalf("keyclick-echo: %v", err)
	}
	defer keyboard.Close()

	var interrupts keyclick.Bridge[struct{}]

	handler := keyclick.InstallInterrupts(&interrupts)
	defer handler.Uninstall()

	// The terminal is in raw mode; bare newlines would stair-step.
	stdout := &crlfWriter{w: os.Stdout}

	done := make(chan struct{})

	myExecutor.Spawn(async.Block(
		async.Select(
			keyclick.Echo(&myExecutor, &keys, stdout),
			keyclick.Read(&myExecutor, &interrupts, func(struct{}, bool) async.Task {
				return async.Do(func() { io.WriteString(stdout, "Interrupt!\n") })
			}),
		),
		async.Do(func() { close(done) }),
	))

	<-done
	wg.Wait()
}

// A crlfWriter rewrites LF to CRLF on the way to a raw-mode terminal.
type crlfWriter struct {
	w io.Writer
}

func (cw *crlfWriter) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			m, err := cw.w.Write(p)
			return n + m, err
		}
		m, err := cw.w.Write(p[:i])
		n += m
		if err != nil {
			return n, err
		}
		if _, err := cw.w.Write([]byte{'\r', '\n'}); err != nil {
			return n, err
		}
		n++ // The LF is consumed; the inserted CR is not counted.
		p = p[i+1:]
	}
	return n, nil
}
