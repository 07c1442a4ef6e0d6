package keyclick

import (
	"os"
	"os/signal"
)

// Interrupts forwards the process's interrupt signal into a [Bridge], so
// that an interrupt can be awaited like any other event.
//
// An interrupt arriving while no consumer is registered is dropped, like any
// other bridged event.
type Interrupts struct {
	bridge *Bridge[struct{}]
	ch     chan os.Signal
	done   chan struct{}
}

// InstallInterrupts subscribes to [os.Interrupt] and starts forwarding each
// delivery into b.
func InstallInterrupts(b *Bridge[struct{}]) *Interrupts {
	h := &Interrupts{
		bridge: b,
		ch:     make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
	signal.Notify(h.ch, os.Interrupt)
	go h.forward()
	return h
}

func (h *Interrupts) forward() {
	defer close(h.done)
	for range h.ch {
		h.bridge.Deliver(struct{}{})
	}
}

// Uninstall undoes the subscription and waits for the forwarding goroutine
// to exit. The process's default interrupt behavior is restored.
func (h *Interrupts) Uninstall() {
	signal.Stop(h.ch)
	close(h.ch)
	<-h.done
}
