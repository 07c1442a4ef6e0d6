package keyclick_test

import (
	"strings"
	"testing"

	"github.com/b97tsk/async"
	"github.com/b97tsk/keyclick"
	"github.com/stretchr/testify/assert"
)

func TestEcho(t *testing.T) {
	assert := assert.New(t)

	var myExecutor async.Executor

	myExecutor.Autorun(myExecutor.Run)

	var b keyclick.Bridge[byte]

	var buf strings.Builder

	var done bool

	myExecutor.Spawn(async.Block(
		keyclick.Echo(&myExecutor, &b, &buf),
		async.Do(func() { done = true }),
	))

	for _, ch := range []byte("hi") {
		assert.True(b.Deliver(ch))
	}

	assert.False(done, "echo must keep reading until interrupted")
	assert.True(b.Deliver(keyclick.CtrlC))
	assert.True(done)

	assert.Equal("Read a character! h\nRead a character! i\nInterrupt!\n", buf.String())

	// The loop is over; nothing is registered anymore.
	assert.False(b.Deliver('x'))
}

func TestEchoStopped(t *testing.T) {
	assert := assert.New(t)

	var myExecutor async.Executor

	myExecutor.Autorun(myExecutor.Run)

	var b keyclick.Bridge[byte]

	var buf strings.Builder

	var done bool

	myExecutor.Spawn(async.Block(
		keyclick.Echo(&myExecutor, &b, &buf),
		async.Do(func() { done = true }),
	))

	assert.True(b.Deliver('a'))
	assert.True(b.Stop())
	assert.True(done)

	assert.Equal("Read a character! a\nInterrupt!\n", buf.String())
}
