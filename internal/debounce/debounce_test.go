package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	done  chan struct{}
}

func newRecorder() *recorder { return &recorder{done: make(chan struct{}, 8)} }

func (r *recorder) fn(v string) func() {
	return func() {
		r.mu.Lock()
		r.calls = append(r.calls, v)
		r.mu.Unlock()
		r.done <- struct{}{}
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestNewestCallWins(t *testing.T) {
	d := New(20 * time.Millisecond)
	r := newRecorder()

	d.Call(r.fn("a"))
	d.Call(r.fn("ab"))
	d.Call(r.fn("abc"))

	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"abc"}, r.snapshot())
	assert.False(t, d.Pending())
}

func TestWaitsForQuietPeriod(t *testing.T) {
	d := New(50 * time.Millisecond)
	r := newRecorder()

	d.Call(r.fn("x"))
	assert.True(t, d.Pending())
	assert.Empty(t, r.snapshot())

	<-r.done
	assert.Equal(t, []string{"x"}, r.snapshot())
}

func TestFlushRunsImmediately(t *testing.T) {
	d := New(time.Hour)
	r := newRecorder()

	d.Call(r.fn("now"))
	d.Flush()
	require.Equal(t, []string{"now"}, r.snapshot())

	d.Flush()
	assert.Len(t, r.snapshot(), 1)
}

func TestStopDropsPending(t *testing.T) {
	d := New(10 * time.Millisecond)
	r := newRecorder()

	d.Call(r.fn("dropped"))
	d.Stop()
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, r.snapshot())
}
