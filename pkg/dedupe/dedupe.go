package dedupe

import (
	"fmt"
	"sync"

	"landscout-backoffice/pkg/metrics"
)

type call struct {
	done chan struct{}
	val  interface{}
	err  error
}

// Deduplicator collapses concurrent calls for the same logical operation,
// identified by a caller-supplied string key, into one underlying execution.
// At most one call is in flight per key; every caller that joins while it is
// in flight observes the identical outcome, success or failure alike. The
// key is freed unconditionally when the call settles, so a follow-up Do
// (even an immediate retry after a failure) starts a fresh execution.
type Deduplicator struct {
	mu       sync.Mutex
	inflight map[string]*call
}

// New creates an empty deduplicator.
func New() *Deduplicator {
	return &Deduplicator{
		inflight: make(map[string]*call),
	}
}

// Do invokes op, or joins an in-flight invocation for the same key. It
// blocks until the shared invocation settles and returns its result. A
// panicking op settles as an error shared by every caller.
func (d *Deduplicator) Do(key string, op func() (interface{}, error)) (val interface{}, err error) {
	d.mu.Lock()
	if c, ok := d.inflight[key]; ok {
		d.mu.Unlock()
		metrics.DedupeCollapsedTotal.WithLabelValues(metrics.OperationLabel(key)).Inc()
		<-c.done
		return c.val, c.err
	}

	c := &call{done: make(chan struct{})}
	d.inflight[key] = c
	d.mu.Unlock()

	// The key must be freed and waiters woken on every exit path, panics
	// included; a wedged key would block all future Do calls for it. Freeing
	// before close(done) means a retry is never blocked by a settled call.
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("operation for key %q panicked: %v", key, r)
		}
		d.mu.Lock()
		delete(d.inflight, key)
		d.mu.Unlock()
		close(c.done)
		val, err = c.val, c.err
	}()

	c.val, c.err = op()
	return c.val, c.err
}

// InFlight reports whether an execution for key is currently pending.
func (d *Deduplicator) InFlight(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.inflight[key]
	return ok
}
