//go:build unix

package waittimeout

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
)

// waiter is one in-flight wait call: the pipe whose write end gets poked
// once the child's status is known, and the status itself. The status
// field is written at most once, under the registry lock.
type waiter struct {
	pipe   pipe
	status *ExitStatus
}

// registry is the process-wide coordination point between SIGCHLD
// delivery and every in-flight wait call. SIGCHLD only says "some child
// changed state", so on each wakeup the registry re-probes every
// unresolved child, whichever goroutine happens to be the one that
// observed the wakeup.
type registry struct {
	// wake is written by the signal forwarder and polled by every
	// blocked waiter. Whoever drains it resolves on behalf of everyone.
	wake pipe

	mu      sync.Mutex
	waiters map[int]*waiter
}

var global struct {
	once sync.Once
	reg  *registry
	err  error
}

// globalRegistry initializes the process-wide state on first use. The
// registry and its SIGCHLD subscription live for the rest of the
// process: signal delivery cannot be safely torn down mid-flight. An
// initialization error is sticky and reported by every later call.
func globalRegistry() (*registry, error) {
	global.once.Do(func() {
		wake, err := newPipe()
		if err != nil {
			global.err = fmt.Errorf("sigchld setup: %w", err)
			return
		}
		reg := &registry{
			wake:    wake,
			waiters: make(map[int]*waiter),
		}

		// The runtime owns the actual signal handler and hands
		// deliveries to this channel. The forwarder does exactly one
		// thing per delivery: a non-blocking one-byte write to the wake
		// pipe. All real work happens in the waiters' own goroutines,
		// never here.
		ch := make(chan os.Signal, 16)
		signal.Notify(ch, unix.SIGCHLD)
		go func() {
			for range ch {
				reg.wake.notify()
			}
		}()

		global.reg = reg
	})
	return global.reg, global.err
}

// subscribe checks whether pid has already exited and, if not, registers
// a fresh waiter for it. The probe and the insert share one critical
// section: a SIGCHLD that fired before we were in the map is caught by
// the probe, and one that fires after is caught because we are in the
// map. A waiter registered for a pid that already has one overwrites it;
// concurrent waits on the same pid are documented as unsupported.
func (r *registry) subscribe(pid int) (*ExitStatus, *waiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, err := tryReap(pid)
	if status != nil || err != nil {
		return status, nil, err
	}
	p, err := newPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("notification channel: %w", err)
	}
	w := &waiter{pipe: p}
	r.waiters[pid] = w
	return nil, w, nil
}

// resolvePending re-probes every unresolved child and pokes the pipes of
// those that have now exited. Called by whichever waiter drained the
// wake pipe; correctness does not depend on which one that is. A probe
// error here is left for the owning waiter to rediscover.
func (r *registry) resolvePending() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for pid, w := range r.waiters {
		if w.status != nil {
			continue
		}
		status, err := tryReap(pid)
		if err != nil || status == nil {
			continue
		}
		w.status = status
		w.pipe.notify()
	}
}

// unsubscribe removes the waiter's registry entry and returns whatever
// status was recorded for it: nil if the call is giving up on a timeout.
// Called on every exit path of a subscribed wait.
func (r *registry) unsubscribe(pid int, w *waiter) *ExitStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.waiters[pid] == w {
		delete(r.waiters, pid)
	}
	return w.status
}
