// Package exec implements the Executor (C6) and dirty propagation (C7):
// the worker pool that drives a Plan through Propagate/Step phases,
// grounded on original_source/lib/oddf/src/simulator.cpp's
// PropagateCore/StepCore/RunWorkerThread trio.
package exec

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/tebeka/atexit"

	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/plan"
)

// Executor drives a Plan's Propagate and Step phases across a pool of
// worker goroutines plus the calling (owner) goroutine, which always
// participates in the work rather than merely waiting on it (§4.6).
type Executor struct {
	plan *plan.Plan
	cfg  Config
	log  logr.Logger

	mu    sync.Mutex
	cond  *sync.Cond
	state []workerState

	taskCursor      atomic.Int64
	steppableCursor atomic.Int64

	errMu sync.Mutex
	err   error

	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// New starts an Executor over p. The worker count comes from cfg.Workers
// when positive, otherwise from hardware concurrency (§4.6). New registers
// Shutdown with atexit (§4.8) so an unclean process exit still joins the
// pool.
func New(p *plan.Plan, cfg Config, log logr.Logger) *Executor {
	n := cfg.Workers
	if n < 1 {
		n = detectWorkerCount()
	}

	e := &Executor{
		plan:  p,
		cfg:   cfg,
		log:   log,
		state: make([]workerState, n),
	}
	e.cond = sync.NewCond(&e.mu)

	for i := range e.state {
		e.wg.Add(1)
		go e.runWorker(i)
	}

	atexit.Register(e.Shutdown)

	return e
}

// WorkerCount returns the number of background worker goroutines, not
// counting the owner.
func (e *Executor) WorkerCount() int { return len(e.state) }

func (e *Executor) runWorker(i int) {
	defer e.wg.Done()

	for {
		e.mu.Lock()
		for e.state[i] == stateIdle {
			e.cond.Wait()
		}
		s := e.state[i]
		e.mu.Unlock()

		switch s {
		case stateTerminating:
			return
		case statePropagating:
			e.safeRun(e.propagateCore)
		case stateStepping:
			e.safeRun(e.stepCore)
		}

		e.mu.Lock()
		e.state[i] = stateIdle
		e.mu.Unlock()
		e.cond.Broadcast()
	}
}

// safeRun recovers a panic raised mid-phase (e.g. Memory's out-of-range
// address) and records it as the phase's first error, so a fault in one
// steppable or component does not crash the process — it surfaces from
// the public Propagate/Step/Tick/AsyncReset call instead, after every
// participant has finished its share of the phase's remaining work.
func (e *Executor) safeRun(f func()) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				e.recordErr(err)
			} else {
				e.recordErr(fmt.Errorf("%v", r))
			}
		}
	}()
	f()
}

func (e *Executor) recordErr(err error) {
	e.errMu.Lock()
	if e.err == nil {
		e.err = err
	}
	e.errMu.Unlock()
}

// runPhase sets every worker's state to s, wakes them, runs work on the
// owner's own goroutine (the owner always participates), then blocks until
// every worker has returned to IDLE and returns the first error any
// participant recorded.
func (e *Executor) runPhase(s workerState, work func()) error {
	e.errMu.Lock()
	e.err = nil
	e.errMu.Unlock()

	e.mu.Lock()
	for i := range e.state {
		e.state[i] = s
	}
	e.mu.Unlock()
	e.cond.Broadcast()

	e.safeRun(work)

	e.mu.Lock()
	for !e.allIdleLocked() {
		e.cond.Wait()
	}
	e.mu.Unlock()

	e.errMu.Lock()
	defer e.errMu.Unlock()
	return e.err
}

func (e *Executor) allIdleLocked() bool {
	for _, s := range e.state {
		if s != stateIdle {
			return false
		}
	}
	return true
}

// Propagate advances the combinational state to a fixpoint consistent with
// the current register outputs (§4.6).
func (e *Executor) Propagate() error {
	e.taskCursor.Store(0)
	return e.runPhase(statePropagating, e.propagateCore)
}

func (e *Executor) propagateCore() {
	tasks := e.plan.Tasks
	for {
		idx := e.taskCursor.Add(1) - 1
		if idx >= int64(len(tasks)) {
			return
		}
		for _, c := range tasks[idx].Components {
			if !c.ClearIfOutdated() {
				continue
			}
			for _, b := range c.Blocks() {
				b.Evaluate()
			}
		}
	}
}

// Step advances sequential state by one clock (§4.6, §4.7).
func (e *Executor) Step() error {
	e.steppableCursor.Store(0)
	return e.runPhase(stateStepping, e.stepCore)
}

func (e *Executor) stepCore() {
	steppables := e.plan.Steppables
	for {
		idx := e.steppableCursor.Add(1) - 1
		if idx >= int64(len(steppables)) {
			return
		}
		s := steppables[idx]
		changed := s.Step()
		if changed || !e.cfg.DirtyOnChange {
			// The steppable's own component is marked too, so its
			// Evaluate republishes the newly latched state.
			if c, ok := e.plan.ComponentOf(s); ok {
				c.MarkOutdated()
			}
			e.markDownstreamOutdated(s)
		}
	}
}

// markDownstreamOutdated walks every output of b to the inputs it drives,
// and marks the component owning each such input's block outdated — the
// conservative rule from §4.7: a subscriber's whole component is marked,
// regardless of whether that particular block's Evaluate actually reads
// the changed value.
func (e *Executor) markDownstreamOutdated(b block.Block) {
	for _, out := range b.Outputs() {
		for _, in := range out.Subscribers() {
			owner, ok := in.Owner.(block.Block)
			if !ok {
				continue
			}
			if c, ok := e.plan.ComponentOf(owner); ok {
				c.MarkOutdated()
			}
		}
	}
}

// Tick runs one Propagate followed by n (Step, Propagate) pairs (§4.6). It
// stops and returns the first error any phase raises.
func (e *Executor) Tick(n int) error {
	if err := e.Propagate(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := e.Step(); err != nil {
			return err
		}
		if err := e.Propagate(); err != nil {
			return err
		}
	}
	return nil
}

// AsyncReset calls AsyncReset on every Resettable steppable, then marks
// every component outdated and runs one full Propagate (§4.8). Memory
// blocks intentionally do not implement block.Resettable for their content
// array (only their output register resets, via the Memory block's own
// AsyncReset implementation).
func (e *Executor) AsyncReset() error {
	for _, s := range e.plan.Steppables {
		if r, ok := s.(block.Resettable); ok {
			r.AsyncReset()
		}
	}
	for _, c := range e.plan.Components() {
		c.MarkOutdated()
	}
	return e.Propagate()
}

// Shutdown terminates every worker and waits for them to exit. Idempotent:
// safe to call more than once, and safe to leave to the atexit hook
// registered by New if the host never calls it explicitly (§4.8).
func (e *Executor) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.mu.Lock()
		for i := range e.state {
			e.state[i] = stateTerminating
		}
		e.mu.Unlock()
		e.cond.Broadcast()
		e.wg.Wait()
	})
}
