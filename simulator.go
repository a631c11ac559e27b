// Package oddflow ties the Design, Translate, Plan and Exec stages into the
// single external interface a host program drives (§6): register block
// factories, ingest a design, then run it.
package oddflow

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/blocks"
	"github.com/oddflow/oddflow/design"
	"github.com/oddflow/oddflow/exec"
	"github.com/oddflow/oddflow/plan"
	"github.com/oddflow/oddflow/translate"
)

// Simulator is the host-facing entry point: a factory registry plus,
// once a design has been translated, the running Executor over its Plan.
type Simulator struct {
	registry *translate.Registry
	log      logr.Logger

	executor *exec.Executor
}

// New creates a Simulator with the built-in block set already registered
// (Constant, Delay, EnabledDelay, Memory, Terminate, Decide, Logger,
// Combinational). A host that needs custom block kinds can still call
// RegisterFactory afterwards; it replaces any prior entry for the same tag.
func New(log logr.Logger) *Simulator {
	r := translate.NewRegistry()
	blocks.RegisterAll(r)
	return &Simulator{registry: r, log: log}
}

// RegisterFactory installs factory for tag, replacing any prior entry
// (§6, §8 Testable Property 7).
func (s *Simulator) RegisterFactory(tag string, factory translate.Factory) bool {
	return s.registry.RegisterFactory(block.ClassTag(tag), factory)
}

// Load translates d against the current factory registry and starts an
// Executor over the resulting Plan, using cfg's worker count and dirty
// propagation policy. Any previously running Executor is shut down first.
func (s *Simulator) Load(d *design.Design, cfg exec.Config) error {
	result, err := translate.Translate(d, s.registry, s.log)
	if err != nil {
		return err
	}

	planner := plan.NewPlanner()
	planner.TaskSizeDivisor = cfg.TaskSizeDivisor
	p, err := planner.Plan(result.Blocks)
	if err != nil {
		return err
	}

	if s.executor != nil {
		s.executor.Shutdown()
	}
	s.executor = exec.New(p, cfg, s.log)
	return nil
}

// Run executes one Propagate followed by n (Step, Propagate) pairs (§6
// run(n_iterations)).
func (s *Simulator) Run(n int) error {
	return s.executor.Tick(n)
}

// AsyncReset resets every steppable to its default state and re-propagates
// (§6 async_reset()).
func (s *Simulator) AsyncReset() error {
	return s.executor.AsyncReset()
}

// Report writes a human-readable diagnostic summary to w (§6 report(writer)).
func (s *Simulator) Report(w io.Writer) {
	s.executor.Report(w)
}

// Shutdown stops the Executor's worker pool. Safe to call more than once,
// and safe to never call (the Executor registers its own atexit hook).
func (s *Simulator) Shutdown() {
	if s.executor != nil {
		s.executor.Shutdown()
	}
}
