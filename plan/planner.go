package plan

import (
	"sort"

	"github.com/oddflow/oddflow/block"
)

// defaultTaskSizeDivisor is the original's fixed divisor ("minTaskSize =
// total / 200").
const defaultTaskSizeDivisor = 200

// Planner runs the three-stage pass described in §4.5. A Planner value is
// single-use: construct one with NewPlanner, call Plan once, discard it.
type Planner struct {
	// TaskSizeDivisor overrides the 200 in "minTaskSize = total / 200"
	// (exposed so exec.Config can tune task granularity for unusually
	// small or large designs); zero means use the default.
	TaskSizeDivisor int

	marks map[block.Block]bool
	owner map[block.Block]*Component
	free  []*Component
	cur   *Component
}

// NewPlanner creates an empty Planner with the default task size divisor.
func NewPlanner() *Planner {
	return &Planner{
		marks: make(map[block.Block]bool),
		owner: make(map[block.Block]*Component),
	}
}

// Plan runs Stage A (simplification), the required-input check, Stage B
// (topological ordering with component formation) and Stage C (task
// partitioning) over blocks, in that order, and returns the resulting
// Plan. blocks should be in the Translator's construction order; that
// order becomes the tie-break for which block starts each traversal.
func (p *Planner) Plan(blocks []block.Block) (*Plan, error) {
	simplify(blocks)

	if err := checkRequiredInputs(blocks); err != nil {
		return nil, err
	}

	if err := p.buildComponents(blocks); err != nil {
		return nil, err
	}

	divisor := p.TaskSizeDivisor
	if divisor == 0 {
		divisor = defaultTaskSizeDivisor
	}

	components := p.survivingComponents()
	tasks := partitionIntoTasks(components, divisor)

	return &Plan{
		Tasks:       tasks,
		Steppables:  collectSteppables(blocks),
		componentOf: p.owner,
	}, nil
}

func simplify(blocks []block.Block) {
	for _, b := range blocks {
		if s, ok := b.(block.Simplifiable); ok {
			s.Simplify()
		}
	}
}

func checkRequiredInputs(blocks []block.Block) error {
	for _, b := range blocks {
		if !b.CanEvaluate() {
			continue
		}
		for _, in := range b.Inputs() {
			if in.IsConnected() {
				continue
			}
			if tol, ok := b.(block.InputTolerant); ok && tol.ToleratesUnconnectedInput(in.Index) {
				continue
			}
			return newUnconnectedRequiredInput(b.Path(), in.Index)
		}
	}
	return nil
}

func collectSteppables(blocks []block.Block) []block.Steppable {
	var steppables []block.Steppable
	for _, b := range blocks {
		if s, ok := b.(block.Steppable); ok {
			steppables = append(steppables, s)
		}
	}
	return steppables
}

// buildComponents is the Go translation of simulator.cpp's constructor
// loop plus RecursiveBuildExecutionOrder: for every evaluable block in
// order, grab a component (reusing one from the free-list when possible)
// and recursively traverse its combinational sources, merging smaller
// components into larger ones whenever the traversal rejoins an
// already-assigned block.
func (p *Planner) buildComponents(blocks []block.Block) error {
	for _, b := range blocks {
		if !b.CanEvaluate() {
			continue
		}
		if _, ok := p.owner[b]; ok {
			// Already pulled into a component by an earlier traversal;
			// grabbing a fresh component for it would only immediately
			// merge back (the original's equivalent no-op path), so skip
			// the churn.
			continue
		}

		p.cur = p.popOrNew()
		if err := p.visit(b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) visit(current block.Block) error {
	if !current.CanEvaluate() {
		return nil
	}

	if owner, ok := p.owner[current]; ok {
		if owner != p.cur {
			p.merge(owner)
		}
		return nil
	}

	if p.marks[current] {
		return newComputationalCycle(current.Path())
	}

	p.marks[current] = true
	for _, src := range current.SourceBlocks() {
		if err := p.visit(src); err != nil {
			return err
		}
	}
	delete(p.marks, current)

	p.owner[current] = p.cur
	p.cur.blocks = append(p.cur.blocks, current)

	return nil
}

// merge folds other into p.cur, always appending the smaller block list
// onto the larger one (§4.5: "the merge rule ... yields amortized
// near-linear total work").
func (p *Planner) merge(other *Component) {
	large, small := p.cur, other
	if small.Size() > large.Size() {
		large, small = small, large
	}

	for _, b := range small.blocks {
		p.owner[b] = large
	}
	large.blocks = append(large.blocks, small.blocks...)

	small.reset()
	p.free = append(p.free, small)

	p.cur = large
}

func (p *Planner) popOrNew() *Component {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free = p.free[:n-1]
		return c
	}
	return newComponent()
}

func (p *Planner) survivingComponents() []*Component {
	seen := make(map[*Component]bool)
	components := make([]*Component, 0, len(p.owner))
	for _, c := range p.owner {
		if seen[c] {
			continue
		}
		seen[c] = true
		components = append(components, c)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].Size() > components[j].Size()
	})

	return components
}

// partitionIntoTasks walks components in their (already descending-size)
// order, opening a new task whenever the current one has accumulated at
// least minTaskSize blocks (§4.5 Stage C).
func partitionIntoTasks(components []*Component, divisor int) []*Task {
	total := 0
	for _, c := range components {
		total += c.Size()
	}
	minTaskSize := total / divisor

	var tasks []*Task
	currentSize := 0
	for _, c := range components {
		if len(tasks) == 0 || currentSize >= minTaskSize {
			currentSize = 0
			tasks = append(tasks, newTask())
		}
		last := tasks[len(tasks)-1]
		last.Components = append(last.Components, c)
		currentSize += c.Size()
	}

	return tasks
}
