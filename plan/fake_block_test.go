package plan_test

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/value"
)

// fakeBlock is a minimal block.Block stand-in that lets a test dictate
// CanEvaluate and SourceBlocks directly, without routing through real
// ports and connections.
type fakeBlock struct {
	path        string
	evaluable   bool
	sources     []block.Block
	in          []*port.Input
	evalCount   int
}

func newFakeBlock(path string, evaluable bool, sources ...block.Block) *fakeBlock {
	return &fakeBlock{path: path, evaluable: evaluable, sources: sources}
}

func (f *fakeBlock) ClassTag() block.ClassTag   { return "Fake" }
func (f *fakeBlock) Path() string               { return f.path }
func (f *fakeBlock) Inputs() []*port.Input      { return f.in }
func (f *fakeBlock) Outputs() []*port.Output    { return nil }
func (f *fakeBlock) SourceBlocks() []block.Block { return f.sources }
func (f *fakeBlock) CanEvaluate() bool          { return f.evaluable }
func (f *fakeBlock) Evaluate()                  { f.evalCount++ }

// withUnconnectedInput gives the block one unconnected Bool input, for
// exercising the required-input check.
func (f *fakeBlock) withUnconnectedInput() *fakeBlock {
	f.in = append(f.in, port.NewInput(len(f.in), value.Bool))
	return f
}

// fakeSteppable adds a Step method atop fakeBlock.
type fakeSteppable struct {
	*fakeBlock
	changed    bool
	stepCount  int
}

func newFakeSteppable(path string, evaluable bool, sources ...block.Block) *fakeSteppable {
	return &fakeSteppable{fakeBlock: newFakeBlock(path, evaluable, sources...)}
}

func (f *fakeSteppable) Step() bool {
	f.stepCount++
	return f.changed
}
