package plan_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/plan"
)

var _ = Describe("Planner", func() {
	var planner *plan.Planner

	BeforeEach(func() {
		planner = plan.NewPlanner()
	})

	Describe("topological correctness", func() {
		It("orders every block after the sources it combinationally depends on", func() {
			a := newFakeBlock("a", true)
			b := newFakeBlock("b", true, a)
			c := newFakeBlock("c", true, b, a)

			p, err := planner.Plan([]block.Block{a, b, c})
			Expect(err).NotTo(HaveOccurred())

			comp, ok := p.ComponentOf(c)
			Expect(ok).To(BeTrue())

			index := make(map[block.Block]int, comp.Size())
			for i, blk := range comp.Blocks() {
				index[blk] = i
			}
			Expect(index[a]).To(BeNumerically("<", index[b]))
			Expect(index[b]).To(BeNumerically("<", index[c]))
		})
	})

	Describe("component partition", func() {
		It("merges blocks reachable from each other into one component", func() {
			a := newFakeBlock("a", true)
			b := newFakeBlock("b", true, a)

			x := newFakeBlock("x", true)

			p, err := planner.Plan([]block.Block{a, b, x})
			Expect(err).NotTo(HaveOccurred())

			compA, _ := p.ComponentOf(a)
			compB, _ := p.ComponentOf(b)
			compX, _ := p.ComponentOf(x)

			Expect(compA).To(Equal(compB))
			Expect(compA).NotTo(Equal(compX))
		})

		It("never assigns a component to a block that cannot evaluate", func() {
			source := newFakeBlock("source", false)
			consumer := newFakeBlock("consumer", true, source)

			p, err := planner.Plan([]block.Block{source, consumer})
			Expect(err).NotTo(HaveOccurred())

			_, ok := p.ComponentOf(source)
			Expect(ok).To(BeFalse())

			_, ok = p.ComponentOf(consumer)
			Expect(ok).To(BeTrue())
		})
	})

	Describe("cycle detection", func() {
		It("raises ComputationalCycle for a combinational loop with no break", func() {
			a := newFakeBlock("a", true)
			b := newFakeBlock("loop.b", true, a)
			a.sources = []block.Block{b}

			_, err := planner.Plan([]block.Block{a, b})

			var cycle *plan.ComputationalCycle
			Expect(errors.As(err, &cycle)).To(BeTrue())
		})

		It("translates successfully when a steppable breaks the cycle", func() {
			// delay.Step samples a's output on the clock edge, but delay's
			// SourceBlocks (the pure-sequential barrier) stays empty, so the
			// physical loop a -> delay -> a never becomes a combinational
			// cycle in the component graph.
			delay := newFakeSteppable("delay", true)
			a := newFakeBlock("a", true, delay.fakeBlock)

			_, err := planner.Plan([]block.Block{delay, a})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("required inputs", func() {
		It("raises UnconnectedRequiredInput for an unconnected input on an evaluable block", func() {
			b := newFakeBlock("lonely", true).withUnconnectedInput()

			_, err := planner.Plan([]block.Block{b})

			var want *plan.UnconnectedRequiredInput
			Expect(errors.As(err, &want)).To(BeTrue())
			Expect(want.Path).To(Equal("lonely"))
		})
	})

	Describe("task partitioning", func() {
		It("collects every steppable into the plan regardless of task boundaries", func() {
			s1 := newFakeSteppable("s1", true)
			s2 := newFakeSteppable("s2", true)

			p, err := planner.Plan([]block.Block{s1, s2})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Steppables).To(HaveLen(2))
		})

		It("puts every component into exactly one task", func() {
			blocks := make([]block.Block, 0, 6)
			for i := 0; i < 6; i++ {
				blocks = append(blocks, newFakeBlock(string(rune('a'+i)), true))
			}

			p, err := planner.Plan(blocks)
			Expect(err).NotTo(HaveOccurred())

			seen := map[*plan.Component]bool{}
			for _, task := range p.Tasks {
				for _, c := range task.Components {
					Expect(seen[c]).To(BeFalse(), "component scheduled twice")
					seen[c] = true
				}
			}
			Expect(seen).To(HaveLen(6))
		})
	})
})
