package exec_test

import (
	"bytes"
	"strings"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/blocks"
	"github.com/oddflow/oddflow/exec"
	"github.com/oddflow/oddflow/plan"
	"github.com/oddflow/oddflow/value"
)

// boolConst is a one-off Constant(true) used wherever a test needs an
// input tied off to a fixed boolean without caring about the block itself.
func boolConst(path string, v bool) *blocks.Constant {
	return blocks.NewConstant(path, value.BoolValue(v))
}

func buildPlan(bs []block.Block) *plan.Plan {
	p, err := plan.NewPlanner().Plan(bs)
	Expect(err).NotTo(HaveOccurred())
	return p
}

var _ = Describe("Executor", func() {
	Describe("Propagate", func() {
		It("evaluates a combinational chain to a fixpoint in one call", func() {
			src := blocks.NewConstant("src", value.Int32Value(3))

			double := blocks.NewCombinational("double",
				[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
				func(in []value.Value) []value.Value {
					return []value.Value{value.Int32Value(2 * int32(in[0].(value.Int32Value)))}
				})
			Expect(double.Input(0).ConnectTo(src.Outputs()[0])).To(Succeed())

			plusOne := blocks.NewCombinational("plusOne",
				[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
				func(in []value.Value) []value.Value {
					return []value.Value{value.Int32Value(1 + int32(in[0].(value.Int32Value)))}
				})
			Expect(plusOne.Input(0).ConnectTo(double.Output(0))).To(Succeed())

			ok := boolConst("ok", true)
			term := blocks.NewTerminate("term")
			Expect(term.In().ConnectTo(ok.Outputs()[0])).To(Succeed())

			p := buildPlan([]block.Block{src, double, plusOne, term, ok})

			e := exec.New(p, exec.DefaultConfig(), logr.Discard())
			defer e.Shutdown()

			Expect(e.Propagate()).To(Succeed())
			Expect(plusOne.Output(0).Value).To(Equal(value.Int32Value(7)))
		})
	})

	Describe("Tick", func() {
		It("drives a counter-shaped register through n clock edges", func() {
			reg := blocks.NewDelay("reg", []value.TypeDescriptor{value.Int32})
			regIn, regOut := reg.Path(0)

			inc := blocks.NewCombinational("inc",
				[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
				func(in []value.Value) []value.Value {
					return []value.Value{value.Int32Value(1 + int32(in[0].(value.Int32Value)))}
				})
			Expect(inc.Input(0).ConnectTo(regOut)).To(Succeed())
			Expect(regIn.ConnectTo(inc.Output(0))).To(Succeed())

			p := buildPlan([]block.Block{reg, inc})

			e := exec.New(p, exec.DefaultConfig(), logr.Discard())
			defer e.Shutdown()

			Expect(e.Tick(5)).To(Succeed())
			Expect(regOut.Value).To(Equal(value.Int32Value(5)))
		})

		It("runs identically with one worker or many (Testable Property 6)", func() {
			build := func(workers int) value.Value {
				reg := blocks.NewDelay("reg", []value.TypeDescriptor{value.Int32})
				regIn, regOut := reg.Path(0)
				inc := blocks.NewCombinational("inc",
					[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
					func(in []value.Value) []value.Value {
						return []value.Value{value.Int32Value(1 + int32(in[0].(value.Int32Value)))}
					})
				Expect(inc.Input(0).ConnectTo(regOut)).To(Succeed())
				Expect(regIn.ConnectTo(inc.Output(0))).To(Succeed())

				p := buildPlan([]block.Block{reg, inc})
				cfg := exec.DefaultConfig()
				cfg.Workers = workers
				e := exec.New(p, cfg, logr.Discard())
				defer e.Shutdown()

				Expect(e.Tick(20)).To(Succeed())
				return regOut.Value
			}

			Expect(build(1)).To(Equal(build(8)))
		})
	})

	Describe("dirty propagation policy (§4.7)", func() {
		It("does not re-evaluate downstream once a delay's state stabilizes, under DirtyOnChange", func() {
			reg := blocks.NewDelay("reg", []value.TypeDescriptor{value.Int32})
			regIn, regOut := reg.Path(0)

			evalCount := 0
			cap10 := blocks.NewCombinational("cap10",
				[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
				func(in []value.Value) []value.Value {
					evalCount++
					v := int32(in[0].(value.Int32Value))
					if v < 10 {
						v++
					}
					return []value.Value{value.Int32Value(v)}
				})
			Expect(cap10.Input(0).ConnectTo(regOut)).To(Succeed())
			Expect(regIn.ConnectTo(cap10.Output(0))).To(Succeed())

			p := buildPlan([]block.Block{reg, cap10})
			cfg := exec.DefaultConfig()
			cfg.DirtyOnChange = true
			e := exec.New(p, cfg, logr.Discard())
			defer e.Shutdown()

			Expect(e.Tick(30)).To(Succeed())
			Expect(regOut.Value).To(Equal(value.Int32Value(10)))

			countAtSaturation := evalCount
			Expect(e.Tick(5)).To(Succeed())
			Expect(evalCount).To(Equal(countAtSaturation), "downstream should not re-evaluate once the register stops changing")
		})

		It("re-evaluates downstream every tick when DirtyOnChange is disabled", func() {
			reg := blocks.NewDelay("reg", []value.TypeDescriptor{value.Int32})
			regIn, regOut := reg.Path(0)

			evalCount := 0
			hold := blocks.NewCombinational("hold",
				[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
				func(in []value.Value) []value.Value {
					evalCount++
					return []value.Value{in[0]}
				})
			Expect(hold.Input(0).ConnectTo(regOut)).To(Succeed())
			Expect(regIn.ConnectTo(hold.Output(0))).To(Succeed())

			p := buildPlan([]block.Block{reg, hold})
			cfg := exec.DefaultConfig()
			cfg.DirtyOnChange = false
			e := exec.New(p, cfg, logr.Discard())
			defer e.Shutdown()

			Expect(e.Tick(1)).To(Succeed())
			before := evalCount
			Expect(e.Tick(4)).To(Succeed())
			Expect(evalCount).To(Equal(before + 4))
		})
	})

	Describe("error propagation", func() {
		It("surfaces a Memory out-of-range panic as an error from Step, without crashing the process", func() {
			addrType := value.DynFixType(false, 4, 0)
			m, err := blocks.NewMemory("m", 2, 1, value.Int32, addrType)
			Expect(err).NotTo(HaveOccurred())

			en := boolConst("en", true)
			wren := boolConst("wren", false)
			wd := blocks.NewConstant("wd", value.Int32Value(0))
			wa := blocks.NewConstant("wa", value.NewDynFix(addrType, 0))
			ra := blocks.NewConstant("ra", value.NewDynFix(addrType, 9))

			Expect(m.Enable().ConnectTo(en.Outputs()[0])).To(Succeed())
			Expect(m.WrEnable().ConnectTo(wren.Outputs()[0])).To(Succeed())
			Expect(m.WrData(0).ConnectTo(wd.Outputs()[0])).To(Succeed())
			Expect(m.WrAddr().ConnectTo(wa.Outputs()[0])).To(Succeed())
			Expect(m.RdAddr().ConnectTo(ra.Outputs()[0])).To(Succeed())

			p := buildPlan([]block.Block{m})
			e := exec.New(p, exec.DefaultConfig(), logr.Discard())
			defer e.Shutdown()

			err = e.Step()
			Expect(err).To(HaveOccurred())

			// The executor must remain usable after recovering the panic.
			Expect(e.Propagate()).To(Succeed())
		})
	})

	Describe("AsyncReset", func() {
		It("restores steppable state to its default and re-propagates", func() {
			reg := blocks.NewDelay("reg", []value.TypeDescriptor{value.Int32})
			regIn, regOut := reg.Path(0)
			inc := blocks.NewCombinational("inc",
				[]value.TypeDescriptor{value.Int32}, []value.TypeDescriptor{value.Int32},
				func(in []value.Value) []value.Value {
					return []value.Value{value.Int32Value(1 + int32(in[0].(value.Int32Value)))}
				})
			Expect(inc.Input(0).ConnectTo(regOut)).To(Succeed())
			Expect(regIn.ConnectTo(inc.Output(0))).To(Succeed())

			p := buildPlan([]block.Block{reg, inc})
			e := exec.New(p, exec.DefaultConfig(), logr.Discard())
			defer e.Shutdown()

			Expect(e.Tick(5)).To(Succeed())
			Expect(regOut.Value).To(Equal(value.Int32Value(5)))

			Expect(e.AsyncReset()).To(Succeed())
			Expect(regOut.Value).To(Equal(value.Int32Value(0)))
		})
	})

	Describe("Shutdown", func() {
		It("is idempotent", func() {
			c := boolConst("c", true)
			term := blocks.NewTerminate("t")
			Expect(term.In().ConnectTo(c.Outputs()[0])).To(Succeed())

			p := buildPlan([]block.Block{c, term})
			e := exec.New(p, exec.DefaultConfig(), logr.Discard())

			e.Shutdown()
			e.Shutdown()
		})
	})

	Describe("Report", func() {
		It("renders component, task and worker counts", func() {
			c := boolConst("c", true)
			term := blocks.NewTerminate("t")
			Expect(term.In().ConnectTo(c.Outputs()[0])).To(Succeed())

			p := buildPlan([]block.Block{c, term})
			e := exec.New(p, exec.DefaultConfig(), logr.Discard())
			defer e.Shutdown()

			var buf bytes.Buffer
			e.Report(&buf)
			out := buf.String()
			Expect(out).To(ContainSubstring("Components"))
			Expect(out).To(ContainSubstring("Worker threads"))
			Expect(strings.Contains(out, "Component Size Histogram")).To(BeTrue())
		})
	})
})
