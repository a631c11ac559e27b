package blocks

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/value"
)

// Logger is a diagnostic sink: N named inputs, no outputs. Every Evaluate
// appends one row of the inputs' current values to an in-memory table, the
// way original_source's dfx::debug::Logger.Log/WriteTable accumulates a
// waveform and dumps it at the end of a run (§6, supplemented — the
// original has no equivalent simulator-core source file, only call sites
// in examples/example1/main.cpp).
type Logger struct {
	*block.Base

	names []string
	ins   []*port.Input
	rows  [][]value.Value
}

// NewLogger creates a Logger with one input per name, in order.
func NewLogger(path string, names []string, types []value.TypeDescriptor) *Logger {
	l := &Logger{Base: block.NewBase("Logger", path), names: names}
	l.ins = make([]*port.Input, len(types))
	for i, t := range types {
		l.ins[i] = l.AddInput(l, t)
	}
	return l
}

// Input returns the i-th logged input.
func (l *Logger) Input(i int) *port.Input { return l.ins[i] }

// inputColumnNames synthesizes positional column names "In0".."In<n-1>" for
// a Logger created without host-supplied signal names (the design graph's
// DesignInput carries only a type name, never a diagnostic label).
func inputColumnNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("In%d", i)
	}
	return names
}

func (l *Logger) CanEvaluate() bool { return true }

func (l *Logger) SourceBlocks() []block.Block {
	return sourceBlocksOf(l.ins...)
}

// Evaluate snapshots every input's current value as a new row. Logger has
// no outputs; this is purely a side effect recorded for later reporting.
func (l *Logger) Evaluate() {
	row := make([]value.Value, len(l.ins))
	for i, in := range l.ins {
		row[i] = in.Value()
	}
	l.rows = append(l.rows, row)
}

// WriteTable renders every recorded row as a table, one column per logged
// signal plus a leading tick index, the way WriteTable(std::cout) dumps
// the original's accumulated waveform.
func (l *Logger) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(l.Path())

	header := table.Row{"Tick"}
	for _, name := range l.names {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for tick, row := range l.rows {
		r := table.Row{tick}
		for _, v := range row {
			r = append(r, formatValue(v))
		}
		t.AppendRow(r)
	}

	t.Render()
}

// formatValue renders a value.Value for the diagnostic table; DynFix
// values print their raw integer rather than their internal
// representation, since the struct's fields are otherwise unexported.
func formatValue(v value.Value) string {
	switch tv := v.(type) {
	case value.BoolValue:
		return fmt.Sprint(bool(tv))
	case value.Int32Value:
		return fmt.Sprint(int32(tv))
	case value.Int64Value:
		return fmt.Sprint(int64(tv))
	case value.Float64Value:
		return fmt.Sprint(float64(tv))
	case value.DynFix:
		return fmt.Sprint(tv.Raw())
	default:
		return fmt.Sprintf("%v", v)
	}
}
