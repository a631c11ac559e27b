package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/simerr"
	"github.com/oddflow/oddflow/value"
)

// Memory is a single-clock-domain, two-port memory with an output
// register: Evaluate always republishes the output register; Step, while
// clkEnable reads true, latches the read address's content into the
// output register and then, if wrEnable reads true, writes wrDataIn to
// the write address (§6). Out-of-range addresses are a fatal runtime
// fault, raised as a RuntimeDesignError panic the Executor recovers at
// the phase boundary.
type Memory struct {
	*block.Base

	depth, width int
	elemType     value.TypeDescriptor

	content        []value.Value
	outputRegister []value.Value

	enable   *port.Input
	rdAddr   *port.Input
	wrAddr   *port.Input
	wrEnable *port.Input
	wrData   []*port.Input
	rdData   []*port.Output
}

// NewMemory creates a Memory of depth addressable rows, each width wide,
// with elements of elemType addressed by addrType (a fixed-point type
// with zero fractional bits and a word width below 32, §6).
func NewMemory(path string, depth, width int, elemType, addrType value.TypeDescriptor) (*Memory, error) {
	if depth <= 0 {
		return nil, simerr.NewDesignError("%s: memory depth must be positive", path)
	}
	if width <= 0 {
		return nil, simerr.NewDesignError("%s: memory width must be positive", path)
	}
	if addrType.Kind != value.KindDynFix {
		return nil, simerr.NewDesignError("%s: memory address type must be a dynamic fixed-point type", path)
	}
	if addrType.Fractional != 0 {
		return nil, simerr.NewDesignError("%s: memory address type must have fractional equal to zero", path)
	}
	if addrType.WordWidth > 31 {
		return nil, simerr.NewDesignError("%s: memory address word width must be less than 32", path)
	}

	m := &Memory{
		Base:     block.NewBase("Memory", path),
		depth:    depth,
		width:    width,
		elemType: elemType,
	}

	def := value.Default(elemType)
	m.content = make([]value.Value, depth*width)
	m.outputRegister = make([]value.Value, width)
	for i := range m.content {
		m.content[i] = def
	}
	for i := range m.outputRegister {
		m.outputRegister[i] = def
	}

	m.enable = m.AddInput(m, value.Bool)
	m.rdAddr = m.AddInput(m, addrType)
	m.wrAddr = m.AddInput(m, addrType)
	m.wrEnable = m.AddInput(m, value.Bool)

	m.wrData = make([]*port.Input, width)
	m.rdData = make([]*port.Output, width)
	for i := 0; i < width; i++ {
		m.wrData[i] = m.AddInput(m, elemType)
		m.rdData[i] = m.AddOutput(elemType)
	}
	m.SetOutputOwner(m)

	return m, nil
}

// Enable, RdAddr, WrAddr, WrEnable and WrData expose the memory's control
// and data inputs for the Translator's factory to wire up.
func (m *Memory) Enable() *port.Input      { return m.enable }
func (m *Memory) RdAddr() *port.Input      { return m.rdAddr }
func (m *Memory) WrAddr() *port.Input      { return m.wrAddr }
func (m *Memory) WrEnable() *port.Input    { return m.wrEnable }
func (m *Memory) WrData(i int) *port.Input { return m.wrData[i] }

// RdData returns the i-th read-data output port.
func (m *Memory) RdData(i int) *port.Output { return m.rdData[i] }

func (m *Memory) CanEvaluate() bool           { return true }
func (m *Memory) SourceBlocks() []block.Block { return nil }

// Evaluate republishes the output register unconditionally every
// Propagate — the live behavior in memory.cpp; the direct-read shortcut
// commented out there is dead code and is not revived here.
func (m *Memory) Evaluate() {
	for i, out := range m.rdData {
		value.Copy(&out.Value, m.outputRegister[i])
	}
}

// Step reads rdAddress into the output register, then (if wrEnable)
// writes wrDataIn to wrAddress, whenever clkEnable reads true. It always
// reports changed=true when clkEnable was true, matching the original's
// unconditional SetDirty on every enabled clock edge.
func (m *Memory) Step() bool {
	if !bool(m.enable.Value().(value.BoolValue)) {
		return false
	}

	rdAddress := addressOf(m.rdAddr.Value())
	m.checkAddress(rdAddress)
	base := rdAddress * m.width
	for i := 0; i < m.width; i++ {
		value.Copy(&m.outputRegister[i], m.content[base+i])
	}

	if bool(m.wrEnable.Value().(value.BoolValue)) {
		wrAddress := addressOf(m.wrAddr.Value())
		m.checkAddress(wrAddress)
		base := wrAddress * m.width
		for i := 0; i < m.width; i++ {
			value.Copy(&m.content[base+i], m.wrData[i].Value())
		}
	}

	return true
}

func (m *Memory) checkAddress(address int) {
	if address < 0 || address >= m.depth {
		panic(simerr.NewRuntimeDesignError("%s: address %d is out of range [0,%d)", m.Path(), address, m.depth))
	}
}

// AsyncReset restores the output register to its type's default, the same
// as any other steppable's state cell, but leaves content untouched:
// memories in synchronous hardware have no reset for their storage array,
// only for the clocked register in front of it (§4.8).
func (m *Memory) AsyncReset() {
	def := value.Default(m.elemType)
	for i := range m.outputRegister {
		m.outputRegister[i] = def
	}
}

// ReadBackdoor copies count elements starting at address into dst,
// bypassing the Evaluate/Step protocol entirely (grounded in
// IMemoryBackdoor::readMemoryBackdoor).
func (m *Memory) ReadBackdoor(address int, dst []value.Value) {
	m.checkBackdoorRange(address, len(dst))
	copy(dst, m.content[address:address+len(dst)])
}

// WriteBackdoor copies src into the memory starting at address, bypassing
// the Evaluate/Step protocol (grounded in
// IMemoryBackdoor::writeMemoryBackdoor). It does not mark any component
// outdated, and Evaluate publishes only the output register, so the written
// content reaches RdData only after an enabled Step reads that address.
func (m *Memory) WriteBackdoor(address int, src []value.Value) {
	m.checkBackdoorRange(address, len(src))
	copy(m.content[address:address+len(src)], src)
}

func (m *Memory) checkBackdoorRange(address, count int) {
	if address < 0 || address+count > len(m.content) {
		panic(simerr.NewRuntimeDesignError("%s: backdoor address range [%d,%d) is beyond the size of the memory (%d)", m.Path(), address, address+count, len(m.content)))
	}
}

func addressOf(v value.Value) int {
	return v.(value.DynFix).AsAddress()
}
