// Package cpu implements the LC-3 register file, condition flag, and the
// per-opcode semantics, TRAP routines, and fetch/execute loop that drive a
// single run of a program image. A CPU value is single-threaded: nothing in
// this package synchronizes concurrent access, and none is expected — the
// batch runner gives every concurrently-running image its own CPU and
// Memory instance instead.
package cpu

import (
	"github.com/lc3vm/lc3vm/internal/host"
	"github.com/lc3vm/lc3vm/internal/lc3err"
	"github.com/lc3vm/lc3vm/internal/memory"
)

// ConditionFlag is the three-valued condition code every register write
// updates.
type ConditionFlag uint8

const (
	Pos ConditionFlag = iota
	Zro
	Neg
)

// PCStart is the address execution begins at for a freshly constructed CPU.
const PCStart uint16 = 0x3000

// CPU holds the eight general registers, program counter, condition flag,
// and running flag for one LC-3 run.
type CPU struct {
	Reg     [8]uint16
	PC      uint16
	Cond    ConditionFlag
	Running bool

	Mem *memory.Memory
	In  host.ByteReader
	Out host.ByteWriter
}

// New constructs a CPU wired to the given memory and host channels, with PC
// at the architectural start address and a zeroed register file.
func New(mem *memory.Memory, in host.ByteReader, out host.ByteWriter) *CPU {
	return &CPU{PC: PCStart, Cond: Zro, Mem: mem, In: in, Out: out}
}

// GetReg returns the value of register i, failing with InvalidRegister if i
// is outside 0..7. The instruction decoder always masks register fields to
// 3 bits, so this failure is reachable only through a decoder bug.
func (c *CPU) GetReg(i uint16) (uint16, error) {
	if i > 7 {
		return 0, lc3err.New(lc3err.InvalidRegister, "index %d", i)
	}
	return c.Reg[i], nil
}

// SetReg stores v into register i, failing with InvalidRegister under the
// same condition as GetReg.
func (c *CPU) SetReg(i uint16, v uint16) error {
	if i > 7 {
		return lc3err.New(lc3err.InvalidRegister, "index %d", i)
	}
	c.Reg[i] = v
	return nil
}

// UpdateFlags recomputes Cond from the current value of register i.
func (c *CPU) UpdateFlags(i uint16) error {
	v, err := c.GetReg(i)
	if err != nil {
		return err
	}
	switch {
	case v == 0:
		c.Cond = Zro
	case v&0x8000 != 0:
		c.Cond = Neg
	default:
		c.Cond = Pos
	}
	return nil
}
