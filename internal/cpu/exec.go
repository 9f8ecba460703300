package cpu

import (
	"github.com/lc3vm/lc3vm/internal/bitops"
	"github.com/lc3vm/lc3vm/internal/lc3err"
	"github.com/lc3vm/lc3vm/internal/opcode"
)

// field extraction, mirrored directly off the LC-3 instruction layout.
func dr(instr uint16) uint16     { return (instr >> 9) & 0x7 }
func sr1(instr uint16) uint16    { return (instr >> 6) & 0x7 }
func sr2(instr uint16) uint16    { return instr & 0x7 }
func immFlag(instr uint16) bool  { return (instr>>5)&0x1 == 1 }
func longFlag(instr uint16) bool { return (instr>>11)&0x1 == 1 }
func condMask(instr uint16) uint16 {
	return (instr >> 9) & 0x7
}

func imm5(instr uint16) (uint16, error)    { return bitops.SignExtend(instr&0x1F, 5) }
func offset6(instr uint16) (uint16, error) { return bitops.SignExtend(instr&0x3F, 6) }
func pcOffset9(instr uint16) (uint16, error) {
	return bitops.SignExtend(instr&0x1FF, 9)
}
func pcOffset11(instr uint16) (uint16, error) {
	return bitops.SignExtend(instr&0x7FF, 11)
}

// Execute dispatches a single decoded instruction word against c. PC has
// already been advanced past instr by the caller (the fetch/execute loop),
// so every pc-relative offset here is relative to the next instruction.
func (c *CPU) Execute(instr uint16) error {
	switch opcode.Decode(instr) {
	case opcode.ADD:
		return c.execAdd(instr)
	case opcode.AND:
		return c.execAnd(instr)
	case opcode.NOT:
		return c.execNot(instr)
	case opcode.BR:
		return c.execBr(instr)
	case opcode.JMP:
		return c.execJmp(instr)
	case opcode.JSR:
		return c.execJsr(instr)
	case opcode.LEA:
		return c.execLea(instr)
	case opcode.LD:
		return c.execLd(instr)
	case opcode.LDR:
		return c.execLdr(instr)
	case opcode.LDI:
		return c.execLdi(instr)
	case opcode.ST:
		return c.execSt(instr)
	case opcode.STR:
		return c.execStr(instr)
	case opcode.STI:
		return c.execSti(instr)
	case opcode.TRAP:
		return c.execTrap(instr)
	case opcode.RTI, opcode.RES:
		return lc3err.New(lc3err.InvalidOpcode, "%s", opcode.Decode(instr))
	default:
		return lc3err.New(lc3err.InvalidOpcode, "unrecognized opcode %#04x", instr)
	}
}

func (c *CPU) execAdd(instr uint16) error {
	a, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	var b uint16
	if immFlag(instr) {
		b, err = imm5(instr)
		if err != nil {
			return err
		}
	} else {
		b, err = c.GetReg(sr2(instr))
		if err != nil {
			return err
		}
	}
	d := dr(instr)
	if err := c.SetReg(d, a+b); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execAnd(instr uint16) error {
	a, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	var b uint16
	if immFlag(instr) {
		b, err = imm5(instr)
		if err != nil {
			return err
		}
	} else {
		b, err = c.GetReg(sr2(instr))
		if err != nil {
			return err
		}
	}
	d := dr(instr)
	if err := c.SetReg(d, a&b); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execNot(instr uint16) error {
	a, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	d := dr(instr)
	if err := c.SetReg(d, ^a); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execBr(instr uint16) error {
	offs, err := pcOffset9(instr)
	if err != nil {
		return err
	}
	mask := condMask(instr)
	var bit uint16
	switch c.Cond {
	case Neg:
		bit = 0x4
	case Zro:
		bit = 0x2
	case Pos:
		bit = 0x1
	}
	if mask&bit != 0 {
		c.PC += offs
	}
	return nil
}

func (c *CPU) execJmp(instr uint16) error {
	base, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	c.PC = base
	return nil
}

func (c *CPU) execJsr(instr uint16) error {
	c.Reg[7] = c.PC
	if longFlag(instr) {
		offs, err := pcOffset11(instr)
		if err != nil {
			return err
		}
		c.PC += offs
		return nil
	}
	base, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	c.PC = base
	return nil
}

func (c *CPU) execLea(instr uint16) error {
	offs, err := pcOffset9(instr)
	if err != nil {
		return err
	}
	d := dr(instr)
	if err := c.SetReg(d, c.PC+offs); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execLd(instr uint16) error {
	offs, err := pcOffset9(instr)
	if err != nil {
		return err
	}
	v, err := c.Mem.Read(c.PC+offs, c.In)
	if err != nil {
		return err
	}
	d := dr(instr)
	if err := c.SetReg(d, v); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execLdr(instr uint16) error {
	base, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	offs, err := offset6(instr)
	if err != nil {
		return err
	}
	v, err := c.Mem.Read(base+offs, c.In)
	if err != nil {
		return err
	}
	d := dr(instr)
	if err := c.SetReg(d, v); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execLdi(instr uint16) error {
	offs, err := pcOffset9(instr)
	if err != nil {
		return err
	}
	ptr, err := c.Mem.Read(c.PC+offs, c.In)
	if err != nil {
		return err
	}
	v, err := c.Mem.Read(ptr, c.In)
	if err != nil {
		return err
	}
	d := dr(instr)
	if err := c.SetReg(d, v); err != nil {
		return err
	}
	return c.UpdateFlags(d)
}

func (c *CPU) execSt(instr uint16) error {
	offs, err := pcOffset9(instr)
	if err != nil {
		return err
	}
	v, err := c.GetReg(dr(instr))
	if err != nil {
		return err
	}
	return c.Mem.Write(c.PC+offs, v)
}

func (c *CPU) execStr(instr uint16) error {
	base, err := c.GetReg(sr1(instr))
	if err != nil {
		return err
	}
	offs, err := offset6(instr)
	if err != nil {
		return err
	}
	v, err := c.GetReg(dr(instr))
	if err != nil {
		return err
	}
	return c.Mem.Write(base+offs, v)
}

func (c *CPU) execSti(instr uint16) error {
	offs, err := pcOffset9(instr)
	if err != nil {
		return err
	}
	ptr, err := c.Mem.Read(c.PC+offs, c.In)
	if err != nil {
		return err
	}
	v, err := c.GetReg(dr(instr))
	if err != nil {
		return err
	}
	return c.Mem.Write(ptr, v)
}
