package cpu

import (
	"github.com/lc3vm/lc3vm/internal/lc3err"
	"github.com/lc3vm/lc3vm/internal/opcode"
)

// execTrap saves the return address in R7, then dispatches to one of the
// six defined service routines.
func (c *CPU) execTrap(instr uint16) error {
	c.Reg[7] = c.PC
	tc, err := opcode.DecodeTrap(instr)
	if err != nil {
		return err
	}
	switch tc {
	case opcode.GETC:
		return c.trapGetc()
	case opcode.OUT:
		return c.trapOut()
	case opcode.PUTS:
		return c.trapPuts()
	case opcode.IN:
		return c.trapIn()
	case opcode.PUTSP:
		return c.trapPutsp()
	case opcode.HALT:
		return c.trapHalt()
	default:
		return lc3err.New(lc3err.InvalidTrapCode, "vector %#02x", uint8(tc))
	}
}

func (c *CPU) trapGetc() error {
	b, err := c.In.ReadByte()
	if err != nil {
		return lc3err.New(lc3err.StandardIO, "GETC: %v", err)
	}
	c.Reg[0] = uint16(b)
	return c.UpdateFlags(0)
}

func (c *CPU) writeChar(v uint16) error {
	if v > 0xFF {
		return lc3err.New(lc3err.InvalidCharacter, "value %#04x does not fit in one byte", v)
	}
	if err := c.Out.WriteByte(byte(v)); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	return nil
}

func (c *CPU) trapOut() error {
	if err := c.writeChar(c.Reg[0]); err != nil {
		return err
	}
	if err := c.Out.Flush(); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	return nil
}

func (c *CPU) trapPuts() error {
	addr := c.Reg[0]
	start := addr
	for {
		w, err := c.Mem.Read(addr, c.In)
		if err != nil {
			return err
		}
		if w == 0 {
			break
		}
		if err := c.writeChar(w); err != nil {
			return err
		}
		if addr == 0xFFFF {
			return lc3err.New(lc3err.MemoryIndex, "PUTS walk from %#04x ran off the end of memory", start)
		}
		addr++
	}
	if err := c.Out.Flush(); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	return nil
}

func (c *CPU) trapIn() error {
	for _, ch := range "Enter a character: \n" {
		if err := c.Out.WriteByte(byte(ch)); err != nil {
			return lc3err.New(lc3err.StandardIO, "%v", err)
		}
	}
	b, err := c.In.ReadByte()
	if err != nil {
		return lc3err.New(lc3err.StandardIO, "IN: %v", err)
	}
	c.Reg[0] = uint16(b)
	if err := c.Out.WriteByte(b); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	if err := c.UpdateFlags(0); err != nil {
		return err
	}
	if err := c.Out.Flush(); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	return nil
}

func (c *CPU) trapPutsp() error {
	addr := c.Reg[0]
	start := addr
	for {
		w, err := c.Mem.Read(addr, c.In)
		if err != nil {
			return err
		}
		if w == 0 {
			break
		}
		lo := byte(w & 0xFF)
		hi := byte(w >> 8)
		if err := c.Out.WriteByte(lo); err != nil {
			return lc3err.New(lc3err.StandardIO, "%v", err)
		}
		if err := c.Out.WriteByte(hi); err != nil {
			return lc3err.New(lc3err.StandardIO, "%v", err)
		}
		if addr == 0xFFFF {
			return lc3err.New(lc3err.MemoryIndex, "PUTSP walk from %#04x ran off the end of memory", start)
		}
		addr++
	}
	if err := c.Out.Flush(); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	return nil
}

func (c *CPU) trapHalt() error {
	for _, ch := range "HALT\n" {
		if err := c.Out.WriteByte(byte(ch)); err != nil {
			return lc3err.New(lc3err.StandardIO, "%v", err)
		}
	}
	if err := c.Out.Flush(); err != nil {
		return lc3err.New(lc3err.StandardIO, "%v", err)
	}
	c.Running = false
	return nil
}
