// Package snapshot persists a CPU+Memory pair to disk and restores it, so a
// VM can resume from a known state without replaying instructions from the
// origin.
package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/lc3vm/lc3vm/internal/cpu"
	"github.com/lc3vm/lc3vm/internal/memory"
)

// state is the flat, exported shape gob actually encodes. CPU also carries
// its memory and host channels (Mem, In, Out), which are not architectural
// state, and Memory keeps its cells unexported, so Save/Load copy just the
// architectural state in and out of this shape.
type state struct {
	Reg     [8]uint16
	PC      uint16
	Cond    cpu.ConditionFlag
	Running bool
	Cells   [memory.Size]uint16
}

// Save writes c's registers, PC, condition flag, running flag, and the
// full memory image to path. The write goes to a temporary file in the
// same directory followed by a rename, so a crash mid-write never leaves a
// truncated snapshot behind.
func Save(path string, c *cpu.CPU, m *memory.Memory) error {
	s := state{
		Reg:     c.Reg,
		PC:      c.PC,
		Cond:    c.Cond,
		Running: c.Running,
	}
	m.CopyInto(&s.Cells)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := gob.NewEncoder(tmp).Encode(&s); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Load restores the CPU and Memory values saved by Save. The returned CPU's
// Mem points at the returned Memory; its host channels (In, Out) are left
// nil for the caller to wire: a snapshot only ever describes architectural
// state, never which terminal or image path produced it.
func Load(path string) (*cpu.CPU, *memory.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var s state
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, nil, err
	}

	mem := memory.New()
	mem.LoadFrom(&s.Cells)

	c := &cpu.CPU{
		Reg:     s.Reg,
		PC:      s.PC,
		Cond:    s.Cond,
		Running: s.Running,
		Mem:     mem,
	}
	return c, mem, nil
}
