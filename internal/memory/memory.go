// Package memory implements the LC-3's flat 65,536-word address space,
// including the one memory-mapped side effect the engine exhibits: reading
// the keyboard status register samples the host's input stream.
package memory

import (
	"github.com/lc3vm/lc3vm/internal/host"
	"github.com/lc3vm/lc3vm/internal/lc3err"
)

const (
	// Size is the number of addressable 16-bit words.
	Size = 1 << 16

	// KBSR and KBDR are the two memory-mapped keyboard registers. Reading
	// KBSR has the side effect of probing host input.
	KBSR uint16 = 0xFE00
	KBDR uint16 = 0xFE02
)

// Memory is the LC-3's linear word-addressed store.
type Memory struct {
	cells [Size]uint16
}

// New returns a zeroed memory image.
func New() *Memory {
	return &Memory{}
}

// Read returns the word at idx. Reading KBSR first reads one byte from in,
// blocking until it arrives: a nonzero byte sets KBSR's high bit and stores
// the byte (zero-extended) into KBDR; a zero byte clears KBSR. Any other
// address is read without touching in at all.
func (m *Memory) Read(idx uint16, in host.ByteReader) (uint16, error) {
	if idx == KBSR {
		b, err := in.ReadByte()
		if err != nil {
			return 0, lc3err.New(lc3err.StandardIO, "keyboard probe: %v", err)
		}
		if b != 0 {
			m.cells[KBSR] = 0x8000
			m.cells[KBDR] = uint16(b)
		} else {
			m.cells[KBSR] = 0
		}
	}
	return m.cells[idx], nil
}

// Write stores value at idx. A uint16 index can never exceed Size-1, so
// this call cannot actually fail; the error return exists for symmetry
// with Read and so callers can treat every memory access uniformly.
func (m *Memory) Write(idx uint16, value uint16) error {
	m.cells[idx] = value
	return nil
}

// CopyInto copies the full cell array into dst, for snapshot persistence.
func (m *Memory) CopyInto(dst *[Size]uint16) {
	*dst = m.cells
}

// LoadFrom replaces the full cell array from src, for snapshot restore.
func (m *Memory) LoadFrom(src *[Size]uint16) {
	m.cells = *src
}

// LoadImage consumes a big-endian byte stream: the first two bytes are the
// origin word, and each subsequent pair of bytes is placed at consecutive
// addresses starting at origin. A trailing odd byte is silently dropped. An
// image with only the origin word and no data loads successfully and leaves
// memory unchanged; an empty stream has no origin at all and fails with
// ConcatenatingBytes.
func LoadImage(m *Memory, data []byte) error {
	if len(data) < 2 {
		return lc3err.New(lc3err.ConcatenatingBytes, "image has %d byte(s), no valid origin", len(data))
	}
	origin := uint16(data[0])<<8 | uint16(data[1])
	addr := origin
	for i := 2; i+1 < len(data); i += 2 {
		word := uint16(data[i])<<8 | uint16(data[i+1])
		if uint32(addr) > 0xFFFF {
			return lc3err.New(lc3err.MemoryIndex, "image word at offset %d exceeds address space", i)
		}
		m.cells[addr] = word
		if addr == 0xFFFF {
			// Any further word in the stream would wrap past the top of
			// memory; treat that as out of range rather than silently
			// wrapping the load back to address 0.
			if i+3 < len(data) {
				return lc3err.New(lc3err.MemoryIndex, "image extends past address 0xFFFF")
			}
		}
		addr++
	}
	return nil
}
