// Package opcode decodes the 4-bit opcode field and the 8-bit TRAP vector
// of an LC-3 instruction word, and carries a small mnemonic table used only
// to format log and error messages — never to assemble or disassemble a
// program.
package opcode

import "github.com/lc3vm/lc3vm/internal/lc3err"

// Opcode is the 4-bit instruction class encoded in bits [15:12].
type Opcode uint8

const (
	BR Opcode = iota
	ADD
	LD
	ST
	JSR
	AND
	LDR
	STR
	RTI
	NOT
	LDI
	STI
	JMP
	RES
	LEA
	TRAP
	opcodeCount // sentinel
)

// mnemonics is indexed by Opcode; Decode never produces an index outside
// this table, since the 4-bit field has exactly 16 values.
var mnemonics = [opcodeCount]string{
	BR: "BR", ADD: "ADD", LD: "LD", ST: "ST", JSR: "JSR", AND: "AND",
	LDR: "LDR", STR: "STR", RTI: "RTI", NOT: "NOT", LDI: "LDI", STI: "STI",
	JMP: "JMP", RES: "RES", LEA: "LEA", TRAP: "TRAP",
}

// String returns the mnemonic for log/error formatting, e.g. "ADD".
func (op Opcode) String() string {
	if int(op) < 0 || int(op) >= int(opcodeCount) {
		return "???"
	}
	return mnemonics[op]
}

// Decode extracts the opcode from an instruction word. It is a total
// function: the top 4 bits always name one of the 16 defined variants,
// including RTI and RES, which decode successfully but fail when executed.
func Decode(instr uint16) Opcode {
	return Opcode(instr >> 12)
}

// TrapCode is one of the six service-call vectors a TRAP instruction may
// name in its low 8 bits.
type TrapCode uint8

const (
	GETC  TrapCode = 0x20
	OUT   TrapCode = 0x21
	PUTS  TrapCode = 0x22
	IN    TrapCode = 0x23
	PUTSP TrapCode = 0x24
	HALT  TrapCode = 0x25
)

var trapMnemonics = map[TrapCode]string{
	GETC: "GETC", OUT: "OUT", PUTS: "PUTS", IN: "IN", PUTSP: "PUTSP", HALT: "HALT",
}

// String returns the trap routine's mnemonic, or "???" for an undecodable
// vector (String never fails; DecodeTrap does).
func (tc TrapCode) String() string {
	if m, ok := trapMnemonics[tc]; ok {
		return m
	}
	return "???"
}

// DecodeTrap maps the low 8 bits of a TRAP instruction to a TrapCode. Unlike
// Decode, this is a partial function: only six of the 256 possible byte
// values name a real routine.
func DecodeTrap(instr uint16) (TrapCode, error) {
	vector := TrapCode(instr & 0xFF)
	if _, ok := trapMnemonics[vector]; !ok {
		return 0, lc3err.New(lc3err.InvalidTrapCode, "vector %#02x", uint8(vector))
	}
	return vector, nil
}
