package opcode

import (
	"errors"
	"testing"

	"github.com/lc3vm/lc3vm/internal/lc3err"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		instr uint16
		want  Opcode
	}{
		{0x1000, ADD},
		{0x0000, BR},
		{0xF000, TRAP},
		{0x9000, NOT},
		{0x8000, RTI},
		{0xD000, RES},
	}
	for _, tt := range tests {
		if got := Decode(tt.instr); got != tt.want {
			t.Errorf("Decode(%#04x) = %v, want %v", tt.instr, got, tt.want)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	if ADD.String() != "ADD" {
		t.Errorf("ADD.String() = %q, want ADD", ADD.String())
	}
	if got := Opcode(99).String(); got != "???" {
		t.Errorf("out-of-range Opcode.String() = %q, want ???", got)
	}
}

func TestDecodeTrap(t *testing.T) {
	tests := []struct {
		instr uint16
		want  TrapCode
	}{
		{0xF020, GETC},
		{0xF021, OUT},
		{0xF022, PUTS},
		{0xF023, IN},
		{0xF024, PUTSP},
		{0xF025, HALT},
	}
	for _, tt := range tests {
		got, err := DecodeTrap(tt.instr)
		if err != nil {
			t.Fatalf("DecodeTrap(%#04x) returned error: %v", tt.instr, err)
		}
		if got != tt.want {
			t.Errorf("DecodeTrap(%#04x) = %v, want %v", tt.instr, got, tt.want)
		}
	}
}

func TestDecodeTrapInvalid(t *testing.T) {
	_, err := DecodeTrap(0xF099)
	if !errors.Is(err, lc3err.Sentinel(lc3err.InvalidTrapCode)) {
		t.Fatalf("DecodeTrap(0xF099) error = %v, want InvalidTrapCode", err)
	}
}
