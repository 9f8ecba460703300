package bitops

import (
	"errors"
	"testing"

	"github.com/lc3vm/lc3vm/internal/lc3err"
)

func TestSignExtend(t *testing.T) {
	tests := []struct {
		name     string
		value    uint16
		bitCount uint16
		want     uint16
	}{
		{"5-bit positive", 0x0F, 5, 0x000F},
		{"5-bit negative", 0x1F, 5, 0xFFFF},
		{"5-bit most negative", 0x10, 5, 0xFFF0},
		{"9-bit positive", 0x0FF, 9, 0x00FF},
		{"9-bit negative", 0x1FF, 9, 0xFFFF},
		{"11-bit negative", 0x400, 11, 0xFC00},
		{"16-bit passthrough", 0xBEEF, 16, 0xBEEF},
		{"1-bit zero", 0x0, 1, 0x0000},
		{"1-bit one", 0x1, 1, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignExtend(tt.value, tt.bitCount)
			if err != nil {
				t.Fatalf("SignExtend(%#x, %d) returned error: %v", tt.value, tt.bitCount, err)
			}
			if got != tt.want {
				t.Errorf("SignExtend(%#x, %d) = %#x, want %#x", tt.value, tt.bitCount, got, tt.want)
			}
		})
	}
}

func TestSignExtendZeroWidth(t *testing.T) {
	_, err := SignExtend(0, 0)
	if !errors.Is(err, lc3err.ErrOverflow) {
		t.Fatalf("SignExtend(0, 0) error = %v, want Overflow", err)
	}
}

func TestConcatenateBytes(t *testing.T) {
	tests := []struct {
		hi, lo byte
		want   uint16
	}{
		{0x30, 0x00, 0x3000},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0xFE, 0x02, 0xFE02},
	}
	for _, tt := range tests {
		if got := ConcatenateBytes(tt.hi, tt.lo); got != tt.want {
			t.Errorf("ConcatenateBytes(%#x, %#x) = %#x, want %#x", tt.hi, tt.lo, got, tt.want)
		}
	}
}
