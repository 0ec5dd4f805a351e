package numscan

import (
	"math"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		in       string
		want     float64
		consumed int
	}{
		{"10", 10, 2},
		{"  -7", -7, 4},
		{"12%", 12, 2},
		{"5.75", 5.75, 4},
		{".5", 0.5, 2},
		{"5.", 5, 2},
		{"1e3x", 1000, 3},
		{"1e", 1, 1},
		{"-95.99", -95.99, 6},
		{"12345678901234567890", 12345678901234567890, 20},
		{"", 0, 0},
		{"~", 0, 0},
		{":10", 0, 0},
		{"-", 0, 0},
		{".", 0, 0},
		{"abc", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, n := Float(tt.in)
			if got != tt.want || n != tt.consumed {
				t.Errorf("Float(%q) = %v, %d; want %v, %d", tt.in, got, n, tt.want, tt.consumed)
			}
		})
	}
}

func TestFloat_Hex(t *testing.T) {
	tests := []struct {
		in       string
		want     float64
		consumed int
	}{
		{"0x10", 16, 4},
		{"0X1f:", 31, 4},
		{"-0x1.8p1", -3, 8},
		{"+0x.8", 0.5, 5},
		{"0x10p-2%", 4, 7},
		{"0x1p", 1, 3},
		{"0x", 0, 1},
		{"0xg", 0, 1},
		{"-0x", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, n := Float(tt.in)
			if got != tt.want || n != tt.consumed {
				t.Errorf("Float(%q) = %v, %d; want %v, %d", tt.in, got, n, tt.want, tt.consumed)
			}
		})
	}
}

func TestFloat_NaN(t *testing.T) {
	tests := []struct {
		in       string
		consumed int
	}{
		{"nan", 3},
		{"-NaN:", 4},
		{"nan(123)x", 8},
		{"nan(", 3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, n := Float(tt.in)
			if !math.IsNaN(got) || n != tt.consumed {
				t.Errorf("Float(%q) = %v, %d; want NaN, %d", tt.in, got, n, tt.consumed)
			}
		})
	}
	if _, n := Float("na"); n != 0 {
		t.Errorf("Float(na) consumed %d", n)
	}
}

func TestFloat_Infinity(t *testing.T) {
	if v, n := Float("inf"); !math.IsInf(v, 1) || n != 3 {
		t.Errorf("Float(inf) = %v, %d", v, n)
	}
	if v, n := Float("-Infinity:"); !math.IsInf(v, -1) || n != 9 {
		t.Errorf("Float(-Infinity:) = %v, %d", v, n)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 1},
		{" 54\n", 54},
		{"-3", -3},
		{"+8", 8},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"99999999999999999999", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got, _ := Int(tt.in); got != tt.want {
				t.Errorf("Int(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1234567890", 1234567890},
		{"1234567890 trailing", 1234567890},
		{"", 0},
		{"x", 0},
		{"-1", math.MaxUint64},
		{"99999999999999999999999", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got, _ := Uint(tt.in); got != tt.want {
				t.Errorf("Uint(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
