package signpad

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF3B30", color.NRGBA{0xFF, 0x3B, 0x30, 0xFF}},
		{"ff3b30", color.NRGBA{0xFF, 0x3B, 0x30, 0xFF}},
		{"#000", color.NRGBA{0, 0, 0, 0xFF}},
		{"#fff8", color.NRGBA{0xFF, 0xFF, 0xFF, 0x88}},
		{"#12345680", color.NRGBA{0x12, 0x34, 0x56, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got := c.Color(); got != tt.want {
				t.Errorf("ParseHex(%q).Color() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#GGGGGG", "#1234567"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(%q) = %v, want Black", "nope", got)
	}
}

func TestRGBA_HexRoundTrip(t *testing.T) {
	if got := SystemRed.Hex(); got != "#FF3B30FF" {
		t.Errorf("SystemRed.Hex() = %q, want %q", got, "#FF3B30FF")
	}
	if got := Hex(SystemRed.Hex()); got.Color() != SystemRed.Color() {
		t.Errorf("Hex(SystemRed.Hex()) = %v, want %v", got, SystemRed)
	}
}

func TestRGBA_Premultiplied(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.RGBA
	}{
		{"opaque red", RGB(1, 0, 0), color.RGBA{0xFF, 0, 0, 0xFF}},
		{"half white", RGBA{1, 1, 1, 0.5}, color.RGBA{0x80, 0x80, 0x80, 0x80}},
		{"out of range", RGBA{2, -1, 0, 3}, color.RGBA{0xFF, 0, 0, 0xFF}},
		{"nan", RGBA{math.NaN(), 0, 0, 1}, color.RGBA{0, 0, 0, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Premultiplied(); got != tt.want {
				t.Errorf("Premultiplied() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{0xFF, 0x3B, 0x30, 0xFF})
	if got.Color() != SystemRed.Color() {
		t.Errorf("FromColor(#FF3B30) = %v, want %v", got, SystemRed)
	}
}

func TestSanitizeWidth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2, 2},
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxFloat64},
	}
	for _, tt := range tests {
		if got := sanitizeWidth(tt.in); got != tt.want {
			t.Errorf("sanitizeWidth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "Idle"},
		{Drawing, "Drawing"},
		{IdleWithInk, "IdleWithInk"},
		{Exported, "Exported"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
