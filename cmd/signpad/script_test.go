package main

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/signpad"
)

func TestParseScript(t *testing.T) {
	src := `# a short stroke
down 10 20
move 30.5 25

up
color #007AFF
width 3
transparent off
confirm
`
	cmds, err := ParseScript(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	want := []Command{
		{Line: 2, Op: "down", X: 10, Y: 20},
		{Line: 3, Op: "move", X: 30.5, Y: 25},
		{Line: 5, Op: "up"},
		{Line: 6, Op: "color", Arg: "#007AFF"},
		{Line: 7, Op: "width", Arg: "3"},
		{Line: 8, Op: "transparent", Arg: "off"},
		{Line: 9, Op: "confirm"},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, cmds[i], want[i])
		}
	}
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown", "erase"},
		{"missing y", "down 10"},
		{"bad number", "move 1 two"},
		{"extra args", "clear now"},
		{"color without value", "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript(strings.NewReader(tt.src)); !errors.Is(err, ErrSyntax) {
				t.Errorf("ParseScript(%q) error = %v, want ErrSyntax", tt.src, err)
			}
		})
	}
}

func TestParseScript_UpWithPosition(t *testing.T) {
	cmds, err := ParseScript(strings.NewReader("up 5 6"))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	if len(cmds) != 1 || cmds[0].Op != "up" {
		t.Errorf("cmds = %+v, want one up", cmds)
	}
}

func TestRun(t *testing.T) {
	p, err := signpad.New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	var confirms int
	p.OnConfirm(func(_ image.Image) { confirms++ })

	cmds, err := ParseScript(strings.NewReader("color #00FF00\nwidth 4\ntransparent off\ndown 10 10\nmove 50 50\nup\nconfirm\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(p, cmds); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s := p.Style()
	if s.StrokeColor != signpad.Hex("#00FF00") || s.StrokeWidth != 4 || s.TransparentBackground {
		t.Errorf("Style() = %+v, want green, width 4, opaque", s)
	}
	if confirms != 1 || p.State() != signpad.Exported {
		t.Errorf("confirms = %d, State() = %v, want 1, Exported", confirms, p.State())
	}
}

func TestRun_BadArgument(t *testing.T) {
	p, err := signpad.New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{"color #XYZ", "width wide", "transparent maybe"} {
		cmds, err := ParseScript(strings.NewReader(src))
		if err != nil {
			t.Fatalf("ParseScript(%q) error = %v", src, err)
		}
		if err := Run(p, cmds); err == nil {
			t.Errorf("Run(%q) error = nil, want an error", src)
		}
	}
}
