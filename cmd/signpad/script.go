package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/signpad"
)

// ErrSyntax is returned for malformed script lines.
var ErrSyntax = errors.New("script syntax error")

// Command is one scripted pad operation.
type Command struct {
	Line int
	Op   string
	X, Y float64
	Arg  string
}

// argument counts per operation; -1 means x y.
var ops = map[string]int{
	"down":        -1,
	"move":        -1,
	"up":          0,
	"clear":       0,
	"rewrite":     0,
	"confirm":     0,
	"color":       1,
	"width":       1,
	"transparent": 1,
}

// ParseScript reads one command per line. Blank lines and lines starting
// with '#' are skipped.
//
//	down 10 20
//	move 30 25
//	up
//	color #007AFF
//	confirm
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		cmd, err := parseCommand(line, fields)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func parseCommand(line int, fields []string) (Command, error) {
	cmd := Command{Line: line, Op: strings.ToLower(fields[0])}
	want, ok := ops[cmd.Op]
	if !ok {
		return cmd, fmt.Errorf("%w: line %d: unknown command %q", ErrSyntax, line, fields[0])
	}
	args := fields[1:]

	switch want {
	case -1:
		if len(args) != 2 {
			return cmd, fmt.Errorf("%w: line %d: %s needs x y", ErrSyntax, line, cmd.Op)
		}
		var err error
		if cmd.X, err = strconv.ParseFloat(args[0], 64); err != nil {
			return cmd, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
		}
		if cmd.Y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return cmd, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
		}
	case 0:
		// "up x y" is accepted; the release position adds no geometry.
		if len(args) != 0 && !(cmd.Op == "up" && len(args) == 2) {
			return cmd, fmt.Errorf("%w: line %d: %s takes no arguments", ErrSyntax, line, cmd.Op)
		}
	default:
		if len(args) != 1 {
			return cmd, fmt.Errorf("%w: line %d: %s needs one argument", ErrSyntax, line, cmd.Op)
		}
		cmd.Arg = args[0]
	}
	return cmd, nil
}

// Run applies cmds to p in order.
func Run(p *signpad.Pad, cmds []Command) error {
	for _, c := range cmds {
		switch c.Op {
		case "down":
			p.PointerDown(c.X, c.Y)
		case "move":
			p.PointerMove(c.X, c.Y)
		case "up":
			p.PointerUp(c.X, c.Y)
		case "clear":
			p.Clear()
		case "rewrite":
			p.Rewrite()
		case "confirm":
			p.Confirm()
		case "color":
			col, err := signpad.ParseHex(c.Arg)
			if err != nil {
				return fmt.Errorf("line %d: %w", c.Line, err)
			}
			p.SetStrokeColor(col)
		case "width":
			w, err := strconv.ParseFloat(c.Arg, 64)
			if err != nil {
				return fmt.Errorf("line %d: %w", c.Line, err)
			}
			p.SetStrokeWidth(w)
		case "transparent":
			on, err := parseSwitch(c.Arg)
			if err != nil {
				return fmt.Errorf("line %d: %w", c.Line, err)
			}
			p.SetTransparentBackground(on)
		}
	}
	return nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: want on or off, got %q", ErrSyntax, s)
}
