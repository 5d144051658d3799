// Package command parses the line-oriented language used to set up and
// drive a game from a text stream.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gamma/internal/game"
)

var ErrSyntax = errors.New("syntax error")

const separators = " \t\v\f\r"

type Mode byte

const (
	Batch       Mode = 'B'
	Interactive Mode = 'I'
)

func (m Mode) String() string {
	switch m {
	case Batch:
		return "batch"
	case Interactive:
		return "interactive"
	}
	return fmt.Sprintf("Mode(%q)", byte(m))
}

// Setup is a parsed mode line: mode followed by the four New arguments.
type Setup struct {
	Mode    Mode
	Width   uint32
	Height  uint32
	Players uint32
	Areas   uint32
}

type Kind int

const (
	Move Kind = iota + 1
	Golden
	Busy
	Free
	GoldenPossible
	Print
)

var kinds = map[string]Kind{
	"m": Move,
	"g": Golden,
	"b": Busy,
	"f": Free,
	"q": GoldenPossible,
	"p": Print,
}

// arity is the number of numeric arguments after the command letter.
var arity = map[Kind]int{
	Move:           3,
	Golden:         3,
	Busy:           1,
	Free:           1,
	GoldenPossible: 1,
	Print:          0,
}

type Command struct {
	Kind   Kind
	Player game.PlayerID
	X, Y   uint32
}

// Ignored reports whether a raw line, newline included, is a comment or blank.
func Ignored(line string) bool {
	return strings.HasPrefix(line, "#") || line == "\n"
}

// ParseSetup parses a mode line such as "B 10 10 2 3\n".
func ParseSetup(line string) (Setup, error) {
	fields, err := split(line)
	if err != nil {
		return Setup{}, err
	}
	if fields[0] != "B" && fields[0] != "I" {
		return Setup{}, fmt.Errorf("%w: unknown mode %q", ErrSyntax, fields[0])
	}
	nums, err := numbers(fields[1:], 4)
	if err != nil {
		return Setup{}, err
	}
	return Setup{
		Mode:    Mode(fields[0][0]),
		Width:   nums[0],
		Height:  nums[1],
		Players: nums[2],
		Areas:   nums[3],
	}, nil
}

// Parse parses one batch command line.
func Parse(line string) (Command, error) {
	fields, err := split(line)
	if err != nil {
		return Command{}, err
	}
	kind, ok := kinds[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, fields[0])
	}
	nums, err := numbers(fields[1:], arity[kind])
	if err != nil {
		return Command{}, err
	}

	cmd := Command{Kind: kind}
	if len(nums) > 0 {
		cmd.Player = game.PlayerID(nums[0])
	}
	if len(nums) == 3 {
		cmd.X, cmd.Y = nums[1], nums[2]
	}
	return cmd, nil
}

func split(line string) ([]string, error) {
	body, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing end of line", ErrSyntax)
	}
	if body == "" || strings.ContainsRune(separators, rune(body[0])) {
		return nil, fmt.Errorf("%w: line starts with a separator", ErrSyntax)
	}
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrSyntax)
	}
	return fields, nil
}

func numbers(fields []string, want int) ([]uint32, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrSyntax, want, len(fields))
	}
	out := make([]uint32, len(fields))
	for i, f := range fields {
		n, err := number(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// number accepts plain decimal digits without leading zeros that fit in 32 bits.
func number(s string) (uint32, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrSyntax, s)
	}
	return uint32(n), nil
}
