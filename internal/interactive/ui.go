// Package interactive plays a game in a terminal: a cursor moves over the
// board and players take turns placing stones with single key presses.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"gamma/internal/config"
	"gamma/internal/game"
	"gamma/internal/session"
)

const clearScreen = "\033[2J\033[J\033[H\033[1;1H"

const (
	keyEsc     = 0x1b
	keyCtrlC   = 0x03
	keyCtrlD   = 0x04
	keySpace   = ' '
	keyArrow   = '['
	arrowUp    = 'A'
	arrowDown  = 'B'
	arrowRight = 'C'
	arrowLeft  = 'D'
)

type UI struct {
	s     *session.Session
	in    io.ByteReader
	out   *bufio.Writer
	style config.UI
	log   *zap.Logger

	x, y   uint32
	player game.PlayerID
}

func New(s *session.Session, in io.Reader, out io.Writer, style config.UI, log *zap.Logger) *UI {
	br, ok := in.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(in)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &UI{
		s:      s,
		in:     br,
		out:    bufio.NewWriter(out),
		style:  style,
		log:    log,
		x:      s.Width() / 2,
		y:      s.Height() / 2,
		player: 1,
	}
}

// Run plays until no player can act, the input ends or Ctrl-D is pressed,
// then prints the final board with every player's score.
func (u *UI) Run() error {
	for u.anyAction() {
		if !u.s.HasAction(u.player) {
			u.advance()
			continue
		}

		u.drawFrame()
		if err := u.out.Flush(); err != nil {
			return err
		}

		quit, err := u.handleKey()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if quit {
			break
		}
	}

	u.drawSummary()
	return u.out.Flush()
}

func (u *UI) anyAction() bool {
	for p := game.PlayerID(1); uint32(p) <= u.s.Players() && p != 0; p++ {
		if u.s.HasAction(p) {
			return true
		}
	}
	return false
}

func (u *UI) advance() {
	u.player = game.PlayerID(uint32(u.player)%u.s.Players() + 1)
}

func (u *UI) handleKey() (quit bool, err error) {
	k, err := u.in.ReadByte()
	if err != nil {
		return false, err
	}

	switch k {
	case keyEsc:
		return false, u.handleEscape()
	case keySpace:
		if u.s.Move(u.player, u.x, u.y) {
			u.advance()
		}
	case 'g', 'G':
		if u.s.GoldenMove(u.player, u.x, u.y) {
			u.advance()
		}
	case 'c', 'C':
		u.advance()
	case keyCtrlD, keyCtrlC:
		u.log.Debug("game interrupted", zap.Uint32("player", uint32(u.player)))
		return true, nil
	}
	return false, nil
}

// handleEscape consumes the rest of an ESC [ X arrow sequence. Anything else
// after ESC is dropped.
func (u *UI) handleEscape() error {
	k, err := u.in.ReadByte()
	if err != nil || k != keyArrow {
		return err
	}
	k, err = u.in.ReadByte()
	if err != nil {
		return err
	}

	switch k {
	case arrowUp:
		if u.y < u.s.Height()-1 {
			u.y++
		}
	case arrowDown:
		if u.y > 0 {
			u.y--
		}
	case arrowRight:
		if u.x < u.s.Width()-1 {
			u.x++
		}
	case arrowLeft:
		if u.x > 0 {
			u.x--
		}
	}
	return nil
}

func (u *UI) drawFrame() {
	f := u.s.Frame(u.player, u.x, u.y)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(f.Board[:f.CursorStart])
	b.WriteString(u.style.Highlight)
	b.WriteString(f.Board[f.CursorStart : f.CursorStart+f.CellWidth])
	b.WriteString(u.style.Reset)
	b.WriteString(f.Board[f.CursorStart+f.CellWidth:])
	fmt.Fprintf(&b, "\nPlayer: %d, Busy fields: %d, Free fields: %d", u.player, f.Busy, f.Free)
	if f.Golden {
		b.WriteString(", G")
	}
	u.out.WriteString(b.String())
}

func (u *UI) drawSummary() {
	u.out.WriteString(clearScreen)
	u.out.WriteString(u.s.Render())
	for p := uint32(1); p <= u.s.Players() && p != 0; p++ {
		fmt.Fprintf(u.out, "Player: %d, Busy fields: %d\n", p, u.s.BusyFields(game.PlayerID(p)))
	}
}
