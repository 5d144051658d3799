// Package batch runs the text protocol: it reads a mode line that creates a
// game, then answers one batch command per line.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"gamma/internal/command"
	"gamma/internal/session"
)

// ErrNoGame is returned by SelectMode when the input ends before a valid
// mode line.
var ErrNoGame = errors.New("input ended without a valid mode line")

// Executor reads lines from in, writes answers to out and "ERROR <line>"
// reports to errOut. Line numbers count every line read, ignored ones too.
type Executor struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
	line   int
}

func New(in io.Reader, out, errOut io.Writer, log *zap.Logger) *Executor {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{in: br, out: out, errOut: errOut, log: log}
}

// Reader exposes the buffered input so that another front end can continue
// where the executor stopped.
func (e *Executor) Reader() *bufio.Reader { return e.in }

// Line is the number of lines consumed so far.
func (e *Executor) Line() int { return e.line }

// next returns the next line, trailing newline included. An unterminated
// last line is returned as is; io.EOF comes only once nothing is left.
func (e *Executor) next() (string, error) {
	s, err := e.in.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	e.line++
	return s, nil
}

// SelectMode consumes lines until one of them sets up a game. It prints
// "OK <line>" for that line and "ERROR <line>" for every rejected one.
func (e *Executor) SelectMode(m *session.Manager) (*session.Session, command.Mode, error) {
	for {
		raw, err := e.next()
		if err == io.EOF {
			return nil, 0, ErrNoGame
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read line %d: %w", e.line+1, err)
		}
		if command.Ignored(raw) {
			continue
		}

		setup, err := command.ParseSetup(raw)
		if err != nil {
			e.log.Debug("bad mode line", zap.Int("line", e.line), zap.Error(err))
			if err := e.reject(); err != nil {
				return nil, 0, err
			}
			continue
		}
		s, err := m.Create(setup.Width, setup.Height, setup.Players, setup.Areas)
		if err != nil {
			if err := e.reject(); err != nil {
				return nil, 0, err
			}
			continue
		}

		if _, err := fmt.Fprintf(e.out, "OK %d\n", e.line); err != nil {
			return nil, 0, err
		}
		return s, setup.Mode, nil
	}
}

// Run executes batch commands against s until the input is exhausted.
func (e *Executor) Run(s *session.Session) error {
	for {
		raw, err := e.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", e.line+1, err)
		}
		if command.Ignored(raw) {
			continue
		}

		cmd, err := command.Parse(raw)
		if err != nil {
			e.log.Debug("bad command", zap.Int("line", e.line), zap.Error(err))
			if err := e.reject(); err != nil {
				return err
			}
			continue
		}
		if err := e.exec(s, cmd); err != nil {
			return err
		}
	}
}

func (e *Executor) exec(s *session.Session, cmd command.Command) error {
	var err error
	switch cmd.Kind {
	case command.Move:
		err = e.answer(s.Move(cmd.Player, cmd.X, cmd.Y))
	case command.Golden:
		err = e.answer(s.GoldenMove(cmd.Player, cmd.X, cmd.Y))
	case command.Busy:
		_, err = fmt.Fprintf(e.out, "%d\n", s.BusyFields(cmd.Player))
	case command.Free:
		_, err = fmt.Fprintf(e.out, "%d\n", s.FreeFields(cmd.Player))
	case command.GoldenPossible:
		err = e.answer(s.GoldenPossible(cmd.Player))
	case command.Print:
		_, err = io.WriteString(e.out, s.Render())
	default:
		err = e.reject()
	}
	return err
}

func (e *Executor) answer(ok bool) error {
	v := 0
	if ok {
		v = 1
	}
	_, err := fmt.Fprintf(e.out, "%d\n", v)
	return err
}

func (e *Executor) reject() error {
	_, err := fmt.Fprintf(e.errOut, "ERROR %d\n", e.line)
	return err
}
