package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"gamma/internal/game"
)

// Session owns one game and serialises every call into it.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu  sync.Mutex
	g   *game.Game
	log *zap.Logger
}

func newSession(id string, g *game.Game, log *zap.Logger) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		g:         g,
		log:       log.With(zap.String("session_id", id)),
	}
}

func (s *Session) Width() uint32   { return s.g.Width() }
func (s *Session) Height() uint32  { return s.g.Height() }
func (s *Session) Players() uint32 { return s.g.Players() }

func (s *Session) Move(p game.PlayerID, x, y uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.g.Move(p, x, y)
	s.log.Debug("move",
		zap.Uint32("player", uint32(p)),
		zap.Uint32("x", x),
		zap.Uint32("y", y),
		zap.Bool("ok", ok),
	)
	return ok
}

func (s *Session) GoldenMove(p game.PlayerID, x, y uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.g.GoldenMove(p, x, y)
	s.log.Debug("golden move",
		zap.Uint32("player", uint32(p)),
		zap.Uint32("x", x),
		zap.Uint32("y", y),
		zap.Bool("ok", ok),
	)
	return ok
}

func (s *Session) GoldenPossible(p game.PlayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.GoldenPossible(p)
}

func (s *Session) BusyFields(p game.PlayerID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.BusyFields(p)
}

func (s *Session) FreeFields(p game.PlayerID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.FreeFields(p)
}

func (s *Session) HasAction(p game.PlayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.HasAction(p)
}

func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Render()
}

// Frame is a consistent picture of the board for one player.
type Frame struct {
	Board       string
	CellWidth   int
	CursorStart int // byte offset of the cursor cell in Board
	Busy        uint64
	Free        uint64
	Golden      bool
}

// Frame renders the board and player's counters under a single lock.
func (s *Session) Frame(p game.PlayerID, cx, cy uint32) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Frame{
		Board:       s.g.Render(),
		CellWidth:   s.g.CellWidth(),
		CursorStart: s.g.CellOffset(cx, cy),
		Busy:        s.g.BusyFields(p),
		Free:        s.g.FreeFields(p),
		Golden:      s.g.GoldenPossible(p),
	}
}

func (s *Session) Export() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Export()
}
