package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gamma/internal/config"
	"gamma/internal/game"
)

var ErrNotFound = errors.New("session not found")

type Manager struct {
	store Store
	cfg   config.Game
	log   *zap.Logger
}

func NewManager(s Store, cfg config.Game, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: s, cfg: cfg, log: log}
}

// Create starts a new game and registers it under a fresh id.
func (m *Manager) Create(width, height, players, areas uint32) (*Session, error) {
	g, err := game.New(width, height, players, areas, game.WithMaxCells(m.cfg.MaxCells))
	if err != nil {
		m.log.Debug("create game failed", zap.Error(err))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s := newSession(uuid.NewString(), g, m.log)
	m.store.Save(s)
	m.log.Debug("session created",
		zap.String("session_id", s.ID),
		zap.Uint32("width", width),
		zap.Uint32("height", height),
		zap.Uint32("players", players),
		zap.Uint32("areas", areas),
	)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

func (m *Manager) Close(id string) error {
	s, ok := m.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	m.store.Delete(id)
	m.log.Debug("session closed",
		zap.String("session_id", id),
		zap.Duration("age", time.Since(s.CreatedAt)),
	)
	return nil
}
