// Package service manages the set of live games with optional persistence.
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CASCAD1AN/basic-chess-game/internal/core"
	"github.com/CASCAD1AN/basic-chess-game/internal/game"
	"github.com/CASCAD1AN/basic-chess-game/internal/storage"
)

// Service is a state manager for games keyed by ID. Each contained game is
// still single-threaded; the mutex only guards the registry itself.
type Service struct {
	games map[string]*game.Game
	moves map[string]int // accepted moves per game, for the persistence log
	mu    sync.RWMutex
	store *storage.Store // nil if persistence disabled
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		moves: make(map[string]int),
		store: store,
	}
}

// CreateGame registers a fresh game under the given ID
func (s *Service) CreateGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	s.games[id] = game.New()

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:       id,
			Outcome:      core.Unfinished.String(),
			StartTimeUTC: time.Now().UTC(),
		})
	}

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// ApplyMove applies a move to the identified game and records it when
// accepted. The game's own validation decides acceptance.
func (s *Service) ApplyMove(gameID string, from, to core.Square) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	mover := g.Turn()
	p := g.Board().PieceAt(from)
	target := g.Board().PieceAt(to)

	if err := g.ApplyMove(from, to); err != nil {
		return err
	}

	s.moves[gameID]++

	// Persist if storage enabled
	if s.store != nil {
		captured := ""
		if target != nil {
			captured = target.Kind().String()
		}
		s.store.RecordMove(storage.MoveRecord{
			GameID:      gameID,
			MoveNumber:  s.moves[gameID],
			MoveFrom:    from.Notation(),
			MoveTo:      to.Notation(),
			Piece:       p.Kind().String(),
			Captured:    captured,
			PlayerColor: mover.String(),
			MoveTimeUTC: time.Now().UTC(),
		})
		if g.Outcome() != core.Unfinished {
			s.store.RecordOutcome(gameID, g.Outcome().String())
		}
	}

	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}
	delete(s.games, gameID)
	delete(s.moves, gameID)
	return nil
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)
	s.moves = make(map[string]int)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
