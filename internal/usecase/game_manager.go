package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

// session guards one game. Its lock is held for the whole of a move so the
// board status is never read halfway through an update.
type session struct {
	mu   sync.Mutex
	game *entity.Game
}

// GameManager keeps games in memory and serializes the moves of each game.
type GameManager struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		sessions: make(map[string]*session),
	}
}

// CreateGame starts a new game and returns a snapshot of it.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := entity.NewGame(uuid.NewString())

	that.mu.Lock()
	that.sessions[game.ID] = &session{game: game}
	that.mu.Unlock()

	that.logger.Info("game created", "gameID", game.ID)

	snapshot := *game
	return &snapshot, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	sess, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	snapshot := *sess.game
	return &snapshot, nil
}

// MakeTurn plays a move and returns the game as it stands afterwards. A rejected move
// returns the unchanged game together with the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, mark tictactoe.Mark, outer, inner int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	sess, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	err = sess.game.MakeTurn(mark, outer, inner)
	snapshot := *sess.game

	if err != nil {
		log.Debug("move rejected", "mark", mark.String(), "outer", outer, "inner", inner, "error", err)
		return &snapshot, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move accepted", "mark", mark.String(), "outer", outer, "inner", inner)

	if snapshot.IsFinished() {
		log.Info("game finished", "status", snapshot.Status().String())
	}

	return &snapshot, nil
}

// EndGame forgets a game.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, id)
	}

	delete(that.sessions, id)

	that.logger.Info("game ended", "gameID", id)

	return nil
}

func (that *GameManager) getSession(id string) (*session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	sess, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, id)
	}

	return sess, nil
}
