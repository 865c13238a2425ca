package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

const (
	promptMove        = "Enter move: "
	messageInvalid    = "Invalid input"
	messageBadMoveFmt = "Invalid move: %v"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, mark tictactoe.Mark, outer, inner int) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error
}

// Server drives a single game from a line-oriented terminal.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	glyphs      tictactoe.Glyphs
}

func New(logger *slog.Logger, gameUseCase gameUseCase, glyphs tictactoe.Glyphs) *Server {
	return &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		glyphs:      glyphs,
	}
}

// Start plays one game reading moves from in and writing the board to out.
// It returns when the game is decided, the input ends, or ctx is canceled.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	game, err := that.gameUseCase.CreateGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log = log.With("gameID", game.ID)
	log.Info("game started")

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines := readLines(readCtx, in)

	for !game.IsFinished() {
		if err = that.printf(out, "%s%s", game.Render(that.glyphs), promptMove); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint: wrapcheck // caller checks for context.Canceled
		case l, ok := <-lines:
			if !ok {
				log.Info("input closed")
				return nil
			}
			line = l
		}

		outer, inner, err := parseMove(line)
		if err != nil {
			log.Debug("bad input", "line", line, "error", err)
			if err = that.printf(out, "%s\n", messageInvalid); err != nil {
				return err
			}
			continue
		}

		updated, err := that.gameUseCase.MakeTurn(ctx, game.ID, game.Turn, outer, inner)
		if errors.Is(err, context.Canceled) {
			return err
		}
		if errors.Is(err, apperror.ErrIndexOutOfRange) {
			log.Debug("bad input", "line", line, "error", err)
			if err = that.printf(out, "%s\n", messageInvalid); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			if err = that.printf(out, messageBadMoveFmt+"\n", unwrapMove(err)); err != nil {
				return err
			}
			continue
		}

		game = updated
	}

	if err = that.printf(out, "%s%s\n", game.Render(that.glyphs), game.Result(that.glyphs)); err != nil {
		return err
	}

	if err = that.gameUseCase.EndGame(ctx, game.ID); err != nil {
		log.Error("failed to end game", "error", err)
	}

	log.Info("game over", "result", game.Result(that.glyphs))

	return nil
}

func (that *Server) printf(out io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// readLines feeds lines from in until it ends or ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

// unwrapMove strips the use case prefix so the player sees the rule that was broken.
func unwrapMove(err error) error {
	var (
		wrongBoard *tictactoe.WrongBoardError
		boardErr   *tictactoe.BoardError
	)

	switch {
	case errors.As(err, &wrongBoard):
		return wrongBoard
	case errors.As(err, &boardErr):
		return boardErr
	case errors.Is(err, apperror.ErrNotYourTurn):
		return apperror.ErrNotYourTurn
	default:
		return err
	}
}
