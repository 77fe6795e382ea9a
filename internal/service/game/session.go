package game

import (
	"context"
	"time"

	"github.com/iamasit07/connect-n/internal/config"
	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/iamasit07/connect-n/pkg/uid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MoveSource supplies the 1-based column a seat wants to play.
type MoveSource interface {
	NextColumn(ctx context.Context, snap domain.Snapshot) (int, error)
}

// View is told about every change the players need to see.
type View interface {
	Show(snap domain.Snapshot)
	Reject(player domain.Player, err error)
}

// Result describes how a finished session ended.
type Result struct {
	GameID   string
	Outcome  domain.Outcome
	Reason   string // "connect_n" or "draw"
	Moves    int
	Duration time.Duration
}

// GameSession drives one game from the first placement to a win or a tie.
type GameSession struct {
	GameID     string
	Game       *domain.Game
	Settings   config.Settings
	CreatedAt  time.Time
	FinishedAt time.Time
	seats      []MoveSource
	logger     *zap.Logger
}

// Seats gives the first settings.Humans seats to human and the rest to bot.
func Seats(settings config.Settings, human, bot MoveSource) []MoveSource {
	seats := make([]MoveSource, settings.Players)
	for i := range seats {
		if i < settings.Humans {
			seats[i] = human
		} else {
			seats[i] = bot
		}
	}
	return seats
}

func NewGameSession(settings config.Settings, seats []MoveSource, logger *zap.Logger) (*GameSession, error) {
	if len(seats) != settings.Players {
		return nil, errors.Errorf("expected %d seats, got %d", settings.Players, len(seats))
	}

	gameID := uid.GenerateGameID()
	session := &GameSession{
		GameID:    gameID,
		Game:      domain.NewGame(settings.Rows, settings.Columns, settings.Players, settings.WinLength),
		Settings:  settings,
		CreatedAt: time.Now(),
		seats:     seats,
		logger:    logger.With(zap.String("game_id", gameID)),
	}

	session.logger.Info("[SESSION] Created session",
		zap.Int("rows", settings.Rows),
		zap.Int("columns", settings.Columns),
		zap.Int("players", settings.Players),
		zap.Int("humans", settings.Humans),
		zap.Int("win_length", settings.WinLength),
	)
	return session, nil
}

// Run asks each seat in turn for a column until the game ends. A rejected
// column is reported to the view and the same seat is asked again.
func (gs *GameSession) Run(ctx context.Context, view View) (Result, error) {
	view.Show(gs.Game.Snapshot())

	for {
		if err := ctx.Err(); err != nil {
			gs.logger.Info("[SESSION] Session interrupted", zap.Int("turn", gs.Game.TurnCount()))
			return Result{}, errors.Wrap(err, "session interrupted")
		}

		snap := gs.Game.Snapshot()
		player := snap.CurrentPlayer

		column, err := gs.seats[player].NextColumn(ctx, snap)
		if err != nil {
			gs.logger.Warn("[SESSION] Seat failed to produce a move", zap.Int("player", int(player)), zap.Error(err))
			return Result{}, errors.Wrapf(err, "player %d", player)
		}

		outcome, err := gs.Game.PlaceToken(column)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidColumn) || errors.Is(err, domain.ErrColumnFull) {
				gs.logger.Debug("[SESSION] Rejected move",
					zap.Int("player", int(player)),
					zap.Int("column", column),
					zap.Error(err),
				)
				view.Reject(player, err)
				continue
			}
			return Result{}, err
		}

		gs.logger.Debug("[SESSION] Token placed",
			zap.Int("player", int(player)),
			zap.Int("column", column),
			zap.Int("row", outcome.Row),
			zap.Int("turn", gs.Game.TurnCount()),
		)
		view.Show(gs.Game.Snapshot())

		if gs.Game.IsFinished() {
			return gs.finish(outcome), nil
		}
	}
}

func (gs *GameSession) finish(outcome domain.Outcome) Result {
	gs.FinishedAt = time.Now()

	result := Result{
		GameID:   gs.GameID,
		Outcome:  outcome,
		Reason:   "draw",
		Moves:    gs.Game.TurnCount(),
		Duration: gs.FinishedAt.Sub(gs.CreatedAt),
	}
	if outcome.Kind == domain.OutcomeWin {
		result.Reason = "connect_n"
		result.Moves = outcome.Turn
	}

	gs.logger.Info("[SESSION] Game over",
		zap.String("reason", result.Reason),
		zap.Int("winner", int(gs.Game.Winner())),
		zap.Int("moves", result.Moves),
		zap.Duration("duration", result.Duration),
	)
	return result
}
