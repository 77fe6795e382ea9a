package bot

import (
	"context"
	"time"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/pkg/errors"
)

const ErrNoMoves domain.Error = "no open column left"

// Chooser picks a 1-based column from a list of open columns.
type Chooser interface {
	Choose(open []int) int
}

// Seat fills a non-human seat. It has no strategy: it only picks one of the
// columns that can still take a token.
type Seat struct {
	chooser Chooser
	delay   time.Duration
}

func NewSeat(chooser Chooser, delay time.Duration) *Seat {
	return &Seat{chooser: chooser, delay: delay}
}

// NextColumn waits for the configured delay so humans can follow the move,
// then returns a column for the current player.
func (s *Seat) NextColumn(ctx context.Context, snap domain.Snapshot) (int, error) {
	open := snap.Board.OpenColumns()
	if len(open) == 0 {
		return 0, ErrNoMoves
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, errors.Wrap(ctx.Err(), "bot move cancelled")
		case <-timer.C:
		}
	}

	return s.chooser.Choose(open), nil
}
