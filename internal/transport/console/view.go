package console

import (
	"context"
	"fmt"
	"io"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/pkg/errors"
)

// View writes the board to the terminal after every placement.
type View struct {
	out      io.Writer
	renderer *Renderer
	clear    bool
	cols     int
}

func NewView(out io.Writer, renderer *Renderer, clear bool) *View {
	return &View{out: out, renderer: renderer, clear: clear}
}

func (v *View) Show(snap domain.Snapshot) {
	v.cols = snap.Cols
	if v.clear {
		_ = ClearScreen(v.out)
	}
	fmt.Fprint(v.out, v.renderer.Render(snap))
}

func (v *View) Reject(_ domain.Player, err error) {
	fmt.Fprintln(v.out, RejectMessage(err, v.cols))
}

// RejectMessage turns a placement error into something a player can act on.
func RejectMessage(err error, cols int) string {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return fmt.Sprintf("Please choose an available column, 1-%d.", cols)
	case errors.Is(err, domain.ErrColumnFull):
		return "Column full! please choose somewhere else!"
	case errors.Is(err, domain.ErrGameAlreadyOver):
		return "The game is already over."
	default:
		return err.Error()
	}
}

// HumanSeat reads the next column from the keyboard.
type HumanSeat struct {
	prompter *Prompter
	renderer *Renderer
}

func NewHumanSeat(p *Prompter, renderer *Renderer) *HumanSeat {
	return &HumanSeat{prompter: p, renderer: renderer}
}

// NextColumn blocks on input; ctx is only checked before prompting.
func (h *HumanSeat) NextColumn(ctx context.Context, snap domain.Snapshot) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	token := h.renderer.Token(snap.CurrentPlayer)
	return h.prompter.ReadInt(fmt.Sprintf("%c, choose a column (1-%d): ", token, snap.Cols))
}
