package domain

func NewBoard(rows, cols int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]Player, cols)
		for j := range board[i] {
			board[i][j] = NoPlayer
		}
	}
	return board
}

func (b Board) Rows() int {
	return len(b)
}

func (b Board) Columns() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < b.Columns()
}

// IsColumnFull expects a 0-based column.
func (b Board) IsColumnFull(col int) bool {
	// board[0] is the top row, so a column is full once its top cell is taken
	return b[0][col] != NoPlayer
}

// DropDisk lets the token fall to the lowest empty row of the 0-based column
// and returns that row.
func (b Board) DropDisk(col int, player Player) (int, error) {
	for row := b.Rows() - 1; row >= 0; row-- {
		if b[row][col] == NoPlayer {
			b[row][col] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// this creates a deep copy of the board
func (b Board) Copy() Board {
	newBoard := make(Board, len(b))
	for i := range b {
		newBoard[i] = make([]Player, len(b[i]))
		copy(newBoard[i], b[i])
	}
	return newBoard
}

// OpenColumns lists the 1-based columns that still accept a token.
func (b Board) OpenColumns() []int {
	open := []int{}
	for col := 0; col < b.Columns(); col++ {
		if !b.IsColumnFull(col) {
			open = append(open, col+1)
		}
	}
	return open
}

// CountRun walks from (row, col) in the direction (deltaRow, deltaCol) and
// counts same-player cells, the starting cell included. It stops at the first
// mismatch, empty cell or edge, and never counts more than limit cells.
func (b Board) CountRun(row, col, deltaRow, deltaCol int, player Player, limit int) int {
	count := 1
	r, c := row+deltaRow, col+deltaCol
	for count < limit && b.InBounds(r, c) && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
