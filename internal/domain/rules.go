package domain

// CheckWin only looks at the four lines through (row, col), the cell that was
// just filled. No other run on the board can have changed.
func CheckWin(board Board, row, col int, player Player, winLength int) bool {
	// Check | (nothing can sit above the new token, so count downwards only)
	if board.Rows()-row >= winLength {
		if board.CountRun(row, col, 1, 0, player, winLength) >= winLength {
			return true
		}
	}

	// Check /
	if combinedRun(board, row, col, -1, 1, player, winLength) >= winLength {
		return true
	}

	// Check \
	if combinedRun(board, row, col, 1, 1, player, winLength) >= winLength {
		return true
	}

	// Check -
	if combinedRun(board, row, col, 0, 1, player, winLength) >= winLength {
		return true
	}

	return false
}

// combinedRun sums both half-lines of an axis. Each half-line includes the
// centre cell, so one is subtracted to count it once.
func combinedRun(board Board, row, col, deltaRow, deltaCol int, player Player, winLength int) int {
	forward := board.CountRun(row, col, deltaRow, deltaCol, player, winLength)
	backward := board.CountRun(row, col, -deltaRow, -deltaCol, player, winLength)
	return forward + backward - 1
}
