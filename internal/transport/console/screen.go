package console

import "io"

// ClearScreen moves the cursor home and wipes the terminal.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\033[H\033[2J")
	return err
}
