package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads whole-line integers, asking again until it gets one.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadInt returns io.EOF once the input is exhausted.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please input a number!")
			continue
		}
		return value, nil
	}
}

// ReadIntInRange keeps asking until the value is within [min, max]. An empty
// line picks def.
func (p *Prompter) ReadIntInRange(prompt string, def, min, max int) (int, error) {
	for {
		line, err := p.readLine(fmt.Sprintf("%s (%d-%d) [%d]: ", prompt, min, max, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please input a number!")
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "Please choose a number between %d and %d.\n", min, max)
			continue
		}
		return value, nil
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
