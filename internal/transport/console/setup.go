package console

import (
	"fmt"

	"github.com/iamasit07/connect-n/internal/config"
)

// RunSetup asks for the board and player settings of the next game, offering
// cfg's defaults.
func RunSetup(p *Prompter, cfg *config.Config) (config.Settings, error) {
	def := cfg.Defaults()
	var s config.Settings
	var err error

	fmt.Fprintln(p.out, "Connect-N setup, press enter to keep the default.")

	if s.Rows, err = p.ReadIntInRange("Rows", clamp(def.Rows, 1, cfg.MaxDimension), 1, cfg.MaxDimension); err != nil {
		return config.Settings{}, err
	}
	if s.Columns, err = p.ReadIntInRange("Columns", clamp(def.Columns, 1, cfg.MaxDimension), 1, cfg.MaxDimension); err != nil {
		return config.Settings{}, err
	}
	if s.Players, err = p.ReadIntInRange("Players", clamp(def.Players, 1, cfg.MaxPlayers), 1, cfg.MaxPlayers); err != nil {
		return config.Settings{}, err
	}
	if s.Humans, err = p.ReadIntInRange("Human players", clamp(def.Humans, 0, s.Players), 0, s.Players); err != nil {
		return config.Settings{}, err
	}

	limit := min(s.Rows, s.Columns)
	if s.WinLength, err = p.ReadIntInRange("Tokens in a row to win", clamp(def.WinLength, 1, limit), 1, limit); err != nil {
		return config.Settings{}, err
	}

	if err := cfg.Validate(s); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// ReadYesNo asks a 1/0 question.
func ReadYesNo(p *Prompter, prompt string) (bool, error) {
	answer, err := p.ReadIntInRange(prompt, 0, 0, 1)
	if err != nil {
		return false, err
	}
	return answer == 1, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
