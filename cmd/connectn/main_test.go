package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/iamasit07/connect-n/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type firstOpen struct{}

func (firstOpen) Choose(open []int) int { return open[0] }

func testConfig() *config.Config {
	return &config.Config{
		DefaultRows:      6,
		DefaultColumns:   7,
		DefaultPlayers:   2,
		DefaultHumans:    2,
		DefaultWinLength: 4,
		MaxDimension:     9,
		MaxPlayers:       9,
		PlayerTokens:     []rune("XOABCDEFG"),
	}
}

func TestRunHumanGame(t *testing.T) {
	input := strings.Join([]string{
		"", "", "", "", "", // default setup
		"1", "1", "2", "2", "9", "3", "3", "4", // 9 is rejected and retried
		"0", // no rematch
	}, "\n") + "\n"
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader(input), &out, testConfig(), firstOpen{}, zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Please choose an available column, 1-7.")
	assert.Contains(t, out.String(), "X won on turn 7!")
	assert.Contains(t, out.String(), "X  1 won, 0 lost, 0 tied, rating 1216")
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestRunBotsOnlyWithRematch(t *testing.T) {
	cfg := testConfig()
	input := strings.Join([]string{
		// 2x2 board, four bots, two in a row
		"2", "2", "4", "0", "2",
		// rematch with the same settings
		"1",
		"", "", "", "", "",
		"0",
	}, "\n") + "\n"
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader(input), &out, cfg, firstOpen{}, zap.NewNop())
	require.NoError(t, err)

	// every cell ends up with a different player, so nobody ever pairs up
	assert.Equal(t, 2, strings.Count(out.String(), "The board's full, it's a tie!"))
	assert.NotContains(t, out.String(), "Please choose a number between")
	assert.NotContains(t, out.String(), "won on turn")
	assert.Contains(t, out.String(), "B  0 won, 0 lost, 2 tied, rating 1200")
	assert.Contains(t, out.String(), "Thanks for playing!")
	assert.Equal(t, config.Settings{Rows: 2, Columns: 2, Players: 4, Humans: 0, WinLength: 2}, cfg.Defaults())
}

func TestRunEndsOnEOF(t *testing.T) {
	err := run(context.Background(), strings.NewReader("\n\n"), io.Discard, testConfig(), firstOpen{}, zap.NewNop())
	assert.ErrorIs(t, err, io.EOF)
}
