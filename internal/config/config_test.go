package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"CONNECTN_ROWS", "CONNECTN_COLUMNS", "CONNECTN_PLAYERS", "CONNECTN_HUMANS",
		"CONNECTN_WIN_LENGTH", "CONNECTN_MAX_DIMENSION", "CONNECTN_MAX_PLAYERS",
		"CONNECTN_TOKENS", "CONNECTN_CLEAR_SCREEN", "CONNECTN_BOT_DELAY_MS",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, Settings{Rows: 6, Columns: 7, Players: 2, Humans: 2, WinLength: 4}, cfg.Defaults())
	assert.Equal(t, 9, cfg.MaxDimension)
	assert.Equal(t, 9, cfg.MaxPlayers)
	assert.Equal(t, []rune("XOABCDEFG"), cfg.PlayerTokens)
	assert.True(t, cfg.ClearScreen)
	assert.Equal(t, 400*time.Millisecond, cfg.BotDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CONNECTN_ROWS", "8")
	t.Setenv("CONNECTN_WIN_LENGTH", "five")
	t.Setenv("CONNECTN_TOKENS", "RY")
	t.Setenv("CONNECTN_MAX_PLAYERS", "9")
	t.Setenv("CONNECTN_CLEAR_SCREEN", "false")
	t.Setenv("CONNECTN_BOT_DELAY_MS", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := LoadConfig()

	assert.Equal(t, 8, cfg.DefaultRows)
	assert.Equal(t, 4, cfg.DefaultWinLength, "bad integers fall back to the default")
	assert.Equal(t, 2, cfg.MaxPlayers, "capped by the number of tokens")
	assert.Equal(t, []rune("RY"), cfg.PlayerTokens)
	assert.False(t, cfg.ClearScreen)
	assert.Zero(t, cfg.BotDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := &Config{MaxDimension: 9, MaxPlayers: 9, PlayerTokens: []rune(defaultTokens)}

	valid := Settings{Rows: 6, Columns: 7, Players: 2, Humans: 1, WinLength: 4}
	require.NoError(t, cfg.Validate(valid))

	cases := []struct {
		name   string
		modify func(s *Settings)
		msg    string
	}{
		{"no rows", func(s *Settings) { s.Rows = 0 }, "rows"},
		{"too many columns", func(s *Settings) { s.Columns = 10 }, "columns"},
		{"no players", func(s *Settings) { s.Players = 0 }, "players"},
		{"more humans than players", func(s *Settings) { s.Humans = 3 }, "humans"},
		{"negative humans", func(s *Settings) { s.Humans = -1 }, "humans"},
		{"win longer than the board is tall", func(s *Settings) { s.WinLength = 7 }, "win length must be between 1 and 6"},
		{"zero win length", func(s *Settings) { s.WinLength = 0 }, "win length"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.modify(&s)
			err := cfg.Validate(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestRemember(t *testing.T) {
	cfg := &Config{}
	s := Settings{Rows: 5, Columns: 5, Players: 3, Humans: 1, WinLength: 3}

	cfg.Remember(s)
	assert.Equal(t, s, cfg.Defaults())
}

func TestLoadConfigFloorsLimits(t *testing.T) {
	for _, v := range []string{"0", "-3"} {
		t.Setenv("CONNECTN_TOKENS", "")
		t.Setenv("CONNECTN_MAX_PLAYERS", v)
		t.Setenv("CONNECTN_MAX_DIMENSION", v)

		cfg := LoadConfig()

		assert.Equal(t, 1, cfg.MaxPlayers, "max players %s", v)
		assert.Equal(t, 1, cfg.MaxDimension, "max dimension %s", v)
		assert.NoError(t, cfg.Validate(Settings{Rows: 1, Columns: 1, Players: 1, Humans: 1, WinLength: 1}))
	}
}
