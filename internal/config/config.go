package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	DefaultRows      int
	DefaultColumns   int
	DefaultPlayers   int
	DefaultHumans    int
	DefaultWinLength int
	MaxDimension     int
	MaxPlayers       int
	PlayerTokens     []rune
	ClearScreen      bool
	BotDelay         time.Duration
	LogLevel         string
	LogFile          string
}

// Settings are the values collected by the setup dialog for one game.
type Settings struct {
	Rows      int
	Columns   int
	Players   int
	Humans    int
	WinLength int
}

var AppConfig *Config

const defaultTokens = "XOABCDEFG"

func LoadConfig() *Config {
	tokens := []rune(GetEnv("CONNECTN_TOKENS", defaultTokens))

	// every player needs a distinct token to be drawn with
	maxPlayers := GetEnvAsInt("CONNECTN_MAX_PLAYERS", 9)
	if maxPlayers > len(tokens) {
		log.Printf("CONNECTN_MAX_PLAYERS %d exceeds the %d configured tokens, capping", maxPlayers, len(tokens))
		maxPlayers = len(tokens)
	}
	if maxPlayers < 1 {
		log.Printf("CONNECTN_MAX_PLAYERS %d is below 1, using 1", maxPlayers)
		maxPlayers = 1
	}

	maxDimension := GetEnvAsInt("CONNECTN_MAX_DIMENSION", 9)
	if maxDimension < 1 {
		log.Printf("CONNECTN_MAX_DIMENSION %d is below 1, using 1", maxDimension)
		maxDimension = 1
	}

	botDelayMs := GetEnvAsInt("CONNECTN_BOT_DELAY_MS", 400)

	AppConfig = &Config{
		DefaultRows:      GetEnvAsInt("CONNECTN_ROWS", 6),
		DefaultColumns:   GetEnvAsInt("CONNECTN_COLUMNS", 7),
		DefaultPlayers:   GetEnvAsInt("CONNECTN_PLAYERS", 2),
		DefaultHumans:    GetEnvAsInt("CONNECTN_HUMANS", 2),
		DefaultWinLength: GetEnvAsInt("CONNECTN_WIN_LENGTH", 4),
		MaxDimension:     maxDimension,
		MaxPlayers:       maxPlayers,
		PlayerTokens:     tokens,
		ClearScreen:      GetEnvAsBool("CONNECTN_CLEAR_SCREEN", true),
		BotDelay:         time.Duration(botDelayMs) * time.Millisecond,
		LogLevel:         strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		LogFile:          GetEnv("LOG_FILE", ""),
	}

	return AppConfig
}

// Defaults returns the settings offered by the setup dialog before the user
// changes anything.
func (c *Config) Defaults() Settings {
	return Settings{
		Rows:      c.DefaultRows,
		Columns:   c.DefaultColumns,
		Players:   c.DefaultPlayers,
		Humans:    c.DefaultHumans,
		WinLength: c.DefaultWinLength,
	}
}

// Remember makes s the defaults offered for the next game.
func (c *Config) Remember(s Settings) {
	c.DefaultRows = s.Rows
	c.DefaultColumns = s.Columns
	c.DefaultPlayers = s.Players
	c.DefaultHumans = s.Humans
	c.DefaultWinLength = s.WinLength
}

// Validate applies the console's range policy. The engine itself trusts
// whatever it is given.
func (c *Config) Validate(s Settings) error {
	if s.Rows < 1 || s.Rows > c.MaxDimension {
		return errors.Errorf("rows must be between 1 and %d, got %d", c.MaxDimension, s.Rows)
	}
	if s.Columns < 1 || s.Columns > c.MaxDimension {
		return errors.Errorf("columns must be between 1 and %d, got %d", c.MaxDimension, s.Columns)
	}
	if s.Players < 1 || s.Players > c.MaxPlayers {
		return errors.Errorf("players must be between 1 and %d, got %d", c.MaxPlayers, s.Players)
	}
	if s.Humans < 0 || s.Humans > s.Players {
		return errors.Errorf("humans must be between 0 and %d, got %d", s.Players, s.Humans)
	}
	if limit := min(s.Rows, s.Columns); s.WinLength < 1 || s.WinLength > limit {
		return errors.Errorf("win length must be between 1 and %d, got %d", limit, s.WinLength)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
