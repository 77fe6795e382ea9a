package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect-n/internal/config"
	"github.com/iamasit07/connect-n/internal/service/bot"
	"github.com/iamasit07/connect-n/internal/service/game"
	"github.com/iamasit07/connect-n/internal/transport/console"
	"github.com/iamasit07/connect-n/pkg/logging"
	"github.com/iamasit07/connect-n/pkg/uid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.LoadConfig()
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sessionID, err := uid.GenerateSessionID()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	logger = logger.With(zap.String("session_id", sessionID))
	logger.Info("[MAIN] Starting connect-n", zap.Bool("env_file", envLoaded))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chooser := bot.NewRandomChooser(time.Now().UnixNano())
	if err := run(ctx, os.Stdin, os.Stdout, cfg, chooser, logger); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Println()
			logger.Info("[MAIN] Input closed, exiting")
			return
		}
		logger.Error("[MAIN] Exiting after error", zap.Error(err))
		log.Fatalf("connect-n: %v", err)
	}
	logger.Info("[MAIN] Exited gracefully")
}

// run plays games until the players decline a rematch or input ends.
func run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, chooser bot.Chooser, logger *zap.Logger) error {
	prompter := console.NewPrompter(in, out)
	renderer := console.NewRenderer(cfg.PlayerTokens)
	view := console.NewView(out, renderer, cfg.ClearScreen)
	human := console.NewHumanSeat(prompter, renderer)
	computer := bot.NewSeat(chooser, cfg.BotDelay)
	scoreboard := game.NewScoreboard()

	for {
		settings, err := console.RunSetup(prompter, cfg)
		if err != nil {
			return errors.Wrap(err, "setup")
		}
		cfg.Remember(settings)

		session, err := game.NewGameSession(settings, game.Seats(settings, human, computer), logger)
		if err != nil {
			return err
		}
		result, err := session.Run(ctx, view)
		if err != nil {
			return err
		}
		scoreboard.Record(settings.Players, result.Outcome)
		fmt.Fprint(out, renderer.RenderStandings(scoreboard.Standings()))

		again, err := console.ReadYesNo(prompter, "Play again? 1 = yes, 0 = no")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(out, "Thanks for playing!")
			return nil
		}
	}
}
