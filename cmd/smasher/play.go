package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/level"
	"github.com/vovakirdan/block-smasher/internal/platform/tui"
	"github.com/vovakirdan/block-smasher/internal/smasher"
	"github.com/vovakirdan/block-smasher/internal/storage"
)

var (
	flagUser        string
	flagNoParticles bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play Block Smasher",
	Long: `Start the game at the level picker, or jump straight to a level.

Curated levels unlock one by one; seeded levels (above the procedural
threshold, 101 and up by default) are always open.

Controls:
  Mouse / ←→ / A D   - Move paddle
  Space / click      - Launch ball
  P                  - Pause
  R                  - Retry level
  N                  - Next level (after clearing one)
  Esc / B            - Back to level picker
  Ctrl+S             - Save a text screenshot
  Q / Ctrl+C         - Quit

Examples:
  smasher play
  smasher play 2 --user alice
  smasher play 137 --difficulty hard
  smasher play --config ./my-smasher.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUser, "user", defaultUser(), "Player name for scores and unlocks")
	playCmd.Flags().BoolVar(&flagNoParticles, "no-particles", false, "Disable particle effects")
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, args []string) error {
	startLevel := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid level %q: expected a positive number", args[0])
		}
		startLevel = n
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	gen := level.NewGenerator(gameCfg.LevelParams())
	if startLevel > 0 && !gen.Known(startLevel) {
		return fmt.Errorf("%w: %d (run 'smasher levels' to see them)", smasher.ErrUnknownLevel, startLevel)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	session := smasher.NewSession(gameCfg.Session(), gen, seed())
	session.SetPlayer(flagUser)
	if flagNoParticles {
		session.SetParticles(false)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "player", flagUser, "level", startLevel, "difficulty", flagDifficulty)

	return tui.RunSession(tui.AppOptions{
		Session: session,
		Store:   store,
		Logger:  logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		KeyStep:    gameCfg.Paddle.KeyStep,
		StartLevel: startLevel,
	})
}
