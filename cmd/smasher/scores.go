package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-smasher/internal/storage"
)

var (
	flagCSV         bool
	flagScoreLimit  int
	flagScoreLevel  int
	flagScorePlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores across all players.

Examples:
  smasher scores
  smasher scores --level 3
  smasher scores --player alice
  smasher scores --csv --limit 0 > leaderboard.csv`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write the leaderboard as CSV to stdout")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of entries (0 = all, CSV only)")
	scoresCmd.Flags().IntVar(&flagScoreLevel, "level", 0, "Only show scores for this level")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show statistics for one player")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagCSV:
		return store.WriteCSV(os.Stdout, flagScoreLimit)
	case flagScorePlayer != "":
		return printPlayerStats(store, flagScorePlayer)
	}

	limit := flagScoreLimit
	if limit <= 0 {
		limit = 10
	}

	var scores []storage.ScoreEntry
	title := "High Scores"
	if flagScoreLevel > 0 {
		scores, err = store.TopScoresForLevel(flagScoreLevel, limit)
		title = fmt.Sprintf("High Scores - Level %d", flagScoreLevel)
	} else {
		scores, err = store.TopScores(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'smasher play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-7s  %s\n", "Rank", "Player", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-7s  %s\n", "----", "------", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %-7s  %s\n",
			i+1, e.Username, e.Score, e.Level, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printPlayerStats(store *storage.Store, player string) error {
	stats, err := store.GetPlayerStats(player)
	if err != nil {
		return err
	}
	unlocked, err := store.UnlockedLevels(player)
	if err != nil {
		return err
	}

	fmt.Printf("Player: %s\n", stats.Username)
	fmt.Println()
	if stats.Attempts == 0 {
		fmt.Println("No finished attempts yet.")
		return nil
	}
	fmt.Printf("  %-12s %d\n", "Attempts", stats.Attempts)
	fmt.Printf("  %-12s %d\n", "Victories", stats.Victories)
	fmt.Printf("  %-12s %d\n", "High score", stats.HighScore)
	fmt.Printf("  %-12s %.1f\n", "Average", stats.AvgScore)
	fmt.Printf("  %-12s %d\n", "Total", stats.TotalScore)
	fmt.Printf("  %-12s %v\n", "Unlocked", unlocked)
	fmt.Printf("  %-12s %s\n", "Last played", stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
