package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-smasher/internal/level"
)

var (
	flagSurvey     string
	flagProcedural int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `Show the curated levels and the first seeded ones with their block counts.

--survey generates a range of levels and prints block-count statistics.

Examples:
  smasher levels
  smasher levels --procedural 24
  smasher levels --survey 101-300`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagSurvey, "survey", "", "Level range FROM-TO to summarise")
	levelsCmd.Flags().IntVar(&flagProcedural, "procedural", 12, "Number of seeded levels to list")
}

func runLevels(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	gen := level.NewGenerator(gameCfg.LevelParams())

	if flagSurvey != "" {
		from, to, err := parseRange(flagSurvey)
		if err != nil {
			return err
		}
		printSurvey(level.Survey(gen, level.Range(from, to)), from, to)
		return nil
	}

	infos := append(level.List(), level.ProceduralLevels(gen.Params().Threshold, flagProcedural)...)

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-5s  %-22s  %-10s  %s\n", "No.", "Name", "Difficulty", "Blocks")
	fmt.Printf("  %-5s  %-22s  %-10s  %s\n", "---", "----", "----------", "------")
	for _, info := range infos {
		fmt.Printf("  %-5d  %-22s  %-10s  %d\n", info.Number, info.Name, info.Difficulty, len(gen.Generate(info.Number)))
	}

	fmt.Println()
	fmt.Println(seededNote(gen.Params().Threshold))
	fmt.Println("Run 'smasher play <level>' to play one.")
	return nil
}

// seededNote tells the player which level numbers are generated. The
// threshold level is itself seeded.
func seededNote(threshold int) string {
	return fmt.Sprintf("Every level at or above %d is seeded and always playable.", threshold)
}

func parseRange(s string) (from, to int, err error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q: expected FROM-TO", s)
	}
	if from, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", lo, err)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", hi, err)
	}
	if to < from {
		return 0, 0, fmt.Errorf("invalid range %q: end before start", s)
	}
	return from, to, nil
}

func printSurvey(res level.SurveyResult, from, to int) {
	fmt.Printf("Block counts for levels %d-%d (%d levels)\n", from, to, len(res.Levels))
	fmt.Println()
	fmt.Printf("  %-8s %8.2f\n", "Mean", res.Mean)
	fmt.Printf("  %-8s %8.2f\n", "StdDev", res.StdDev)
	fmt.Printf("  %-8s %8.0f\n", "Min", res.Min)
	fmt.Printf("  %-8s %8.0f\n", "Max", res.Max)
	fmt.Printf("  %-8s %8.0f\n", "Total", res.Total)

	empty := 0
	for _, c := range res.Counts {
		if c == 0 {
			empty++
		}
	}
	if empty > 0 {
		fmt.Println()
		fmt.Printf("%d of these levels have no layout.\n", empty)
	}
}
