package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// leaderboardRecord is one CSV row of the exported leaderboard.
type leaderboardRecord struct {
	Rank     int    `csv:"rank"`
	Username string `csv:"username"`
	Score    int    `csv:"score"`
	Level    int    `csv:"level"`
	Outcome  string `csv:"outcome"`
	PlayedAt string `csv:"played_at"`
}

// WriteCSV writes the leaderboard as CSV with a header row.
// A non-positive limit exports every result.
func (s *Store) WriteCSV(w io.Writer, limit int) error {
	var (
		entries []ScoreEntry
		err     error
	)
	if limit > 0 {
		entries, err = s.TopScores(limit)
	} else {
		entries, err = s.AllScores()
	}
	if err != nil {
		return err
	}

	records := make([]*leaderboardRecord, 0, len(entries))
	for i, e := range entries {
		rec := &leaderboardRecord{
			Rank:     i + 1,
			Username: e.Username,
			Score:    e.Score,
			Level:    e.Level,
			Outcome:  e.Outcome,
		}
		if !e.CreatedAt.IsZero() {
			rec.PlayedAt = e.CreatedAt.Format(time.RFC3339)
		}
		records = append(records, rec)
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
