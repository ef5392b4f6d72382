package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const gamesFile = "games.csv"

var gameHeader = []string{
	"game", "winner", "start_time", "end_time", "duration", "rounds", "turns",
	"invalid_moves", "pickups", "declined_pickups", "battles", "eliminations",
}

// Writer appends finished game metrics to games.csv in its directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Path() string {
	return filepath.Join(w.baseDir, gamesFile)
}

// WriteGameRecords appends one row per game, writing the header first if the file is new.
func (w *Writer) WriteGameRecords(records []GameMetric) error {
	f, err := os.OpenFile(w.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open game records file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat game records file: %w", err)
	}

	writer := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := writer.Write(gameHeader); err != nil {
			return fmt.Errorf("failed to write game records header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{
			record.GameID,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.InvalidMoves),
			strconv.Itoa(record.Pickups),
			strconv.Itoa(record.DeclinedPickups),
			strconv.Itoa(record.Battles),
			strconv.Itoa(record.Eliminations),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
