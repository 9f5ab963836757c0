package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID          uuid.UUID
	AdvisorSide int // 0 when no advisor took part
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of outDir named by the current timestamp.
func NewWriter(outDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(outDir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "advisor_side", "starting_side", "outcome", "store1", "store2", "turns", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.AdvisorSide),
			strconv.Itoa(int(record.StartingSide)),
			record.Outcome.String(),
			strconv.Itoa(record.Store1),
			strconv.Itoa(record.Store2),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}

	if err := w.write("games.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "kind", "pit", "extra_turn", "candidates", "duration", "hash"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			strconv.Itoa(int(record.Side)),
			record.Kind,
			record.Pit.String(),
			strconv.FormatBool(record.ExtraTurn),
			strconv.Itoa(record.Candidates),
			record.Duration.String(),
			strconv.FormatUint(uint64(record.Hash), 16),
		})
	}

	if err := w.write("moves.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	return writer.WriteAll(rows)
}
