package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer writes experiment results as CSV files into a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for one experiment run.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the writer writes into.
func (w *Writer) Dir() string { return w.baseDir }

// WriteGameRecords writes one row per game to games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "winner", "winner_points", "moves", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			record.Winner,
			strconv.Itoa(record.WinnerPoints),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}

// WriteMoveRecords writes one row per searched move to moves.csv.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"game", "move", "player", "action", "duration",
		"cache_hits", "cache_misses",
		"terminal_nodes", "heuristic_nodes", "intermediate_nodes",
		"max_depth", "nodes_round_1", "nodes_round_2", "nodes_round_3",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Move),
			record.Player,
			strconv.Itoa(int(record.Action)),
			record.Duration.String(),
			strconv.FormatInt(record.Metric.CacheHits, 10),
			strconv.FormatInt(record.Metric.CacheMisses, 10),
			strconv.FormatInt(record.Metric.TerminalNodes, 10),
			strconv.FormatInt(record.Metric.HeuristicNodes, 10),
			strconv.FormatInt(record.Metric.IntermediateNodes, 10),
			strconv.FormatInt(record.Metric.MaxDepth, 10),
			strconv.FormatInt(record.Metric.NodesPerRound[0], 10),
			strconv.FormatInt(record.Metric.NodesPerRound[1], 10),
			strconv.FormatInt(record.Metric.NodesPerRound[2], 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}
	return nil
}
