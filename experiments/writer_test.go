package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ra/game"
	"ra/searcher"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteGameRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []GameRecord{
		{Game: 0, Winner: "P1", WinnerPoints: 42, Moves: 137, Duration: 3 * time.Second},
		{Game: 1, Winner: "P2", WinnerPoints: 38, Moves: 120, Duration: 2 * time.Second},
	}
	require.NoError(t, w.WriteGameRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"game", "winner", "winner_points", "moves", "duration"}, rows[0])
	require.Equal(t, []string{"0", "P1", "42", "137", "3s"}, rows[1])
	require.Equal(t, []string{"1", "P2", "38", "120", "2s"}, rows[2])
}

func TestWriteMoveRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []MoveRecord{{
		Game:     0,
		Move:     5,
		Player:   "P1",
		Action:   game.ActionAuction,
		Duration: time.Second,
		Metric: searcher.SearchMetric{
			CacheHits:         3,
			CacheMisses:       7,
			TerminalNodes:     1,
			HeuristicNodes:    4,
			IntermediateNodes: 5,
			MaxDepth:          6,
			NodesPerRound:     [game.NumRounds]int64{10, 0, 0},
		},
	}}
	require.NoError(t, w.WriteMoveRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "moves.csv"))
	require.Len(t, rows, 2)
	require.Equal(t,
		[]string{"0", "5", "P1", "1", "1s", "3", "7", "1", "4", "5", "6", "10", "0", "0"},
		rows[1])
}

func TestRunRejectsBadConfig(t *testing.T) {
	err := Run(context.Background(), RunConfig{NumGames: 0, OutDir: t.TempDir()})
	require.Error(t, err)
}
