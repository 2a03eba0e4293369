package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ra/game"
)

// Move is one entry of a move history: the action taken and, for
// draws, the tile that came out of the bag.
type Move struct {
	Action game.Action
	Drawn  game.Tile
}

// MoveLog is a full game record: the players in seat order, the bag's
// draw order, and every move taken. A MoveLog determines a game
// completely, so it can be replayed.
type MoveLog struct {
	PlayerNames []string
	DrawOrder   []game.Tile
	Moves       []Move
}

// WriteHeader writes the player-names line and the draw-order line.
func (l *MoveLog) WriteHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(l.PlayerNames, " ")); err != nil {
		return fmt.Errorf("writing player names: %w", err)
	}
	order := make([]string, len(l.DrawOrder))
	for i, t := range l.DrawOrder {
		order[i] = strconv.Itoa(int(t))
	}
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(order, " ")); err != nil {
		return fmt.Errorf("writing draw order: %w", err)
	}
	return nil
}

// Write writes the whole log: header plus one line per move.
func (l *MoveLog) Write(w io.Writer) error {
	if err := l.WriteHeader(w); err != nil {
		return err
	}
	for _, m := range l.Moves {
		if err := writeMove(w, m); err != nil {
			return err
		}
	}
	return nil
}

func writeMove(w io.Writer, m Move) error {
	var err error
	if m.Action == game.ActionDraw {
		_, err = fmt.Fprintf(w, "%d %d\n", int(m.Action), int(m.Drawn))
	} else {
		_, err = fmt.Fprintf(w, "%d\n", int(m.Action))
	}
	if err != nil {
		return fmt.Errorf("writing move: %w", err)
	}
	return nil
}

// ParseMoveLog reads a move-history log.
func ParseMoveLog(r io.Reader) (*MoveLog, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("move log is missing the player-names line")
	}
	names := strings.Fields(scanner.Text())
	if len(names) == 0 {
		return nil, fmt.Errorf("move log has an empty player-names line")
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("move log is missing the draw-order line")
	}
	var drawOrder []game.Tile
	for _, field := range strings.Fields(scanner.Text()) {
		n, err := strconv.Atoi(field)
		if err != nil || !game.Tile(n).Valid() {
			return nil, fmt.Errorf("invalid tile %q in draw order", field)
		}
		drawOrder = append(drawOrder, game.Tile(n))
	}

	var moves []Move
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		action, err := strconv.Atoi(fields[0])
		if err != nil || !game.Action(action).Valid() {
			return nil, fmt.Errorf("invalid action %q in move log", fields[0])
		}
		move := Move{Action: game.Action(action), Drawn: game.NoTile}
		switch {
		case len(fields) == 1:
			if move.Action == game.ActionDraw {
				return nil, fmt.Errorf("draw move is missing its drawn tile")
			}
		case len(fields) == 2 && move.Action == game.ActionDraw:
			tile, err := strconv.Atoi(fields[1])
			if err != nil || !game.Tile(tile).Valid() {
				return nil, fmt.Errorf("invalid drawn tile %q in move log", fields[1])
			}
			move.Drawn = game.Tile(tile)
		default:
			return nil, fmt.Errorf("cannot parse move line %q", line)
		}
		moves = append(moves, move)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading move log: %w", err)
	}

	return &MoveLog{PlayerNames: names, DrawOrder: drawOrder, Moves: moves}, nil
}
