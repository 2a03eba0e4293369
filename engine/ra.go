package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"ra/game"
	"ra/searcher"
)

// maxActionAttempts is how many times a provider may return an illegal
// action before the game gives up on it.
const maxActionAttempts = 10

var rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// ActionProvider supplies the next action for a game state. Providers
// back seats: an AI agent, a UI, a test script.
type ActionProvider func(*game.GameState) (game.Action, error)

// RaGame orchestrates one game: it owns the state, asks each seat's
// provider for moves, and records the move history.
type RaGame struct {
	playerNames []string
	state       *game.GameState

	providers       map[string]ActionProvider
	defaultProvider ActionProvider

	moveLog       MoveLog
	logWriter     io.Writer
	headerWritten bool

	fixedPlayOrder bool
	drawOrder      []game.Tile
}

// GameOption configures a RaGame.
type GameOption func(*RaGame)

// WithFixedPlayOrder keeps the given player order instead of shuffling it.
func WithFixedPlayOrder() GameOption {
	return func(g *RaGame) { g.fixedPlayOrder = true }
}

// WithDrawOrder fixes the tile bag's draw order instead of shuffling it.
func WithDrawOrder(order []game.Tile) GameOption {
	return func(g *RaGame) { g.drawOrder = append([]game.Tile(nil), order...) }
}

// WithProvider attaches an action provider to the named player's seat.
func WithProvider(playerName string, provider ActionProvider) GameOption {
	return func(g *RaGame) { g.providers[playerName] = provider }
}

// WithDefaultProvider sets the provider for seats without their own.
func WithDefaultProvider(provider ActionProvider) GameOption {
	return func(g *RaGame) { g.defaultProvider = provider }
}

// WithLogWriter streams the move-history log to w as the game is played.
func WithLogWriter(w io.Writer) GameOption {
	return func(g *RaGame) { g.logWriter = w }
}

// NewRaGame sets up a game for the named players. Play order is
// shuffled unless fixed; the starting sun sets go to seats in canonical
// order, so the (playerNames, drawOrder) pair determines the game.
func NewRaGame(playerNames []string, opts ...GameOption) (*RaGame, error) {
	g := &RaGame{
		playerNames:     append([]string(nil), playerNames...),
		providers:       map[string]ActionProvider{},
		defaultProvider: searcher.FirstLegalAgent,
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.fixedPlayOrder {
		rng.Shuffle(len(g.playerNames), func(i, j int) {
			g.playerNames[i], g.playerNames[j] = g.playerNames[j], g.playerNames[i]
		})
	}
	if g.drawOrder == nil {
		g.drawOrder = game.NewTileBag().DrawOrder()
	}

	state, err := game.NewGameStateFromOrder(g.playerNames, g.drawOrder)
	if err != nil {
		return nil, err
	}
	g.state = state
	g.moveLog = MoveLog{
		PlayerNames: g.playerNames,
		DrawOrder:   append([]game.Tile(nil), g.drawOrder...),
	}
	return g, nil
}

// State returns the underlying game state.
func (g *RaGame) State() *game.GameState { return g.state }

// PlayerNames returns the players in seat order.
func (g *RaGame) PlayerNames() []string {
	return append([]string(nil), g.playerNames...)
}

// Log returns the move history recorded so far.
func (g *RaGame) Log() MoveLog {
	l := MoveLog{
		PlayerNames: append([]string(nil), g.moveLog.PlayerNames...),
		DrawOrder:   append([]game.Tile(nil), g.moveLog.DrawOrder...),
		Moves:       append([]Move(nil), g.moveLog.Moves...),
	}
	return l
}

// GetAction asks a provider for an action until it returns a legal one,
// giving up after maxActionAttempts.
func (g *RaGame) GetAction(provider ActionProvider, legal []game.Action) (game.Action, error) {
	for attempt := 0; attempt < maxActionAttempts; attempt++ {
		action, err := provider(g.state)
		if err != nil {
			return 0, fmt.Errorf("action provider failed: %w", err)
		}
		for _, l := range legal {
			if action == l {
				return action, nil
			}
		}
		log.Warn().
			Int("action", int(action)).
			Str("player", g.state.CurrentPlayerName()).
			Msg("provider returned illegal action")
	}
	return 0, fmt.Errorf("no legal action after %d attempts", maxActionAttempts)
}

func (g *RaGame) providerFor(playerName string) ActionProvider {
	if p, ok := g.providers[playerName]; ok {
		return p
	}
	return g.defaultProvider
}

// Play runs the game to completion. The context is checked between
// moves so a caller can cancel a long game.
func (g *RaGame) Play(ctx context.Context) error {
	if err := g.writeHeaderOnce(); err != nil {
		return err
	}

	for !g.state.GameEnded() {
		if err := ctx.Err(); err != nil {
			return err
		}

		legal := g.state.LegalActions()
		provider := g.providerFor(g.state.CurrentPlayerName())
		action, err := g.GetAction(provider, legal)
		if err != nil {
			return err
		}

		drawn, err := g.state.Execute(action, legal, game.NoTile)
		if err != nil {
			return fmt.Errorf("executing action %d: %w", int(action), err)
		}
		if err := g.record(Move{Action: action, Drawn: drawn}); err != nil {
			return err
		}
	}

	log.Info().Interface("scores", g.state.PlayerPoints()).Msg("game over")
	return nil
}

func (g *RaGame) writeHeaderOnce() error {
	if g.logWriter == nil || g.headerWritten {
		return nil
	}
	if err := g.moveLog.WriteHeader(g.logWriter); err != nil {
		return err
	}
	g.headerWritten = true
	return nil
}

func (g *RaGame) record(m Move) error {
	g.moveLog.Moves = append(g.moveLog.Moves, m)
	if g.logWriter != nil {
		return writeMove(g.logWriter, m)
	}
	return nil
}

// Replay reconstructs a finished or partial game from its move log,
// verifying each logged draw against the tile the bag actually
// produces.
func Replay(moveLog *MoveLog, opts ...GameOption) (*RaGame, error) {
	opts = append(opts, WithFixedPlayOrder(), WithDrawOrder(moveLog.DrawOrder))
	g, err := NewRaGame(moveLog.PlayerNames, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.writeHeaderOnce(); err != nil {
		return nil, err
	}

	for i, m := range moveLog.Moves {
		legal := g.state.LegalActions()
		if legal == nil {
			return nil, fmt.Errorf("move %d: game already ended", i)
		}
		drawn, err := g.state.Execute(m.Action, legal, game.NoTile)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		if m.Action == game.ActionDraw && drawn != m.Drawn {
			return nil, fmt.Errorf("move %d: log says %v was drawn but the bag produced %v",
				i, m.Drawn, drawn)
		}
		if err := g.record(Move{Action: m.Action, Drawn: drawn}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// LoadLog parses a move-history log and replays it.
func LoadLog(r io.Reader, opts ...GameOption) (*RaGame, error) {
	moveLog, err := ParseMoveLog(r)
	if err != nil {
		return nil, err
	}
	return Replay(moveLog, opts...)
}

// SerializedRaGame is a data-only snapshot of a whole game.
type SerializedRaGame struct {
	PlayerNames []string                 `json:"playerNames"`
	GameState   game.SerializedGameState `json:"gameState"`
}

// Serialize returns a data-only snapshot of the game.
func (g *RaGame) Serialize() SerializedRaGame {
	return SerializedRaGame{
		PlayerNames: g.PlayerNames(),
		GameState:   g.state.Serialize(),
	}
}
