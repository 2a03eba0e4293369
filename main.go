package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ra/config"
	"ra/engine"
	"ra/experiments"
	"ra/game"
	"ra/searcher"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML game config")
	infile := flag.String("infile", "", "move-history file to replay")
	outfile := flag.String("outfile", "", "file to write the move history to")
	numExperiments := flag.Int("experiments", 0, "play this many AI-vs-AI games and write metrics instead of starting a game")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load config")
		}
		cfg = loaded
	}
	if *infile != "" {
		cfg.Infile = *infile
	}
	if *outfile != "" {
		cfg.Outfile = *outfile
	}

	setupLogging(cfg.LogLevel)

	ctx := context.Background()

	if *numExperiments > 0 {
		err := experiments.Run(ctx, experiments.RunConfig{
			NumGames:      *numExperiments,
			PlayerNames:   cfg.PlayerNames(),
			AuctionBudget: cfg.OracleAuctionBudget,
			OutDir:        "experiments-out",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("experiments failed")
		}
		return
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsed)
}

func run(ctx context.Context, cfg config.Config) error {
	opts := []engine.GameOption{}
	for _, seat := range cfg.Seats {
		provider, err := providerFor(seat, cfg)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithProvider(seat.Name, provider))
	}
	if cfg.FixedPlayOrder {
		opts = append(opts, engine.WithFixedPlayOrder())
	}

	if cfg.Outfile != "" {
		f, err := os.Create(cfg.Outfile)
		if err != nil {
			return fmt.Errorf("creating outfile: %w", err)
		}
		defer f.Close()
		opts = append(opts, engine.WithLogWriter(f))
	}

	var g *engine.RaGame
	if cfg.Infile != "" {
		f, err := os.Open(cfg.Infile)
		if err != nil {
			return fmt.Errorf("opening infile: %w", err)
		}
		loaded, loadErr := engine.LoadLog(f, opts...)
		f.Close()
		if loadErr != nil {
			return loadErr
		}
		g = loaded
	} else {
		created, err := engine.NewRaGame(cfg.PlayerNames(), opts...)
		if err != nil {
			return err
		}
		g = created
	}

	if g.State().GameEnded() {
		fmt.Println(g.State())
		return nil
	}
	return g.Play(ctx)
}

func providerFor(seat config.Seat, cfg config.Config) (engine.ActionProvider, error) {
	switch seat.Provider {
	case "", config.ProviderHuman:
		return humanProvider, nil
	case config.ProviderFirst:
		return engine.ActionProvider(searcher.FirstLegalAgent), nil
	case config.ProviderSearch:
		return engine.ActionProvider(searcher.SearchAgent()), nil
	case config.ProviderOracle:
		return engine.ActionProvider(searcher.OracleAgent(cfg.OracleAuctionBudget)), nil
	}
	return nil, fmt.Errorf("unknown provider %q", seat.Provider)
}

var stdin = bufio.NewReader(os.Stdin)

// humanProvider prints the state and the legal actions, then reads an
// action from stdin.
func humanProvider(state *game.GameState) (game.Action, error) {
	fmt.Println(state)
	fmt.Println("Possible actions:")
	for _, action := range state.LegalActions() {
		fmt.Printf("\t%d: %s\n", int(action), action.Description())
	}
	fmt.Print("User Action: ")

	line, err := stdin.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading action: %w", err)
	}
	return parseAction(strings.TrimSpace(line))
}

func parseAction(input string) (game.Action, error) {
	if n, err := strconv.Atoi(input); err == nil {
		return game.Action(n), nil
	}

	switch lower := strings.ToLower(input); lower {
	case "draw", "d":
		return game.ActionDraw, nil
	case "auction", "a":
		return game.ActionAuction, nil
	case "pass", "p", "bid nothing":
		return game.ActionBidNothing, nil
	default:
		if strings.HasPrefix(lower, "g") {
			if n, err := strconv.Atoi(strings.TrimSpace(lower[1:])); err == nil && n >= 1 && n <= 8 {
				return game.ActionGod1 + game.Action(n-1), nil
			}
		}
		if strings.HasPrefix(lower, "b") {
			if n, err := strconv.Atoi(strings.TrimSpace(lower[1:])); err == nil && n >= 1 && n <= 4 {
				return game.ActionBid1 + game.Action(n-1), nil
			}
		}
	}
	return 0, fmt.Errorf("unrecognized action %q", input)
}
