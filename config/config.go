package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider names accepted for a seat.
const (
	ProviderHuman  = "human"
	ProviderFirst  = "first"
	ProviderSearch = "search"
	ProviderOracle = "oracle"
)

// Seat binds a player name to the provider that plays it.
type Seat struct {
	Name     string `yaml:"name"`
	Provider string `yaml:"provider"`
}

// Config is the game setup read from a YAML file.
type Config struct {
	Seats []Seat `yaml:"seats"`
	// OracleAuctionBudget is how many auctions oracle seats search past.
	OracleAuctionBudget int `yaml:"oracleAuctionBudget"`
	// Infile, when set, replays a move history instead of starting fresh.
	Infile string `yaml:"infile"`
	// Outfile, when set, receives the move-history log.
	Outfile  string `yaml:"outfile"`
	LogLevel string `yaml:"logLevel"`
	// FixedPlayOrder disables shuffling of the seat order.
	FixedPlayOrder bool `yaml:"fixedPlayOrder"`
}

// Default returns the configuration used when no file is given: a
// two-player game between a human and an oracle AI.
func Default() Config {
	return Config{
		Seats: []Seat{
			{Name: "Player 1", Provider: ProviderHuman},
			{Name: "Player 2", Provider: ProviderOracle},
		},
		OracleAuctionBudget: 1,
		LogLevel:            "info",
	}
}

// Load reads and validates a YAML config file. Absent fields fall back
// to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	cfg.Seats = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Seats) == 0 {
		cfg.Seats = Default().Seats
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	for _, seat := range c.Seats {
		if seat.Name == "" {
			return fmt.Errorf("seat is missing a player name")
		}
		switch seat.Provider {
		case "", ProviderHuman, ProviderFirst, ProviderSearch, ProviderOracle:
		default:
			return fmt.Errorf("unknown provider %q for seat %q", seat.Provider, seat.Name)
		}
	}
	if c.OracleAuctionBudget < 0 {
		return fmt.Errorf("oracleAuctionBudget cannot be negative")
	}
	return nil
}

// PlayerNames returns the seat names in order.
func (c Config) PlayerNames() []string {
	names := make([]string, len(c.Seats))
	for i, seat := range c.Seats {
		names[i] = seat.Name
	}
	return names
}
