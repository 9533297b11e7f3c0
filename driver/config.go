package driver

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/tetfall/tet"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned when a configured value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls drop timing, canvas geometry and logging.
type Config struct {
	DropInterval time.Duration `env:"TETFALL_DROP_INTERVAL" envDefault:"750ms"`
	CanvasWidth  int           `env:"TETFALL_CANVAS_WIDTH"  envDefault:"320"`
	Seed         uint64        `env:"TETFALL_SEED"`
	LogLevel     string        `env:"TETFALL_LOG_LEVEL"     envDefault:"info"`
}

// DefaultConfig returns the configuration used when nothing is set in the environment.
func DefaultConfig() Config {
	return Config{
		DropInterval: 750 * time.Millisecond,
		CanvasWidth:  320,
		LogLevel:     "info",
	}
}

// LoadConfig reads the configuration from TETFALL_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the values can drive a game.
func (c Config) Validate() error {
	if c.DropInterval <= 0 {
		return fmt.Errorf("%w: drop interval %s must be positive", ErrInvalidConfig, c.DropInterval)
	}
	if c.CanvasWidth < tet.BoardCols {
		return fmt.Errorf("%w: canvas width %d is narrower than the board", ErrInvalidConfig, c.CanvasWidth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// BlockSize is the pixel size of one board cell.
func (c Config) BlockSize() int {
	return c.CanvasWidth / tet.BoardCols
}

// CanvasHeight is the pixel height of one board panel, 1.6 times its width.
func (c Config) CanvasHeight() int {
	return c.CanvasWidth * 8 / 5
}

// ApplyLogLevel sets the global logrus level.
func (c Config) ApplyLogLevel() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	log.SetLevel(level)
	return nil
}

// Rand returns the random source for a new game. A zero seed draws a fresh one.
func (c Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}
