package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetfall/driver"
	"github.com/plus3/tetfall/tet"
	log "github.com/sirupsen/logrus"
)

// Commands a bot chooses from. Unknown is left out so auto-drop never halts.
var botCommands = []driver.Command{
	driver.MoveLeft,
	driver.MoveRight,
	driver.Rotate,
	driver.SoftDrop,
	driver.HardDrop,
}

// options are the soak settings that do not belong to driver.Config.
type options struct {
	duration       time.Duration
	maxTicks       int
	commandRate    float64
	gcPauseMetrics bool
}

// parseFlags overlays command-line flags on cfg. Flags that are not given keep the
// values cfg already holds from the environment.
func parseFlags(cfg driver.Config, args []string) (driver.Config, options, error) {
	var opts options
	fs := flag.NewFlagSet("tetfall-soak", flag.ContinueOnError)
	fs.DurationVar(&opts.duration, "duration", 10*time.Second, "The total duration the soak should run for.")
	fs.IntVar(&opts.maxTicks, "max-ticks", 5000, "Ticks after which an unfinished game is abandoned.")
	fs.Float64Var(&opts.commandRate, "command-rate", 0.5, "Chance of the bot sending a command each tick.")
	fs.BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the first game, 0 for a random one.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	if err := fs.Parse(args); err != nil {
		return driver.Config{}, options{}, err
	}
	return cfg, opts, nil
}

func main() {
	cfg, err := driver.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	cfg, opts, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.ApplyLogLevel(); err != nil {
		log.WithError(err).Fatal("invalid log level")
	}

	report := &Report{
		Duration:       opts.duration,
		MaxTicks:       opts.maxTicks,
		CommandRate:    opts.commandRate,
		GCPauseMetrics: opts.gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.WithField("duration", opts.duration).Info("running soak")
	ctx, cancel := context.WithTimeout(context.Background(), opts.duration)
	defer cancel()

	rng := cfg.Rand()
	start := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			seed := rng.Uint64()
			result := play(ctx, seed, cfg.DropInterval, opts.maxTicks, opts.commandRate)
			report.Add(result)
		}
	}
	report.TotalTime = time.Since(start)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.WithError(err).Fatal("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

// play runs one seeded game with a random bot until it is over, the tick budget is
// spent or ctx is done.
func play(ctx context.Context, seed uint64, interval time.Duration, maxTicks int, commandRate float64) GameResult {
	bot := rand.New(rand.NewPCG(seed, ^seed))
	game := tet.NewGame(tet.WithRand(rand.New(rand.NewPCG(seed, seed))))
	drv := driver.New(game, interval)

	for ctx.Err() == nil && !drv.Over() && drv.Stats().Ticks < int64(maxTicks) {
		if bot.Float64() < commandRate {
			drv.Send(botCommands[bot.IntN(len(botCommands))])
		}
		drv.Advance(interval)
	}

	stats := drv.Stats()
	log.WithFields(log.Fields{
		"seed":  seed,
		"lines": stats.Game.Lines,
		"ticks": stats.Ticks,
		"over":  drv.Over(),
	}).Debug("game finished")

	return GameResult{
		Seed:  seed,
		Over:  drv.Over(),
		Stats: stats,
	}
}
