package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetfall/driver"
	"github.com/plus3/tetfall/tet"
	log "github.com/sirupsen/logrus"
)

const (
	panelGap  = 16
	statusBar = 20
)

// Game adapts the driver to ebiten's update/draw loop. The left panel shows the
// board cells and the right one the outlines of everything that has landed.
type Game struct {
	cfg  driver.Config
	drv  *driver.Driver
	keys []ebiten.Key
}

func newGame(cfg driver.Config) *Game {
	return &Game{
		cfg: cfg,
		drv: driver.New(tet.NewGame(tet.WithRand(cfg.Rand())), cfg.DropInterval),
	}
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if isQuit(k) {
			return ebiten.Termination
		}
		if k == ebiten.KeyR && g.drv.Over() {
			log.Info("restarting")
			g.drv = driver.New(tet.NewGame(tet.WithRand(g.cfg.Rand())), g.cfg.DropInterval)
			return nil
		}
		g.drv.Send(commandFor(k))
	}

	g.drv.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	block := float32(g.cfg.BlockSize())
	right := float32(g.cfg.CanvasWidth + panelGap)

	g.drv.View(func(game *tet.Game) {
		drawPanel(screen, 0, game.Board(), block)
		drawPanel(screen, right, game.Board(), block)
		drawCells(screen, 0, game, block)
		drawOutlines(screen, right, game, block)
	})

	stats := g.drv.Stats()
	status := fmt.Sprintf("lines %d  fragments %d", stats.Game.Lines, stats.Game.Fragments)
	switch {
	case g.drv.Over():
		status += "  GAME OVER (r to restart)"
	case g.drv.Halted():
		status += "  halted (down or space to resume)"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.cfg.CanvasHeight()+2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 2*g.cfg.CanvasWidth + panelGap, g.cfg.CanvasHeight() + statusBar
}

func main() {
	cfg, err := driver.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	flag.DurationVar(&cfg.DropInterval, "drop", cfg.DropInterval, "Time between automatic drops.")
	flag.IntVar(&cfg.CanvasWidth, "width", cfg.CanvasWidth, "Pixel width of one board panel.")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for piece selection, 0 for a random one.")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid flags")
	}
	if err := cfg.ApplyLogLevel(); err != nil {
		log.WithError(err).Fatal("invalid log level")
	}

	game := newGame(cfg)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tetfall")

	log.WithFields(log.Fields{
		"drop":  cfg.DropInterval,
		"width": cfg.CanvasWidth,
		"seed":  cfg.Seed,
	}).Info("starting")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
