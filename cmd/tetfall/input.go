package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetfall/driver"
)

var keyCommands = map[ebiten.Key]driver.Command{
	ebiten.KeyArrowLeft:  driver.MoveLeft,
	ebiten.KeyArrowRight: driver.MoveRight,
	ebiten.KeyArrowUp:    driver.Rotate,
	ebiten.KeyArrowDown:  driver.SoftDrop,
	ebiten.KeySpace:      driver.HardDrop,
}

// commandFor maps a pressed key to a driver command. Keys without a binding become
// driver.Unknown.
func commandFor(k ebiten.Key) driver.Command {
	if cmd, ok := keyCommands[k]; ok {
		return cmd
	}
	return driver.Unknown
}

func isQuit(k ebiten.Key) bool {
	return k == ebiten.KeyEscape || k == ebiten.KeyQ
}
