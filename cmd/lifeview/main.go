//go:build ebiten

package main

import (
	"errors"
	"log"

	"textlife/internal/app"
	"textlife/internal/render"
	"textlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewViewConfig()
	world := life.NewWithConfig(life.DefaultConfig())

	game := app.New(world, *cfg)
	size := world.Size()
	iw, ih := render.ImageSize(size.W, size.H)

	ebiten.SetWindowTitle("textlife — " + world.Name())
	ebiten.SetWindowSize(iw*cfg.Scale, ih*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
