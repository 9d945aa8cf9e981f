package main

import (
	"log"
	"os"

	"textlife/internal/app"
	"textlife/pkg/sims/life"
)

func main() {
	world := life.NewWithConfig(life.DefaultConfig())
	if err := app.RunConsole(os.Stdin, os.Stdout, world); err != nil {
		log.Fatal(err)
	}
}
