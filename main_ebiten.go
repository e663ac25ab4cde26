//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/a3f/TinyEMU/constant"
	"github.com/a3f/TinyEMU/util"
	"github.com/a3f/TinyEMU/window"
)

type Game struct {
	m     *DemoMachine
	front *window.EbitenFrontend
}

func (g *Game) Update() error {
	if err := g.front.Pump(g.m); err != nil {
		return err
	}
	if g.m.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.front.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.front.Layout(outsideWidth, outsideHeight)
}

func runEbiten() error {
	width := flag.Int("width", constant.DEFAULT_WIDTH, "window width in pixels")
	height := flag.Int("height", constant.DEFAULT_HEIGHT, "window height in pixels")
	relative := flag.Bool("relative-mouse", false, "report mouse deltas instead of absolute positions")
	flag.Parse()

	if os.Getenv("TINYEMU_TRACE") == "1" {
		util.EnableTrace()
	}

	window.EbitenInitialize(constant.WINDOW_TITLE, *width, *height)

	front, err := window.NewEbitenFrontend(*width, *height)
	if err != nil {
		return err
	}

	m := NewDemoMachine(*width, *height, front, !*relative)

	return ebiten.RunGame(&Game{m: m, front: front})
}

func main() {
	if err := runEbiten(); err != nil {
		log.Fatal(err)
	}
}
