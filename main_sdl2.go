//go:build sdl2

package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/a3f/TinyEMU/constant"
	"github.com/a3f/TinyEMU/util"
	"github.com/a3f/TinyEMU/window"
)

func run() error {
	width := flag.Int("width", constant.DEFAULT_WIDTH, "window width in pixels")
	height := flag.Int("height", constant.DEFAULT_HEIGHT, "window height in pixels")
	fps := flag.Int("fps", constant.TARGET_FPS, "target frame rate")
	relative := flag.Bool("relative-mouse", false, "report mouse deltas instead of absolute positions")
	flag.Parse()

	if os.Getenv("TINYEMU_TRACE") == "1" {
		util.EnableTrace()
	}
	if filename := os.Getenv("TINYEMU_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if err := window.Initialize(); err != nil {
		return err
	}
	defer sdl.Quit()

	front, err := window.NewSDLFrontend(constant.WINDOW_TITLE, int32(*width), int32(*height))
	if err != nil {
		return err
	}
	defer front.Close()

	m := NewDemoMachine(*width, *height, front, !*relative)

	synchronizer := window.NewTimeSynchronizer(*fps)
	for {
		cont, err := front.Pump(m)
		if err != nil {
			return err
		}
		if !cont || m.Quit() {
			break
		}
		synchronizer.MaySleep()
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
