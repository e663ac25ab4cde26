//go:build !sdl2 && !ebiten

package main

import "log"

func main() {
	log.Fatal("no frontend backend compiled in; build with -tags sdl2 or -tags ebiten")
}
