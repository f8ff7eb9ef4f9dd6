package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/impulse/common"
	"github.com/milk9111/impulse/physics"
)

func main() {
	debug := flag.Bool("debug", true, "draw physics wireframes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", "sandbox.yaml", "scene file in scene/ (basename, yaml)")
	physicsPath := flag.String("physics", "", "optional physics tuning yaml")
	flag.Parse()

	cfg := physics.DefaultConfig()
	if *physicsPath != "" {
		var err error
		if cfg, err = physics.LoadConfig(*physicsPath); err != nil {
			log.Fatal(err)
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("impulse sandbox")

	game := NewGame(*sceneName, cfg, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
