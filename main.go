package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

func main() {
	flag.Parse()

	store, err := gdata.Open(gdata.Config{AppName: "ultrasound"})
	if err != nil {
		log.Printf("Opening settings store failed: %v (settings will not persist)", err)
		store = nil
	}
	settings := newSettingsManager(store)

	var preset *scenePreset
	if *sceneFlag != "" {
		preset, err = loadScenePreset(*sceneFlag)
		if err != nil {
			log.Fatalf("Loading scene preset failed: %v", err)
		}
	}

	g := newGame(settings, preset)

	if *recordPGOFlag {
		stop, err := startProfileCapture("default.pgo")
		if err != nil {
			log.Fatalf("Starting profile capture failed: %v", err)
		}
		g.stopProfile = stop
		g.enableTargetSweep(pgoRecordDuration)
		log.Printf("Capturing default.pgo for %v while sweeping the focus target", pgoRecordDuration)
	}

	ebiten.SetWindowSize(canvasW*windowScale, canvasH*windowScale)
	ebiten.SetWindowTitle("Phased-Array Beamforming")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
