package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/game"
	"github.com/younwookim/screenstack/internal/application/manager"
	"github.com/younwookim/screenstack/internal/application/replay"
	"github.com/younwookim/screenstack/internal/application/screens"
	"github.com/younwookim/screenstack/internal/application/system"
	"github.com/younwookim/screenstack/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("configs", "", "Load configs from directory instead of the embedded files")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record session.json)")
	replayFlag := flag.String("replay", "", "Replay input from a recorded file")
	flag.Parse()

	// Load configuration using embedded filesystem unless overridden
	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys)
	}

	display, err := loader.LoadDisplay()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pick the input source: live keyboard/mouse, a recorded session, or a
	// recorder wrapping the live source.
	var poller manager.InputPoller = system.NewInputSystem()
	var recorder *replay.Recorder
	switch {
	case *replayFlag != "":
		data, err := replay.Load(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		poller = replay.NewPlayer(*data)
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))
	case *recordFlag != "":
		recorder = replay.NewRecorder(system.NewInputSystem())
		poller = recorder
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	// Build the screen stack: backdrop below, main menu on top. Both are
	// added before Initialize, so their Load hooks run in the content-load
	// pass below.
	m := manager.New(poller)
	if err := m.Add(screens.NewBackgroundScreen()); err != nil {
		log.Fatalf("Failed to add background screen: %v", err)
	}
	if err := m.Add(screens.NewMainMenu()); err != nil {
		log.Fatalf("Failed to add main menu: %v", err)
	}

	m.Initialize()
	if err := m.LoadContent(); err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	g := game.New(m, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game; shared content is released on the single exit path below.
	runErr := ebiten.RunGame(g)
	m.UnloadContent()

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
