package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/fonts"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/automoto/dungeon-crawler/scenes"
	"github.com/automoto/dungeon-crawler/settings"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Quit() {
	g.quit = true
}

func NewGame(profile *scenes.Profile) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	switch {
	case config.Debug.KnightDemo:
		g.scene = scenes.NewKnightScene(g, profile)
	case config.Debug.SkipMenu:
		g.scene = scenes.NewDungeonScene(g, profile)
	default:
		g.scene = scenes.NewMenuScene(g, profile)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Window.Width, config.Window.Height)
	return config.Window.Width, config.Window.Height
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := logging.Init(config.Debug.LogFile, config.Debug.Verbose); err != nil {
		logging.Log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Sync()

	if err := fonts.LoadDefaults(); err != nil {
		logging.Log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	store, err := settings.Open()
	if err != nil {
		logging.Log.Warnw("Could not initialize persistence", "err", err)
	}
	profile := &scenes.Profile{Store: store, Settings: store.Load()}
	config.Settings.ShowMinimap = profile.Settings.ShowMinimap
	profile.Apply()

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(profile.Settings.Fullscreen)

	if err := ebiten.RunGame(NewGame(profile)); err != nil {
		logging.Log.Fatalf("Game exited with error: %v", err)
	}
	logging.Log.Info("Game closed")
}
