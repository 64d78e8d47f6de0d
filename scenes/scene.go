package scenes

import (
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/automoto/dungeon-crawler/settings"
	"github.com/automoto/dungeon-crawler/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// Profile is the player's saved settings shared by every scene.
type Profile struct {
	Store    *settings.Store
	Settings settings.SavedSettings
}

// Apply pushes the settings to the running audio.
func (p *Profile) Apply() {
	sound.SetMuted(p.Settings.Muted)
	sound.SetVolume(p.Settings.Volume())
}

// Save applies and persists the settings. Failures are logged.
func (p *Profile) Save() {
	p.Apply()
	if err := p.Store.Save(p.Settings); err != nil {
		logging.Log.Warnw("could not save settings", "err", err)
	}
}

// system adapts a world system to the scene scheduler.
func system(f func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		f(e.World)
	}
}
