package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/sound"
	"github.com/automoto/dungeon-crawler/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	profile      *Profile
	menuUI       *ui.MenuUI
	once         sync.Once
	next         func() Scene
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, profile *Profile) *MenuScene {
	return &MenuScene{sceneChanger: sc, profile: profile}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	if ms.next != nil {
		sound.Play(cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(ms.next())
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	menuUI, err := ui.NewMenuUI(&ms.profile.Settings)
	if err != nil {
		panic("failed to build menu: " + err.Error())
	}
	menuUI.OnDungeon = func() {
		ms.next = func() Scene { return NewDungeonScene(ms.sceneChanger, ms.profile) }
	}
	menuUI.OnKnight = func() {
		ms.next = func() Scene { return NewKnightScene(ms.sceneChanger, ms.profile) }
	}
	menuUI.OnSettingsChange = func() {
		cfg.Settings.ShowMinimap = ms.profile.Settings.ShowMinimap
		ms.profile.Save()
		sound.Play(cfg.SoundMenuSelect)
	}
	menuUI.OnQuit = ms.sceneChanger.Quit
	ms.menuUI = menuUI
}
