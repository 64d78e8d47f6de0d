package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dungeon-crawler/controls"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/render"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var knightBackground = color.RGBA{R: 34, G: 38, B: 52, A: 255}

// KnightScene runs the sword-swing demo.
type KnightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	profile      *Profile
	once         sync.Once
	leaving      bool
}

func NewKnightScene(sc SceneChanger, profile *Profile) *KnightScene {
	return &KnightScene{sceneChanger: sc, profile: profile}
}

func (ks *KnightScene) Update() {
	ks.once.Do(ks.configure)
	ks.ecs.Update()

	if ks.leaving {
		ks.sceneChanger.ChangeScene(NewMenuScene(ks.sceneChanger, ks.profile))
	}
}

func (ks *KnightScene) Draw(screen *ebiten.Image) {
	screen.Fill(knightBackground)

	if ks.ecs == nil {
		return
	}
	ks.ecs.Draw(screen)
}

func (ks *KnightScene) checkBack(w donburi.World) {
	if systems.GetAction(systems.GetInput(w), cfg.ActionMenuBack).JustPressed {
		ks.leaving = true
	}
}

func (ks *KnightScene) configure() {
	ks.ecs = ecs.NewECS(donburi.NewWorld())

	ks.ecs.AddSystem(system(controls.UpdateInput))
	ks.ecs.AddSystem(system(systems.UpdateKnight))
	ks.ecs.AddSystem(system(ks.checkBack))

	ks.ecs.AddRenderer(layerWorld, render.DrawKnight)

	factory.CreateKnight(ks.ecs.World)
}
