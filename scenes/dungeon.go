package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/dungeon-crawler/assets"
	"github.com/automoto/dungeon-crawler/controls"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/automoto/dungeon-crawler/render"
	"github.com/automoto/dungeon-crawler/sound"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DungeonScene runs the dungeon crawler.
type DungeonScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	profile      *Profile
	once         sync.Once

	lastFrame time.Time
	dt        float64
	leaving   bool
}

func NewDungeonScene(sc SceneChanger, profile *Profile) *DungeonScene {
	return &DungeonScene{sceneChanger: sc, profile: profile}
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)

	now := time.Now()
	ds.dt = now.Sub(ds.lastFrame).Seconds()
	ds.lastFrame = now

	ds.ecs.Update()

	if ds.leaving {
		logging.Log.Infow("run ended",
			"score", systems.PlayerScore(ds.ecs.World),
			"enemies", systems.EnemyCount(ds.ecs.World),
		)
		ds.sceneChanger.ChangeScene(NewMenuScene(ds.sceneChanger, ds.profile))
	}
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// step advances the simulation by the wall-clock time since the last frame.
func (ds *DungeonScene) step(w donburi.World) {
	systems.Step(w, ds.dt)
}

// updateMeta handles the actions that work even while paused.
func (ds *DungeonScene) updateMeta(w donburi.World) {
	input := systems.GetInput(w)
	if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		ds.leaving = true
	}
	if systems.GetAction(input, cfg.ActionMute).JustPressed {
		ds.profile.Settings.Muted = !ds.profile.Settings.Muted
		ds.profile.Save()
	}
}

// saveMinimap persists a minimap toggle made during the run.
func (ds *DungeonScene) saveMinimap(w donburi.World) {
	shown, ok := systems.MinimapToggled(w)
	if !ok {
		return
	}
	ds.profile.Settings.ShowMinimap = shown
	cfg.Settings.ShowMinimap = shown
	ds.profile.Save()
}

func (ds *DungeonScene) configure() {
	// Preload assets to avoid lag on first use
	sound.PreloadAll()

	level, err := assets.NewLevelLoader().LoadLevel(cfg.World.LevelPath)
	if err != nil {
		logging.Log.Warnw("could not load level, using an empty floor", "path", cfg.World.LevelPath, "err", err)
		level = assets.Level{
			Name:   "empty",
			Width:  int(cfg.World.Width),
			Height: int(cfg.World.Height),
		}
	}
	if err := render.Load(level); err != nil {
		panic("failed to prepare renderer: " + err.Error())
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logging.Log.Infow("starting run", "level", level.Name, "seed", seed)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(system(controls.UpdateInput))
	ecs.AddSystem(system(systems.UpdatePause))
	ecs.AddSystem(system(ds.updateMeta))

	// Game systems wrapped with pause checks
	ecs.AddSystem(system(systems.WithGameplayChecks(ds.step)))
	ecs.AddSystem(system(systems.WithGameplayChecks(systems.UpdateHUD)))
	ecs.AddSystem(system(systems.WithGameplayChecks(ds.saveMinimap)))
	ecs.AddSystem(system(systems.WithGameplayChecks(systems.UpdateCamera)))
	ecs.AddSystem(system(systems.WithGameplayChecks(render.UpdateTorches)))
	ecs.AddSystem(system(systems.WithGameplayChecks(sound.UpdateSound)))
	ecs.AddSystem(system(systems.WithGameplayChecks(systems.LogEvents)))

	// Add renderers
	ecs.AddRenderer(layerWorld, render.DrawWorld)
	ecs.AddRenderer(layerWorld, render.DrawEnemies)
	ecs.AddRenderer(layerWorld, render.DrawPlayer)
	ecs.AddRenderer(layerWorld, render.DrawDebug)
	ecs.AddRenderer(layerHUD, render.DrawScore)
	ecs.AddRenderer(layerHUD, render.DrawMinimap)
	ecs.AddRenderer(layerHUD, render.DrawHint)
	ecs.AddRenderer(layerHUD, render.DrawPause)

	ds.ecs = ecs

	systems.SetupDungeon(ecs.World, float64(level.Width), float64(level.Height), rand.New(rand.NewSource(seed)))
	ds.lastFrame = time.Now()
}
