// Package sound plays the synthesized sound effects for gameplay events.
package sound

import (
	"sync"

	"github.com/automoto/dungeon-crawler/assets"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// Global audio state - created once and shared across all scenes
var (
	audioContext *audio.Context
	audioLoader  *assets.AudioLoader
	sfxVolume    = cfg.Audio.DefaultSFXVol
	muted        bool
	initOnce     sync.Once
)

// eventSounds maps gameplay events to the effect they trigger.
var eventSounds = map[components.EventKind]cfg.SoundID{
	components.EventSwingStarted:    cfg.SoundSwing,
	components.EventEnemyHit:        cfg.SoundHit,
	components.EventEnemyKilled:     cfg.SoundKill,
	components.EventPlayerHurt:      cfg.SoundHurt,
	components.EventPlayerRespawned: cfg.SoundRespawn,
	components.EventEnemySpawned:    cfg.SoundSpawn,
}

func initAudio() {
	initOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
		audioLoader = assets.NewAudioLoader(cfg.Audio.SampleRate)
	})
}

// PreloadAll synthesizes every effect up front so the first play does not stall.
func PreloadAll() {
	initAudio()
	for id := range cfg.Sound.Tones {
		if err := audioLoader.PreloadSFX(id); err != nil {
			logging.Log.Warnw("could not preload sound", "sound", id, "err", err)
		}
	}
}

// UpdateSound plays the effects for this frame's events.
func UpdateSound(w donburi.World) {
	entry, ok := components.Events.First(w)
	if !ok {
		return
	}
	events := components.Events.Get(entry)

	// A crowd of enemies spawning or dying in one frame plays each sound once.
	played := map[cfg.SoundID]bool{}
	for _, ev := range events.Events {
		id, ok := eventSounds[ev.Kind]
		if !ok || played[id] {
			continue
		}
		played[id] = true
		Play(id)
	}
}

// Play starts a sound effect at the current volume.
func Play(id cfg.SoundID) {
	initAudio()
	if muted || sfxVolume <= 0 {
		return
	}

	pcm, err := audioLoader.LoadSFX(id)
	if err != nil {
		logging.Log.Warnw("could not load sound", "sound", id, "err", err)
		return
	}
	player := audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(sfxVolume)
	player.Play()
}

// SetVolume changes the SFX volume (0.0 - 1.0)
func SetVolume(volume float64) {
	sfxVolume = min(max(volume, 0), 1)
}

func Volume() float64 {
	return sfxVolume
}

func SetMuted(m bool) {
	muted = m
}

func Muted() bool {
	return muted
}
