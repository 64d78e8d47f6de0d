package config

// SettingsConfig contains the user-adjustable settings defaults
type SettingsConfig struct {
	VolumeSteps        []float64
	DefaultVolumeIndex int
	ShowMinimap        bool
	Fullscreen         bool
	StorageKey         string
	AppName            string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 3,
		ShowMinimap:        true,
		Fullscreen:         false,
		StorageKey:         "settings",
		AppName:            "dungeon-crawler",
	}
}
