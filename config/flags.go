package config

import "flag"

// BindFlags registers command-line overrides for the global configuration.
// Call before fs.Parse.
func BindFlags(fs *flag.FlagSet) {
	fs.BoolVar(&Debug.SkipMenu, "skip-menu", Debug.SkipMenu, "Start directly in the dungeon")
	fs.BoolVar(&Debug.KnightDemo, "knight", Debug.KnightDemo, "Start directly in the knight sword-swing demo")
	fs.Int64Var(&Debug.Seed, "seed", Debug.Seed, "Random seed for enemy spawns (0 = time based)")
	fs.StringVar(&Debug.LogFile, "log", Debug.LogFile, "Log file path (empty disables file logging)")
	fs.BoolVar(&Debug.Verbose, "debug", Debug.Verbose, "Enable debug logging")
	fs.BoolVar(&Debug.ShowBoxes, "boxes", Debug.ShowBoxes, "Draw collision and attack boxes")
	fs.IntVar(&Spawner.MaxEnemies, "max-enemies", Spawner.MaxEnemies, "Maximum number of enemies alive at once")
	fs.Float64Var(&Spawner.Interval, "spawn-interval", Spawner.Interval, "Seconds between enemy spawn attempts")
}
