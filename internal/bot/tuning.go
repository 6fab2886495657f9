package bot

// Profile describes how a bot of one difficulty drives.
type Profile struct {
	MinSpeed float64 // units per second
	MaxSpeed float64
	// Wobble is the per-tick speed noise as a fraction of the base speed.
	Wobble float64
	// FreezeRate is the chance per racing second to fire the freeze power-up.
	FreezeRate float64
}

// DefaultTuning maps each difficulty to its driving profile.
var DefaultTuning = map[Level]Profile{
	LevelEasy:   {MinSpeed: 14, MaxSpeed: 17, Wobble: 0.15, FreezeRate: 0.01},
	LevelMedium: {MinSpeed: 17, MaxSpeed: 20, Wobble: 0.10, FreezeRate: 0.02},
	LevelHard:   {MinSpeed: 20, MaxSpeed: 24, Wobble: 0.05, FreezeRate: 0.03},
}
