package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. Unknown values yield "".
func ParseDifficulty(name string) DifficultyPreset {
	switch name {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return "" // Use config as-is
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 3
		cfg.Enemies.Speed *= 0.75
	case DifficultyHard:
		cfg.Player.Lives = 1
		cfg.Enemies.Speed *= 1.25
		cfg.PowerUps.DurationMs *= 0.6
		cfg.PowerUps.InvincibilityMs *= 0.6
	}
}
