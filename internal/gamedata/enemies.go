package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string         `json:"id"`          // Unique identifier (e.g., "drone")
	Name        string         `json:"name"`        // Display name
	Glyph       string         `json:"glyph"`       // Single character for rendering
	Color       string         `json:"color"`       // Hex color code
	Health      int            `json:"health"`      // Starting health
	Speed       float32        `json:"speed"`       // Units per frame before the chase factor
	Evasion     float64        `json:"evasion"`     // Percent
	XPReward    int            `json:"xpReward"`    // Score credited on death
	Size        float32        `json:"size"`        // Bounding half extent
	SpawnWeight int            `json:"spawnWeight"` // Relative spawn frequency
	Abilities   []AbilityGrant `json:"abilities"`   // Installed at spawn
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor converts a hex color to a tcell.Color, falling back to white.
func TCellColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
