package gamedata

// PlayerDef defines the player's starting profile.
type PlayerDef struct {
	Name      string         `json:"name"`
	Glyph     string         `json:"glyph"`
	Health    int            `json:"health"`
	Speed     float32        `json:"speed"` // Units per frame
	Evasion   float64        `json:"evasion"`
	Size      float32        `json:"size"`
	Abilities []AbilityGrant `json:"abilities"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune {
	if len(p.Glyph) == 0 {
		return '@'
	}
	return rune(p.Glyph[0])
}

// LoadPlayer loads the player profile from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadPlayer loads the player profile, panicking on error.
func MustLoadPlayer() *PlayerDef {
	def, err := LoadPlayer()
	if err != nil {
		panic(err)
	}
	return def
}
